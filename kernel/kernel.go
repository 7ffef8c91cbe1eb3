// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/debayes/prior"
)

// Sentinel errors for kernel preconditions.
var (
	// ErrUnknownKind indicates a Kind outside the declared set.
	ErrUnknownKind = errors.New("kernel: unknown proposal kind")

	// ErrBadScale indicates a scale that the kind cannot use
	// (non-positive variance, or a UniformRatio range without 0 < A < B).
	ErrBadScale = errors.New("kernel: invalid proposal scale")

	// ErrNonPositiveCurrent indicates a UniformRatio proposal from a
	// current value ≤ 0, whose support would be empty or inverted.
	ErrNonPositiveCurrent = errors.New("kernel: UniformRatio requires current > 0")

	// ErrNilPrior indicates an Independence proposal without a prior to draw from.
	ErrNilPrior = errors.New("kernel: Independence requires a prior")
)

// Kind selects one of the three proposal kernels.
type Kind int

const (
	// RandomWalk proposes current + N(0, Scale.Var).
	RandomWalk Kind = iota

	// UniformRatio proposes uniformly on [A/B·current, B/A·current],
	// keeping proposals strictly positive for positive current values.
	UniformRatio

	// Independence proposes directly from the parameter's prior.
	Independence
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case RandomWalk:
		return "RandomWalk"
	case UniformRatio:
		return "UniformRatio"
	case Independence:
		return "Independence"
	default:
		return "Unknown"
	}
}

// Scale carries the tuning parameters of a kernel. RandomWalk reads Var
// (the proposal variance), UniformRatio reads the pair (A, B) with
// 0 < A < B, and Independence reads nothing.
type Scale struct {
	Var float64
	A   float64
	B   float64
}

// Validate reports whether the scale is usable by kind k.
func (s Scale) Validate(k Kind) error {
	switch k {
	case RandomWalk:
		if s.Var <= 0 || math.IsInf(s.Var, 1) || math.IsNaN(s.Var) {
			return ErrBadScale
		}
	case UniformRatio:
		if !(0 < s.A && s.A < s.B) || math.IsInf(s.B, 1) {
			return ErrBadScale
		}
	case Independence:
		// nothing to tune
	default:
		return ErrUnknownKind
	}
	return nil
}

// Propose draws a candidate value for a parameter currently at current,
// using kernel k with scale sc, pulling randomness from src. pr is the
// parameter's prior; only Independence consults it.
//
// It returns the proposed value and the log proposal-asymmetry correction
// log q(current|proposed) − log q(proposed|current) that must be added to
// the log acceptance ratio. For the symmetric RandomWalk the correction is
// exactly 0.
//
// Precondition violations return a sentinel error and never NaN.
func Propose(k Kind, current float64, sc Scale, src rand.Source, pr prior.Distribution) (proposed, logCorrection float64, err error) {
	if err = sc.Validate(k); err != nil {
		return 0, 0, err
	}
	switch k {
	case RandomWalk:
		step := distuv.Normal{Mu: 0, Sigma: math.Sqrt(sc.Var), Src: src}.Rand()
		return current + step, 0, nil

	case UniformRatio:
		if current <= 0 || math.IsNaN(current) {
			return 0, 0, ErrNonPositiveCurrent
		}
		lo := sc.A / sc.B * current
		hi := sc.B / sc.A * current
		proposed = distuv.Uniform{Min: lo, Max: hi, Src: src}.Rand()
		// Both supports share the width factor (B/A − A/B); the densities
		// differ only through the conditioning value, so the correction
		// reduces to log(current) − log(proposed).
		return proposed, math.Log(current) - math.Log(proposed), nil

	case Independence:
		if pr == nil {
			return 0, 0, ErrNilPrior
		}
		proposed = pr.Rand(src)
		// The proposal density is the prior itself; this correction cancels
		// the prior ratio in the acceptance so the prior is not counted twice.
		return proposed, pr.LogProb(current) - pr.LogProb(proposed), nil

	default:
		return 0, 0, ErrUnknownKind
	}
}

// logDensity is the log proposal density q(x | given) of the UniformRatio
// kernel. Kept separate so the asymmetry correction above can be verified
// against it directly in tests.
func logDensity(x, given float64, sc Scale) float64 {
	lo := sc.A / sc.B * given
	hi := sc.B / sc.A * given
	if x < lo || x > hi {
		return math.Inf(-1)
	}
	return -math.Log(hi - lo)
}
