// SPDX-License-Identifier: MIT

package mcmc

import (
	"math"

	"go.uber.org/zap"
)

// Tuning defaults, documented in one place.
const (
	// DefaultReportInterval is the cadence (in iterations) of acceptance-rate
	// recomputation, scale adaptation and progress reporting.
	DefaultReportInterval = 100

	// DefaultAcceptLow is the window acceptance rate below which a
	// RandomWalk proposal variance is shrunk.
	DefaultAcceptLow = 0.2

	// DefaultAcceptHigh is the window acceptance rate above which a
	// RandomWalk proposal variance is grown.
	DefaultAcceptHigh = 0.5

	// DefaultAdaptFactor is the multiplicative step applied to a proposal
	// variance on each adaptation.
	DefaultAdaptFactor = 1.1

	// DefaultSeed seeds the run's random source. Runs are deterministic for
	// a fixed seed; there is no implicit time-based seeding.
	DefaultSeed = 1
)

// Options configures one sampling run.
type Options struct {
	// Iterations is the number of MCMC sweeps. Required, must be positive.
	Iterations int

	// Data is the observed dataset, handed to the Likelihood verbatim.
	Data any

	// SolverKind is forwarded to the solver in every SolveRequest.
	SolverKind SolverKind

	// OutputTimes is the time grid the solver must report at minimum.
	// Required, strictly increasing.
	OutputTimes []float64

	// ReportInterval is the adaptation/progress cadence in iterations.
	// Zero or negative selects DefaultReportInterval.
	ReportInterval int

	// Verbose enables per-sweep diagnostics on Logger (debug level).
	Verbose bool

	// Seed seeds the run's random source. Zero selects DefaultSeed.
	Seed uint64

	// AdaptUntil freezes proposal scales after this iteration. Zero means
	// adaptation runs for the whole chain — the original behavior, which
	// sacrifices exact time-homogeneity of the Markov chain; set a freeze
	// point when that matters.
	AdaptUntil int

	// AcceptLow and AcceptHigh bound the adaptation dead band; only
	// RandomWalk variances are tuned. Zero values select the defaults.
	AcceptLow  float64
	AcceptHigh float64

	// AdaptFactor is the multiplicative adaptation step, > 1.
	// Zero selects DefaultAdaptFactor.
	AdaptFactor float64

	// Logger receives progress and diagnostics; nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns an Options with every tunable at its default.
// Iterations, Data and OutputTimes must still be set by the caller.
func DefaultOptions() Options {
	return Options{
		ReportInterval: DefaultReportInterval,
		Seed:           DefaultSeed,
		AcceptLow:      DefaultAcceptLow,
		AcceptHigh:     DefaultAcceptHigh,
		AdaptFactor:    DefaultAdaptFactor,
	}
}

// normalize fills zero values with defaults and validates the result.
func (o Options) normalize() (Options, error) {
	if o.ReportInterval <= 0 {
		o.ReportInterval = DefaultReportInterval
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.AcceptLow == 0 {
		o.AcceptLow = DefaultAcceptLow
	}
	if o.AcceptHigh == 0 {
		o.AcceptHigh = DefaultAcceptHigh
	}
	if o.AdaptFactor == 0 {
		o.AdaptFactor = DefaultAdaptFactor
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Iterations < 1 {
		return o, ErrBadIterations
	}
	if len(o.OutputTimes) == 0 {
		return o, ErrNoOutputTimes
	}
	for i := 1; i < len(o.OutputTimes); i++ {
		if o.OutputTimes[i] <= o.OutputTimes[i-1] {
			return o, ErrUnsortedTimes
		}
	}
	if o.AcceptLow < 0 || o.AcceptHigh > 1 || o.AcceptLow >= o.AcceptHigh ||
		o.AdaptFactor <= 1 || math.IsNaN(o.AdaptFactor) || o.AdaptUntil < 0 {
		return o, ErrBadAdaptation
	}
	return o, nil
}
