// SPDX-License-Identifier: MIT

package prior

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadHyperparameter indicates a family was declared with hyperparameters
// that do not define a proper distribution (e.g. non-positive scale).
var ErrBadHyperparameter = errors.New("prior: invalid hyperparameter")

// Distribution is one prior family with fixed hyperparameters.
//
// Implementations are plain value types; copying one is cheap and safe.
type Distribution interface {
	// LogProb returns the log density at x; -Inf outside the support.
	LogProb(x float64) float64

	// Rand draws a single value from the distribution using src.
	Rand(src rand.Source) float64

	// Validate reports whether the hyperparameters define a proper
	// distribution. Errors match ErrBadHyperparameter via errors.Is.
	Validate() error

	fmt.Stringer
}

// Normal is the Gaussian family N(Mu, Sigma²); support is all of ℝ.
type Normal struct {
	Mu    float64
	Sigma float64
}

func (d Normal) LogProb(x float64) float64 {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}.LogProb(x)
}

func (d Normal) Rand(src rand.Source) float64 {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: src}.Rand()
}

func (d Normal) Validate() error {
	if d.Sigma <= 0 {
		return fmt.Errorf("%w: Normal needs Sigma > 0, got %g", ErrBadHyperparameter, d.Sigma)
	}
	return nil
}

func (d Normal) String() string { return fmt.Sprintf("Normal(%g, %g)", d.Mu, d.Sigma) }

// LogNormal has log-scale location Mu and shape Sigma; support is x > 0.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

func (d LogNormal) LogProb(x float64) float64 {
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma}.LogProb(x)
}

func (d LogNormal) Rand(src rand.Source) float64 {
	return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: src}.Rand()
}

func (d LogNormal) Validate() error {
	if d.Sigma <= 0 {
		return fmt.Errorf("%w: LogNormal needs Sigma > 0, got %g", ErrBadHyperparameter, d.Sigma)
	}
	return nil
}

func (d LogNormal) String() string { return fmt.Sprintf("LogNormal(%g, %g)", d.Mu, d.Sigma) }

// Gamma is shape/rate parameterized; support is x ≥ 0.
type Gamma struct {
	Shape float64
	Rate  float64
}

func (d Gamma) LogProb(x float64) float64 {
	return distuv.Gamma{Alpha: d.Shape, Beta: d.Rate}.LogProb(x)
}

func (d Gamma) Rand(src rand.Source) float64 {
	return distuv.Gamma{Alpha: d.Shape, Beta: d.Rate, Src: src}.Rand()
}

func (d Gamma) Validate() error {
	if d.Shape <= 0 || d.Rate <= 0 {
		return fmt.Errorf("%w: Gamma needs Shape > 0 and Rate > 0, got (%g, %g)",
			ErrBadHyperparameter, d.Shape, d.Rate)
	}
	return nil
}

func (d Gamma) String() string { return fmt.Sprintf("Gamma(%g, %g)", d.Shape, d.Rate) }

// Beta has support on [0, 1].
type Beta struct {
	Alpha float64
	Beta  float64
}

func (d Beta) LogProb(x float64) float64 {
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta}.LogProb(x)
}

func (d Beta) Rand(src rand.Source) float64 {
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta, Src: src}.Rand()
}

func (d Beta) Validate() error {
	if d.Alpha <= 0 || d.Beta <= 0 {
		return fmt.Errorf("%w: Beta needs Alpha > 0 and Beta > 0, got (%g, %g)",
			ErrBadHyperparameter, d.Alpha, d.Beta)
	}
	return nil
}

func (d Beta) String() string { return fmt.Sprintf("Beta(%g, %g)", d.Alpha, d.Beta) }

// Uniform is flat on [Min, Max].
type Uniform struct {
	Min float64
	Max float64
}

func (d Uniform) LogProb(x float64) float64 {
	return distuv.Uniform{Min: d.Min, Max: d.Max}.LogProb(x)
}

func (d Uniform) Rand(src rand.Source) float64 {
	return distuv.Uniform{Min: d.Min, Max: d.Max, Src: src}.Rand()
}

func (d Uniform) Validate() error {
	if d.Max <= d.Min {
		return fmt.Errorf("%w: Uniform needs Min < Max, got (%g, %g)",
			ErrBadHyperparameter, d.Min, d.Max)
	}
	return nil
}

func (d Uniform) String() string { return fmt.Sprintf("Uniform(%g, %g)", d.Min, d.Max) }

// Exponential has rate Rate; support is x ≥ 0.
type Exponential struct {
	Rate float64
}

func (d Exponential) LogProb(x float64) float64 {
	return distuv.Exponential{Rate: d.Rate}.LogProb(x)
}

func (d Exponential) Rand(src rand.Source) float64 {
	return distuv.Exponential{Rate: d.Rate, Src: src}.Rand()
}

func (d Exponential) Validate() error {
	if d.Rate <= 0 {
		return fmt.Errorf("%w: Exponential needs Rate > 0, got %g", ErrBadHyperparameter, d.Rate)
	}
	return nil
}

func (d Exponential) String() string { return fmt.Sprintf("Exponential(%g)", d.Rate) }
