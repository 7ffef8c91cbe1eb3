// SPDX-License-Identifier: MIT

package param

import (
	"github.com/katalvlaran/debayes/kernel"
	"github.com/katalvlaran/debayes/prior"
)

// Category assigns a parameter to one of the three groups the external
// solver distinguishes.
type Category int

const (
	// EquationParam is a coefficient of the differential equation.
	EquationParam Category = iota

	// InitialCondition is one entry of the solver's initial state vector.
	InitialCondition

	// ObservationParam belongs to the observation model only (e.g. a noise
	// standard deviation); the solver never sees it.
	ObservationParam
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case EquationParam:
		return "EquationParam"
	case InitialCondition:
		return "InitialCondition"
	case ObservationParam:
		return "ObservationParam"
	default:
		return "Unknown"
	}
}

// Param declares one scalar quantity of the model.
//
// Fixed parameters keep Value for the whole run and may omit Prior.
// Estimated (non-fixed) parameters need both a Prior containing Value in
// its support and a proposal Kernel with a scale the kernel accepts.
type Param struct {
	// Name uniquely identifies the parameter within its Block.
	Name string

	// Category places the parameter in the solver's partition.
	Category Category

	// Fixed marks the value as constant across all iterations.
	Fixed bool

	// Value is the starting value (estimated) or the constant (fixed).
	Value float64

	// Prior is the prior distribution; required unless Fixed.
	Prior prior.Distribution

	// Kernel selects how proposals for this parameter are drawn.
	Kernel kernel.Kind

	// Scale carries the kernel's tuning parameters: Var for RandomWalk,
	// the (A, B) range for UniformRatio.
	Scale kernel.Scale
}
