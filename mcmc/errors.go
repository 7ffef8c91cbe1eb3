// SPDX-License-Identifier: MIT
// Package mcmc: sentinel error set. Only configuration errors halt a run,
// and they are raised before iteration 1; per-iteration solver and
// likelihood failures never surface as errors (see Evaluator).

package mcmc

import "errors"

var (
	// ErrNilBlock indicates Run was called without a parameter block.
	ErrNilBlock = errors.New("mcmc: parameter block is nil")

	// ErrNilSolver indicates Run was called without an external solver.
	ErrNilSolver = errors.New("mcmc: solver is nil")

	// ErrNilLikelihood indicates Run was called without a likelihood.
	ErrNilLikelihood = errors.New("mcmc: likelihood is nil")

	// ErrBadIterations indicates Options.Iterations < 1.
	ErrBadIterations = errors.New("mcmc: iterations must be positive")

	// ErrNoOutputTimes indicates an empty Options.OutputTimes grid.
	ErrNoOutputTimes = errors.New("mcmc: output times must be non-empty")

	// ErrUnsortedTimes indicates Options.OutputTimes is not strictly increasing.
	ErrUnsortedTimes = errors.New("mcmc: output times must be strictly increasing")

	// ErrBadAdaptation indicates inconsistent adaptation settings
	// (AcceptLow/AcceptHigh outside [0,1] or inverted, AdaptFactor ≤ 1).
	ErrBadAdaptation = errors.New("mcmc: invalid adaptation settings")

	// ErrStateMismatch indicates the block's initial-condition names or
	// order disagree with the solver's declared state vector.
	ErrStateMismatch = errors.New("mcmc: initial conditions do not match solver state vector")

	// ErrUnknownState indicates a trajectory lookup for an undeclared state.
	ErrUnknownState = errors.New("mcmc: unknown state name")

	// ErrUnknownColumn indicates a chain lookup for an undeclared column.
	ErrUnknownColumn = errors.New("mcmc: unknown chain column")
)
