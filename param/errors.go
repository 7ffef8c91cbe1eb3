// SPDX-License-Identifier: MIT
// Package param: sentinel error set. All configuration problems surface as
// one of these, matched with errors.Is, before any sampling starts.

package param

import "errors"

var (
	// ErrEmptyBlock indicates a Block declared without any parameters.
	ErrEmptyBlock = errors.New("param: block declares no parameters")

	// ErrEmptyName indicates a parameter declared with an empty name.
	ErrEmptyName = errors.New("param: parameter name must be non-empty")

	// ErrDuplicateName indicates two parameters sharing one name.
	ErrDuplicateName = errors.New("param: duplicate parameter name")

	// ErrUnknownCategory indicates a Category outside the declared set.
	ErrUnknownCategory = errors.New("param: unknown parameter category")

	// ErrMissingPrior indicates an estimated parameter declared without a prior.
	ErrMissingPrior = errors.New("param: estimated parameter has no prior")

	// ErrBadPrior wraps hyperparameter problems reported by the prior itself.
	ErrBadPrior = errors.New("param: invalid prior")

	// ErrOutOfSupport indicates a starting value with zero prior density.
	ErrOutOfSupport = errors.New("param: starting value outside prior support")

	// ErrBadProposal indicates a proposal kind/scale combination the kernel
	// package rejects, or a UniformRatio kernel on a non-positive start.
	ErrBadProposal = errors.New("param: invalid proposal configuration")

	// ErrUnknownName indicates a lookup for a name the block never declared.
	ErrUnknownName = errors.New("param: unknown parameter name")

	// ErrBadVector indicates a value vector whose length does not match the block.
	ErrBadVector = errors.New("param: value vector length mismatch")
)
