// SPDX-License-Identifier: MIT

package mcmc

import (
	"math"

	"github.com/katalvlaran/debayes/param"
)

// Evaluator computes the log-posterior of a full parameter vector:
// log-likelihood of the solver's trajectory plus the sum of log-prior
// densities over all estimated parameters.
//
// Failure absorption: a solver error, a panicking collaborator or a
// non-finite likelihood is converted into a -Inf log-posterior and
// counted, never propagated — any finite current state then beats the
// proposal, so the chain rejects it and continues.
type Evaluator struct {
	block     *param.Block
	solver    Solver
	like      Likelihood
	data      any
	kind      SolverKind
	times     []float64
	estimated []int
	invalid   int
}

// NewEvaluator wires the external collaborators to a validated block.
func NewEvaluator(block *param.Block, solver Solver, like Likelihood, opts Options) (*Evaluator, error) {
	if block == nil {
		return nil, ErrNilBlock
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if like == nil {
		return nil, ErrNilLikelihood
	}
	return &Evaluator{
		block:     block,
		solver:    solver,
		like:      like,
		data:      opts.Data,
		kind:      opts.SolverKind,
		times:     opts.OutputTimes,
		estimated: block.Estimated(),
	}, nil
}

// LogPosterior evaluates the full parameter vector values, which must
// have length block.Len(). It never panics and never returns NaN: invalid
// regions and numerical failures come back as -Inf.
func (e *Evaluator) LogPosterior(values []float64) (lp float64) {
	defer func() {
		// A panicking solver or likelihood counts as a numerical failure.
		if recover() != nil {
			e.invalid++
			lp = math.Inf(-1)
		}
	}()

	// Prior term first: outside the joint support there is no need to
	// integrate at all.
	lp = 0
	for _, i := range e.estimated {
		lp += e.block.At(i).Prior.LogProb(values[i])
	}
	if math.IsNaN(lp) || math.IsInf(lp, -1) {
		return math.Inf(-1)
	}

	init, err := e.block.InitialStateFrom(values)
	if err != nil {
		e.invalid++
		return math.Inf(-1)
	}
	eqp, err := e.block.EquationParamsFrom(values)
	if err != nil {
		e.invalid++
		return math.Inf(-1)
	}
	traj, err := e.solver.Solve(SolveRequest{
		Kind:   e.kind,
		Init:   init,
		Times:  e.times,
		Params: eqp,
	})
	if err != nil || traj == nil {
		e.invalid++
		return math.Inf(-1)
	}

	named, err := e.block.NamedFrom(values)
	if err != nil {
		e.invalid++
		return math.Inf(-1)
	}
	ll := e.like(e.data, traj, named)
	if math.IsNaN(ll) || math.IsInf(ll, 0) {
		e.invalid++
		return math.Inf(-1)
	}

	lp += ll
	if math.IsNaN(lp) || math.IsInf(lp, 0) {
		return math.Inf(-1)
	}
	return lp
}

// Invalid returns how many evaluations were absorbed as numerical
// failures (solver errors, panics, non-finite likelihoods). Evaluations
// rejected purely by a zero-density prior are not counted.
func (e *Evaluator) Invalid() int { return e.invalid }
