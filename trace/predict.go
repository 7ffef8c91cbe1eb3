// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/debayes/mcmc"
)

// Predict draws n parameter rows uniformly from the chain after burnIn
// and re-solves the model for each, yielding a posterior-predictive
// trajectory band on the given time grid.
//
// Unlike in-chain evaluation, a solver failure here is returned as an
// error: there is no proposal to reject on behalf of the caller.
func Predict(c *mcmc.Chain, solver mcmc.Solver, kind mcmc.SolverKind, times []float64, burnIn, n int, src rand.Source) ([]*mcmc.Trajectory, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyChain
	}
	if burnIn < 0 || burnIn >= c.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadBurnIn, burnIn, c.Len())
	}
	if n < 1 {
		return nil, ErrBadSampleCount
	}
	if solver == nil {
		return nil, mcmc.ErrNilSolver
	}

	rng := rand.New(src)
	out := make([]*mcmc.Trajectory, 0, n)
	for k := 0; k < n; k++ {
		row := c.Row(burnIn + rng.Intn(c.Len()-burnIn))
		init, err := c.Block.InitialStateFrom(row)
		if err != nil {
			return nil, err
		}
		eqp, err := c.Block.EquationParamsFrom(row)
		if err != nil {
			return nil, err
		}
		traj, err := solver.Solve(mcmc.SolveRequest{
			Kind:   kind,
			Init:   init,
			Times:  times,
			Params: eqp,
		})
		if err != nil {
			return nil, fmt.Errorf("trace: predictive draw %d: %w", k, err)
		}
		out = append(out, traj)
	}
	return out, nil
}
