// SPDX-License-Identifier: MIT
// Shared test doubles for the mcmc package: an analytic linear-decay
// "solver" (dN/dt = -rN has the closed form N0·exp(-rt), so no numerical
// integration is needed), a Gaussian observation likelihood, and block
// builders used across the test files.

package mcmc_test

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/debayes/kernel"
	"github.com/katalvlaran/debayes/mcmc"
	"github.com/katalvlaran/debayes/param"
	"github.com/katalvlaran/debayes/prior"
)

var errDiverged = errors.New("integration diverged")

// decaySolver solves dN/dt = -rN analytically. fail forces a solver-level
// numerical failure on every call; panicOn forces a panic instead.
type decaySolver struct {
	fail    bool
	panicOn bool
	calls   *int
}

func (s decaySolver) Solve(req mcmc.SolveRequest) (*mcmc.Trajectory, error) {
	if s.calls != nil {
		*s.calls++
	}
	if s.panicOn {
		panic("solver blew up")
	}
	if s.fail {
		return nil, errDiverged
	}
	r := req.Params["r"]
	vals := make([][]float64, len(req.Times))
	for i, t := range req.Times {
		vals[i] = []float64{req.Init[0] * math.Exp(-r*t)}
	}
	return &mcmc.Trajectory{Times: req.Times, Names: []string{"N"}, Values: vals}, nil
}

func (s decaySolver) StateNames() []string { return []string{"N"} }

// gaussLike scores observations against the trajectory's N column under
// i.i.d. Gaussian noise with standard deviation params["sd"].
func gaussLike(data any, traj *mcmc.Trajectory, params map[string]float64) float64 {
	obs := data.([]float64)
	col, err := traj.Col("N")
	if err != nil {
		return math.Inf(-1)
	}
	noise := distuv.Normal{Mu: 0, Sigma: params["sd"]}
	ll := 0.0
	for i, y := range obs {
		ll += noise.LogProb(y - col[i])
	}
	return ll
}

// flatLike accepts everything: a constant log-likelihood.
func flatLike(any, *mcmc.Trajectory, map[string]float64) float64 { return 0 }

// decayBlock declares the canonical test model: one estimated decay rate,
// a fixed initial state and a fixed observation noise.
func decayBlock(start float64) (*param.Block, error) {
	return param.NewBlock(
		param.Param{
			Name:     "r",
			Category: param.EquationParam,
			Value:    start,
			Prior:    prior.Normal{Mu: 0.1, Sigma: 0.01},
			Kernel:   kernel.RandomWalk,
			Scale:    kernel.Scale{Var: 1e-3},
		},
		param.Param{Name: "N", Category: param.InitialCondition, Fixed: true, Value: 1},
		param.Param{Name: "sd", Category: param.ObservationParam, Fixed: true, Value: 0.05},
	)
}

// simulateDecay generates noisy observations of exp(-r·t) on the grid,
// deterministically for a fixed seed.
func simulateDecay(r, n0, sd float64, times []float64, seed uint64) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: sd, Src: rand.NewSource(seed)}
	obs := make([]float64, len(times))
	for i, t := range times {
		obs[i] = n0*math.Exp(-r*t) + noise.Rand()
	}
	return obs
}

// grid returns n+1 evenly spaced times on [0, span].
func grid(span float64, n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = span * float64(i) / float64(n)
	}
	return out
}
