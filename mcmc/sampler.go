// SPDX-License-Identifier: MIT

package mcmc

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/debayes/kernel"
	"github.com/katalvlaran/debayes/param"
)

// state is one run's mutable bookkeeping, held in a single struct so that
// concurrent independent chains cannot interfere through package state.
// Slices indexed by estimated-parameter position (declaration order).
type state struct {
	values  []float64 // full working vector, fixed entries constant
	logpost float64   // cached log-posterior of values
	scales  []kernel.Scale
	winAcc  []int // accepted proposals in the current tuning window
	winTry  []int // proposals drawn in the current tuning window
	cumAcc  []int // accepted proposals over the whole run
	cumTry  []int // proposals drawn over the whole run
}

// Run executes opts.Iterations sweeps of componentwise Metropolis-Hastings
// over the estimated parameters of block, calling solver and like through
// an Evaluator, and returns the completed Chain.
//
// Fatal configuration errors (nil collaborators, bad options, an invalid
// block, a solver state vector disagreeing with the block's initial
// conditions) are returned before iteration 1 with no partial chain. After
// that the only terminal state is a full Chain of the requested length:
// per-iteration numerical failures are absorbed and surfaced only as
// Chain.InvalidProposals.
func Run(block *param.Block, solver Solver, like Likelihood, opts Options) (*Chain, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	eval, err := NewEvaluator(block, solver, like, opts)
	if err != nil {
		return nil, err
	}
	if err = checkStateOrder(block, solver); err != nil {
		return nil, err
	}

	est := block.Estimated()
	st := &state{
		values: block.Values(),
		scales: make([]kernel.Scale, len(est)),
		winAcc: make([]int, len(est)),
		winTry: make([]int, len(est)),
		cumAcc: make([]int, len(est)),
		cumTry: make([]int, len(est)),
	}
	for j, i := range est {
		st.scales[j] = block.At(i).Scale
	}

	src := rand.NewSource(opts.Seed)
	rng := rand.New(src)
	log := opts.Logger

	start := time.Now()
	st.logpost = eval.LogPosterior(st.values)
	log.Info("sampling started",
		zap.Int("iterations", opts.Iterations),
		zap.Int("estimated", len(est)),
		zap.Uint64("seed", opts.Seed),
		zap.Float64("log_posterior", st.logpost))

	c := &Chain{
		Names:          block.Names(),
		Samples:        make([][]float64, 0, opts.Iterations),
		LogPosterior:   make([]float64, 0, opts.Iterations),
		EstimatedNames: make([]string, len(est)),
		Accepted:       make([][]bool, 0, opts.Iterations),
		FinalScales:    make(map[string]kernel.Scale, len(est)),
		AcceptRates:    make(map[string]float64, len(est)),
		Iterations:     opts.Iterations,
		Seed:           opts.Seed,
		Block:          block,
	}
	for j, i := range est {
		c.EstimatedNames[j] = block.At(i).Name
	}

	for iter := 1; iter <= opts.Iterations; iter++ {
		rowAcc := make([]bool, len(est))
		for j, i := range est {
			sp := block.At(i)
			st.winTry[j]++
			st.cumTry[j]++

			prop, corr, kerr := kernel.Propose(sp.Kernel, st.values[i], st.scales[j], src, sp.Prior)
			if kerr != nil {
				// Block validation rules this out up front; if a collaborator
				// still managed it, the proposal simply does not move.
				continue
			}

			old := st.values[i]
			st.values[i] = prop
			cand := eval.LogPosterior(st.values)
			// The accept draw is consumed even for -Inf candidates so a run
			// replays identically for a fixed seed wherever failures occur.
			logU := math.Log(rng.Float64())
			accept := false
			if !math.IsInf(cand, -1) {
				// Compare in log space; exponentiating first would underflow
				// when both posteriors are very negative.
				delta := cand - st.logpost + corr
				accept = delta >= 0 || logU < delta
			}
			if accept {
				st.logpost = cand
				st.winAcc[j]++
				st.cumAcc[j]++
				rowAcc[j] = true
			} else {
				// Roll back before the next parameter's proposal is drawn:
				// componentwise MH conditions on the just-decided value.
				st.values[i] = old
			}
		}

		c.Samples = append(c.Samples, append([]float64(nil), st.values...))
		c.LogPosterior = append(c.LogPosterior, st.logpost)
		c.Accepted = append(c.Accepted, rowAcc)

		if opts.Verbose {
			log.Debug("sweep",
				zap.Int("iteration", iter),
				zap.Float64("log_posterior", st.logpost))
		}
		if iter%opts.ReportInterval == 0 {
			adapt(st, block, est, opts, iter, log)
		}
	}

	for j, i := range est {
		name := block.At(i).Name
		c.FinalScales[name] = st.scales[j]
		c.AcceptRates[name] = rate(st.cumAcc[j], st.cumTry[j])
	}
	c.InvalidProposals = eval.Invalid()
	c.Elapsed = time.Since(start)

	log.Info("sampling finished",
		zap.Int("iterations", opts.Iterations),
		zap.Float64("log_posterior", st.logpost),
		zap.Int("invalid_proposals", c.InvalidProposals),
		zap.Duration("elapsed", c.Elapsed))
	return c, nil
}

// adapt recomputes each estimated parameter's window acceptance rate and
// nudges RandomWalk proposal variances multiplicatively toward the target
// band. It reads and writes scales only — never priors or kernel kinds —
// and freezes entirely once iter passes Options.AdaptUntil.
func adapt(st *state, block *param.Block, est []int, opts Options, iter int, log *zap.Logger) {
	adapting := opts.AdaptUntil == 0 || iter <= opts.AdaptUntil
	winAcc, winTry := 0, 0
	for j, i := range est {
		r := rate(st.winAcc[j], st.winTry[j])
		winAcc += st.winAcc[j]
		winTry += st.winTry[j]
		if adapting && block.At(i).Kernel == kernel.RandomWalk {
			switch {
			case r > opts.AcceptHigh:
				st.scales[j].Var *= opts.AdaptFactor
			case r < opts.AcceptLow:
				st.scales[j].Var /= opts.AdaptFactor
			}
		}
		if opts.Verbose {
			log.Debug("window acceptance",
				zap.String("parameter", block.At(i).Name),
				zap.Float64("rate", r),
				zap.Float64("variance", st.scales[j].Var))
		}
		st.winAcc[j], st.winTry[j] = 0, 0
	}
	log.Info("progress",
		zap.Int("iteration", iter),
		zap.Float64("log_posterior", st.logpost),
		zap.Float64("acceptance", rate(winAcc, winTry)),
		zap.Bool("adapting", adapting))
}

// checkStateOrder verifies the fragile positional contract with the
// solver when the solver can report its state names.
func checkStateOrder(block *param.Block, solver Solver) error {
	sn, ok := solver.(StateNamer)
	if !ok {
		return nil
	}
	want := sn.StateNames()
	got := block.InitialNames()
	if len(want) != len(got) {
		return fmt.Errorf("%w: block has %d initial conditions, solver expects %d",
			ErrStateMismatch, len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("%w: position %d is %q, solver expects %q",
				ErrStateMismatch, i, got[i], want[i])
		}
	}
	return nil
}

func rate(acc, try int) float64 {
	if try == 0 {
		return 0
	}
	return float64(acc) / float64(try)
}
