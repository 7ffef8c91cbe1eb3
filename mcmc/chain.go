// SPDX-License-Identifier: MIT

package mcmc

import (
	"time"

	"github.com/katalvlaran/debayes/kernel"
	"github.com/katalvlaran/debayes/param"
)

// Chain is the completed result of one sampling run: one row per
// iteration, one column per declared parameter (fixed columns constant),
// plus the log-posterior, and enough metadata for downstream trace,
// diagnostic and posterior-predictive tooling to consume it without
// re-deriving any sampler state.
//
// The Sampler owns and mutates the Chain while running and hands it over
// on return; treat it as read-only afterwards.
type Chain struct {
	// Names are the declared parameter names, column order of Samples.
	Names []string

	// Samples holds one full post-sweep parameter vector per iteration.
	Samples [][]float64

	// LogPosterior holds the sweep-final log-posterior per iteration.
	LogPosterior []float64

	// EstimatedNames are the non-fixed parameter names in declaration
	// order — the column order of Accepted and the key set of the
	// metadata maps below.
	EstimatedNames []string

	// Accepted records, per iteration and estimated parameter, whether
	// that parameter's proposal was accepted during the sweep.
	Accepted [][]bool

	// FinalScales holds each estimated parameter's proposal scale after
	// the last adaptation.
	FinalScales map[string]kernel.Scale

	// AcceptRates holds each estimated parameter's cumulative acceptance
	// rate over the whole run.
	AcceptRates map[string]float64

	// InvalidProposals counts proposals rejected because the solver or
	// likelihood failed (non-finite posterior), in aggregate.
	InvalidProposals int

	// Iterations, Seed and Elapsed describe the run itself.
	Iterations int
	Seed       uint64
	Elapsed    time.Duration

	// Block is the parameter block the chain was sampled under; downstream
	// tooling uses it to rebuild solver requests from sampled rows.
	Block *param.Block
}

// Len returns the number of recorded iterations.
func (c *Chain) Len() int { return len(c.Samples) }

// Header returns the column names of the output table: every parameter
// name followed by "log_posterior".
func (c *Chain) Header() []string {
	out := make([]string, 0, len(c.Names)+1)
	out = append(out, c.Names...)
	return append(out, "log_posterior")
}

// Col returns the full column of one declared parameter, or the
// log-posterior column under the name "log_posterior".
func (c *Chain) Col(name string) ([]float64, error) {
	if name == "log_posterior" {
		return append([]float64(nil), c.LogPosterior...), nil
	}
	for j, n := range c.Names {
		if n == name {
			out := make([]float64, len(c.Samples))
			for i := range c.Samples {
				out[i] = c.Samples[i][j]
			}
			return out, nil
		}
	}
	return nil, ErrUnknownColumn
}

// Row returns a copy of the parameter vector recorded at iteration i.
func (c *Chain) Row(i int) []float64 {
	return append([]float64(nil), c.Samples[i]...)
}
