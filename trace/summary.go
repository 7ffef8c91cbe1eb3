// SPDX-License-Identifier: MIT

package trace

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/debayes/kernel"
	"github.com/katalvlaran/debayes/mcmc"
)

// Sentinel errors for chain consumers.
var (
	// ErrEmptyChain indicates a chain with no recorded iterations.
	ErrEmptyChain = errors.New("trace: chain is empty")

	// ErrBadBurnIn indicates a burn-in outside [0, chain length).
	ErrBadBurnIn = errors.New("trace: burn-in out of range")

	// ErrBadSampleCount indicates a non-positive posterior-predictive draw count.
	ErrBadSampleCount = errors.New("trace: sample count must be positive")
)

// ParamSummary condenses one chain column after burn-in.
//
// AcceptRate and FinalScale are only meaningful for estimated parameters;
// for fixed parameters AcceptRate is NaN and FinalScale is zero.
type ParamSummary struct {
	Name       string
	Mean       float64
	SD         float64
	Median     float64
	Q025       float64
	Q975       float64
	AcceptRate float64
	FinalScale kernel.Scale
}

// Summary computes per-parameter posterior summaries over the rows after
// burnIn, in chain column order, with the log-posterior column last.
func Summary(c *mcmc.Chain, burnIn int) ([]ParamSummary, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyChain
	}
	if burnIn < 0 || burnIn >= c.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadBurnIn, burnIn, c.Len())
	}
	out := make([]ParamSummary, 0, len(c.Names)+1)
	for _, name := range c.Header() {
		col, err := c.Col(name)
		if err != nil {
			return nil, err
		}
		s, err := summarize(name, col[burnIn:])
		if err != nil {
			return nil, err
		}
		if r, ok := c.AcceptRates[name]; ok {
			s.AcceptRate = r
			s.FinalScale = c.FinalScales[name]
		} else {
			s.AcceptRate = math.NaN()
		}
		out = append(out, s)
	}
	return out, nil
}

func summarize(name string, col []float64) (ParamSummary, error) {
	mean, err := stats.Mean(col)
	if err != nil {
		return ParamSummary{}, fmt.Errorf("trace: %q mean: %w", name, err)
	}
	sd, err := stats.StandardDeviation(col)
	if err != nil {
		return ParamSummary{}, fmt.Errorf("trace: %q sd: %w", name, err)
	}
	med, err := stats.Median(col)
	if err != nil {
		return ParamSummary{}, fmt.Errorf("trace: %q median: %w", name, err)
	}
	lo, err := stats.Percentile(col, 2.5)
	if err != nil {
		return ParamSummary{}, fmt.Errorf("trace: %q q2.5: %w", name, err)
	}
	hi, err := stats.Percentile(col, 97.5)
	if err != nil {
		return ParamSummary{}, fmt.Errorf("trace: %q q97.5: %w", name, err)
	}
	return ParamSummary{Name: name, Mean: mean, SD: sd, Median: med, Q025: lo, Q975: hi}, nil
}
