// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/debayes/mcmc"
)

// plot dimensions shared by both plot kinds.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch

	// densityBins is the histogram resolution of DensityPlot.
	densityBins = 32
)

// TracePlot saves a line plot of one chain column against iteration
// index — the standard mixing diagnostic.
func TracePlot(c *mcmc.Chain, name, path string) error {
	col, err := column(c, name)
	if err != nil {
		return err
	}
	xys := make(plotter.XYs, len(col))
	for i, v := range col {
		xys[i].X = float64(i + 1)
		xys[i].Y = v
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("trace: %q line: %w", name, err)
	}
	p := plot.New()
	p.Title.Text = "Trace of " + name
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = name
	p.Add(line)
	return p.Save(plotWidth, plotHeight, path)
}

// DensityPlot saves a normalized histogram of one chain column after
// burn-in — a raw view of the marginal posterior.
func DensityPlot(c *mcmc.Chain, name string, burnIn int, path string) error {
	col, err := column(c, name)
	if err != nil {
		return err
	}
	if burnIn < 0 || burnIn >= len(col) {
		return fmt.Errorf("%w: %d of %d", ErrBadBurnIn, burnIn, len(col))
	}
	hist, err := plotter.NewHist(plotter.Values(col[burnIn:]), densityBins)
	if err != nil {
		return fmt.Errorf("trace: %q histogram: %w", name, err)
	}
	hist.Normalize(1)
	p := plot.New()
	p.Title.Text = "Posterior density of " + name
	p.X.Label.Text = name
	p.Y.Label.Text = "density"
	p.Add(hist)
	return p.Save(plotWidth, plotHeight, path)
}

func column(c *mcmc.Chain, name string) ([]float64, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyChain
	}
	return c.Col(name)
}
