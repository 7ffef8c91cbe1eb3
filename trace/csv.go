// SPDX-License-Identifier: MIT

package trace

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/debayes/mcmc"
)

// WriteCSV streams the chain as a CSV table: a header of parameter names
// plus "log_posterior", then one row per iteration. Values keep full
// float64 round-trip precision, so two identically seeded runs export
// byte-identical tables.
func WriteCSV(w io.Writer, c *mcmc.Chain) error {
	if c == nil || c.Len() == 0 {
		return ErrEmptyChain
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(c.Header()); err != nil {
		return err
	}
	row := make([]string, len(c.Names)+1)
	for i := 0; i < c.Len(); i++ {
		for j, v := range c.Samples[i] {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		row[len(row)-1] = strconv.FormatFloat(c.LogPosterior[i], 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
