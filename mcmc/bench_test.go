// SPDX-License-Identifier: MIT

package mcmc_test

import (
	"testing"

	"github.com/katalvlaran/debayes/mcmc"
)

// BenchmarkRun measures whole-chain throughput with a cheap analytic
// solver, i.e. the sampler's own overhead per sweep.
func BenchmarkRun(b *testing.B) {
	times := grid(10, 20)
	obs := simulateDecay(0.1, 1, 0.05, times, 42)

	opts := mcmc.DefaultOptions()
	opts.Iterations = 1000
	opts.OutputTimes = times
	opts.Data = obs

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, err := decayBlock(0.12)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := mcmc.Run(block, decaySolver{}, gaussLike, opts); err != nil {
			b.Fatal(err)
		}
	}
}
