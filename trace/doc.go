// Package trace consumes completed chains: posterior summary statistics,
// CSV export, trace and density plots, and posterior-predictive
// trajectory resampling.
//
// Everything here works off the public mcmc.Chain surface alone — no
// sampler state is re-derived — so the package is a model for any
// external downstream tooling.
//
//   - Summary     — per-parameter mean, sd, median and a 95% interval,
//     plus acceptance rates and final proposal scales
//   - WriteCSV    — one row per iteration, one column per parameter plus
//     the log-posterior, full float precision
//   - TracePlot   — sampled value against iteration index
//   - DensityPlot — normalized posterior histogram after burn-in
//   - Predict     — re-solve the model for rows drawn from the posterior
package trace
