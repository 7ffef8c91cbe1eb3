// Package debayes is a toolkit for Bayesian parameter estimation of
// differential-equation models via adaptive Markov chain Monte Carlo.
//
// 🚀 What is debayes?
//
//	You supply a differential-equation model (through an external numerical
//	solver), an observation model linking latent trajectories to data, and
//	a declaration of which quantities are free parameters with priors and
//	proposal kernels. debayes runs an adaptive componentwise
//	Metropolis-Hastings sampler that alternates between integrating the
//	model for each proposed parameter set and evaluating the resulting
//	log-posterior, producing a chain of posterior samples.
//
// ✨ Why choose debayes?
//
//   - Explicit data model — fixed constants, initial conditions and
//     estimated parameters declared side by side, validated before a
//     single iteration runs
//   - Robust chains — solver failures and invalid likelihood regions are
//     absorbed as rejections, never as aborts
//   - Deterministic — every run is exactly reproducible from its seed
//   - Decoupled — the numerical integrator and the likelihood stay behind
//     small interfaces; swap them without touching the sampler
//
// Everything is organized under five subpackages:
//
//	param/  — parameter declarations: categories, fixed vs estimated, ordering
//	prior/  — prior distribution families (gonum-backed)
//	kernel/ — proposal kernels and their asymmetry corrections
//	mcmc/   — the sampler engine, solver/likelihood contracts, chain result
//	trace/  — chain consumers: summaries, CSV, plots, posterior prediction
//
// Start with mcmc.Run; the package documentation of mcmc walks through a
// complete model.
//
//	go get github.com/katalvlaran/debayes
package debayes
