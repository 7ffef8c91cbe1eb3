// Package kernel implements the proposal kernels used by the
// componentwise Metropolis-Hastings sampler.
//
// The kernel set is closed: a Kind enumerates the three variants and a
// single Propose function dispatches on it, keeping each kernel's math
// isolated and independently testable.
//
//   - RandomWalk   — additive Gaussian step; symmetric, zero correction.
//   - UniformRatio — multiplicative uniform step for positive-constrained
//     parameters; its support depends on the current value, so Propose
//     returns the log proposal-asymmetry correction the acceptance ratio
//     must include.
//   - Independence — draw straight from the prior; the returned correction
//     is the prior log-ratio, which cancels the prior term of the
//     acceptance ratio so only the likelihood ratio decides.
//
// All randomness flows through an explicit rand.Source.
package kernel
