// Package prior defines the closed set of prior distribution families
// available to estimated parameters.
//
// Each family is a small value type holding its hyperparameters and
// delegating density and sampling math to gonum's stat/distuv. Families
// implement the Distribution interface:
//
//   - LogProb(x) — log density at x, -Inf outside the support
//   - Rand(src)  — one draw using an explicit random source
//   - Validate() — hyperparameter sanity (matched with ErrBadHyperparameter)
//
// Random sources are always passed in explicitly; the package never touches
// a global generator, so two runs seeded identically draw identical values.
//
// Supported families: Normal, LogNormal, Gamma, Beta, Uniform, Exponential.
package prior
