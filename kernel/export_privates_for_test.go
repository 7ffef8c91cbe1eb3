// SPDX-License-Identifier: MIT
// Test-only exports. Nothing here is part of the public API.

package kernel

// UniformRatioLogDensity exposes the internal proposal density of the
// UniformRatio kernel so tests can check the asymmetry correction against
// the density definition itself.
var UniformRatioLogDensity = logDensity
