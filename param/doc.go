// Package param declares the parameter data model consumed by the sampler:
// which quantities of a differential-equation model are free, which are
// fixed, what their priors are and how proposals for them are drawn.
//
// A Param describes one scalar quantity. A Block collates Params in
// declaration order and partitions them, without reordering, into the
// three groups the external solver needs:
//
//   - EquationParam    — coefficients of the differential equation
//   - InitialCondition — entries of the solver's initial state vector
//   - ObservationParam — parameters of the observation (likelihood) model
//
// The relative order of InitialCondition entries is load-bearing: it must
// match the positional order of the external solver's state vector, and a
// Block never permutes it. Solvers that report their state names get this
// checked before a run starts (see the mcmc package).
//
// Blocks are built once with NewBlock, which validates every declaration
// up front, and are read-only afterwards; the sampler keeps its working
// values in its own state.
package param
