// SPDX-License-Identifier: MIT
// Package mcmc: external collaborator contracts. The sampler never
// integrates a differential equation itself; it orchestrates calls to a
// Solver and a Likelihood supplied by the caller.

package mcmc

// SolverKind selects the numerical method family the external solver
// should apply. The sampler forwards it verbatim in every SolveRequest.
type SolverKind int

const (
	// ODE is a plain ordinary-differential-equation formulation.
	ODE SolverKind = iota

	// DDE is a delay (history-dependent) formulation.
	DDE
)

// String implements fmt.Stringer.
func (k SolverKind) String() string {
	switch k {
	case ODE:
		return "ODE"
	case DDE:
		return "DDE"
	default:
		return "Unknown"
	}
}

// SolveRequest is one integration order for the external solver.
//
// Init is positional: entry i is the initial value of the solver's i-th
// state variable, in the declaration order of the block's
// InitialCondition parameters.
type SolveRequest struct {
	Kind   SolverKind
	Init   []float64
	Times  []float64
	Params map[string]float64
}

// Solver integrates the model for one parameter set.
//
// A returned error is a recoverable numerical failure (divergence,
// invalid step): the evaluator converts it into a -Inf log-posterior so
// the offending proposal is rejected and the chain continues. The call is
// synchronous with no cancellation hook; callers needing a timeout must
// wrap their solver.
type Solver interface {
	Solve(req SolveRequest) (*Trajectory, error)
}

// StateNamer is optionally implemented by solvers that know their state
// vector's names. When present, Run checks the block's initial-condition
// names and order against it before iteration 1 and aborts on mismatch —
// the positional contract is too fragile to leave unchecked.
type StateNamer interface {
	StateNames() []string
}

// Likelihood evaluates the log-likelihood of the observed data given a
// trajectory and the full named parameter mapping of the current sample.
// data is the value passed through Options.Data, verbatim. A non-finite
// return marks the parameter region invalid; it is never an error.
type Likelihood func(data any, traj *Trajectory, params map[string]float64) float64

// Trajectory is the solver's output: a table of state values indexed by
// time, with one named column per state variable.
type Trajectory struct {
	Times  []float64
	Names  []string
	Values [][]float64 // Values[i][j] = state Names[j] at Times[i]
}

// Len returns the number of time points.
func (t *Trajectory) Len() int { return len(t.Times) }

// Col returns the full column of the named state.
func (t *Trajectory) Col(name string) ([]float64, error) {
	for j, n := range t.Names {
		if n == name {
			out := make([]float64, len(t.Values))
			for i := range t.Values {
				out[i] = t.Values[i][j]
			}
			return out, nil
		}
	}
	return nil, ErrUnknownState
}

// At returns the named state's value at time index i.
func (t *Trajectory) At(i int, name string) (float64, error) {
	for j, n := range t.Names {
		if n == name {
			return t.Values[i][j], nil
		}
	}
	return 0, ErrUnknownState
}
