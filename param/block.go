// SPDX-License-Identifier: MIT

package param

import (
	"fmt"
	"math"

	"github.com/katalvlaran/debayes/kernel"
)

// Block is an ordered, validated collection of Params.
//
// Declaration order is preserved everywhere: in the full value vector, in
// each category partition, and in particular in the initial-condition
// vector handed to the external solver. A Block is immutable after
// NewBlock returns.
type Block struct {
	specs     []Param
	index     map[string]int
	estimated []int // indices of non-fixed specs, declaration order
	initial   []int // indices of InitialCondition specs, declaration order
	equation  []int // indices of EquationParam specs, declaration order
}

// NewBlock validates the declarations and builds a Block.
// All configuration errors are reported here, before any sampling.
func NewBlock(specs ...Param) (*Block, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyBlock
	}
	b := &Block{
		specs: append([]Param(nil), specs...),
		index: make(map[string]int, len(specs)),
	}
	for i, p := range b.specs {
		if err := validateSpec(p); err != nil {
			return nil, fmt.Errorf("parameter %d (%q): %w", i, p.Name, err)
		}
		if _, dup := b.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		b.index[p.Name] = i
		if !p.Fixed {
			b.estimated = append(b.estimated, i)
		}
		switch p.Category {
		case InitialCondition:
			b.initial = append(b.initial, i)
		case EquationParam:
			b.equation = append(b.equation, i)
		}
	}
	return b, nil
}

// validateSpec enforces the per-parameter invariants of the data model.
func validateSpec(p Param) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	switch p.Category {
	case EquationParam, InitialCondition, ObservationParam:
	default:
		return ErrUnknownCategory
	}
	if p.Prior != nil {
		if err := p.Prior.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrBadPrior, err)
		}
	}
	if p.Fixed {
		return nil
	}
	if p.Prior == nil {
		return ErrMissingPrior
	}
	if lp := p.Prior.LogProb(p.Value); math.IsNaN(lp) || math.IsInf(lp, -1) {
		return fmt.Errorf("%w: %s at %g", ErrOutOfSupport, p.Prior, p.Value)
	}
	if err := p.Scale.Validate(p.Kernel); err != nil {
		return fmt.Errorf("%w: %v", ErrBadProposal, err)
	}
	if p.Kernel == kernel.UniformRatio && p.Value <= 0 {
		return fmt.Errorf("%w: UniformRatio needs a positive start, got %g", ErrBadProposal, p.Value)
	}
	return nil
}

// Len returns the number of declared parameters.
func (b *Block) Len() int { return len(b.specs) }

// At returns a copy of the i-th declaration.
func (b *Block) At(i int) Param { return b.specs[i] }

// Index returns the declaration position of name.
func (b *Block) Index(name string) (int, bool) {
	i, ok := b.index[name]
	return i, ok
}

// Names returns all parameter names in declaration order.
func (b *Block) Names() []string {
	out := make([]string, len(b.specs))
	for i, p := range b.specs {
		out[i] = p.Name
	}
	return out
}

// Values returns the declared starting values as a fresh vector.
func (b *Block) Values() []float64 {
	out := make([]float64, len(b.specs))
	for i, p := range b.specs {
		out[i] = p.Value
	}
	return out
}

// Estimated returns the declaration indices of all non-fixed parameters,
// in declaration order. The slice is a copy.
func (b *Block) Estimated() []int {
	return append([]int(nil), b.estimated...)
}

// ByCategory returns copies of the declarations in category c,
// preserving declaration order.
func (b *Block) ByCategory(c Category) []Param {
	var out []Param
	for _, p := range b.specs {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// InitialNames returns the names of the InitialCondition parameters in
// declaration order — the exact positional order of the solver's state
// vector.
func (b *Block) InitialNames() []string {
	out := make([]string, len(b.initial))
	for k, i := range b.initial {
		out[k] = b.specs[i].Name
	}
	return out
}

// InitialStateFrom extracts the ordered initial-condition vector from a
// full value vector of length Len().
func (b *Block) InitialStateFrom(values []float64) ([]float64, error) {
	if len(values) != len(b.specs) {
		return nil, ErrBadVector
	}
	out := make([]float64, len(b.initial))
	for k, i := range b.initial {
		out[k] = values[i]
	}
	return out, nil
}

// EquationParamsFrom extracts the named equation-parameter mapping from a
// full value vector of length Len().
func (b *Block) EquationParamsFrom(values []float64) (map[string]float64, error) {
	if len(values) != len(b.specs) {
		return nil, ErrBadVector
	}
	out := make(map[string]float64, len(b.equation))
	for _, i := range b.equation {
		out[b.specs[i].Name] = values[i]
	}
	return out, nil
}

// NamedFrom maps every declared name to its entry in a full value vector
// of length Len().
func (b *Block) NamedFrom(values []float64) (map[string]float64, error) {
	if len(values) != len(b.specs) {
		return nil, ErrBadVector
	}
	out := make(map[string]float64, len(b.specs))
	for i, p := range b.specs {
		out[p.Name] = values[i]
	}
	return out, nil
}
