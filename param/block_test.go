// SPDX-License-Identifier: MIT

package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/debayes/kernel"
	"github.com/katalvlaran/debayes/param"
	"github.com/katalvlaran/debayes/prior"
)

// predatorPrey declares a two-state model with interleaved categories, so
// order preservation is actually exercised.
func predatorPrey(t *testing.T) *param.Block {
	t.Helper()
	b, err := param.NewBlock(
		param.Param{Name: "alpha", Category: param.EquationParam, Value: 1.1,
			Prior:  prior.Gamma{Shape: 2, Rate: 1},
			Kernel: kernel.UniformRatio, Scale: kernel.Scale{A: 1, B: 1.5}},
		param.Param{Name: "prey0", Category: param.InitialCondition, Fixed: true, Value: 10},
		param.Param{Name: "beta", Category: param.EquationParam, Fixed: true, Value: 0.4},
		param.Param{Name: "pred0", Category: param.InitialCondition, Value: 5,
			Prior:  prior.LogNormal{Mu: 1.5, Sigma: 0.5},
			Kernel: kernel.RandomWalk, Scale: kernel.Scale{Var: 0.1}},
		param.Param{Name: "sd", Category: param.ObservationParam, Value: 0.5,
			Prior:  prior.Exponential{Rate: 1},
			Kernel: kernel.Independence},
	)
	require.NoError(t, err)
	return b
}

// TestNewBlock_PartitionPreservesOrder verifies declaration order survives
// both the category partition and the initial-condition vector.
func TestNewBlock_PartitionPreservesOrder(t *testing.T) {
	b := predatorPrey(t)

	require.Equal(t, 5, b.Len())
	assert.Equal(t, []string{"alpha", "prey0", "beta", "pred0", "sd"}, b.Names())
	assert.Equal(t, []string{"prey0", "pred0"}, b.InitialNames(),
		"initial-condition order is the solver's positional contract")

	eq := b.ByCategory(param.EquationParam)
	require.Len(t, eq, 2)
	assert.Equal(t, "alpha", eq[0].Name)
	assert.Equal(t, "beta", eq[1].Name)

	assert.Equal(t, []int{0, 3, 4}, b.Estimated(), "estimated indices in declaration order")
	assert.Equal(t, []float64{1.1, 10, 0.4, 5, 0.5}, b.Values())
}

// TestNewBlock_VectorExtraction exercises the named and positional views
// of a full value vector.
func TestNewBlock_VectorExtraction(t *testing.T) {
	b := predatorPrey(t)
	values := []float64{1.2, 11, 0.4, 6, 0.7}

	init, err := b.InitialStateFrom(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 6}, init)

	eqp, err := b.EquationParamsFrom(values)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"alpha": 1.2, "beta": 0.4}, eqp)

	named, err := b.NamedFrom(values)
	require.NoError(t, err)
	assert.Equal(t, 0.7, named["sd"])

	_, err = b.InitialStateFrom(values[:3])
	assert.ErrorIs(t, err, param.ErrBadVector)
	_, err = b.EquationParamsFrom(nil)
	assert.ErrorIs(t, err, param.ErrBadVector)
	_, err = b.NamedFrom(values[:1])
	assert.ErrorIs(t, err, param.ErrBadVector)
}

// TestNewBlock_ConfigErrors verifies each declaration invariant fails with
// its sentinel at construction time.
func TestNewBlock_ConfigErrors(t *testing.T) {
	ok := param.Param{Name: "r", Category: param.EquationParam, Value: 0.1,
		Prior:  prior.Normal{Mu: 0.1, Sigma: 0.01},
		Kernel: kernel.RandomWalk, Scale: kernel.Scale{Var: 1e-3}}

	cases := []struct {
		name  string
		specs []param.Param
		want  error
	}{
		{"empty block", nil, param.ErrEmptyBlock},
		{"empty name", []param.Param{{Category: param.EquationParam, Fixed: true}}, param.ErrEmptyName},
		{"duplicate name", []param.Param{ok, ok}, param.ErrDuplicateName},
		{"unknown category", []param.Param{{Name: "x", Category: param.Category(9), Fixed: true}},
			param.ErrUnknownCategory},
		{"missing prior", []param.Param{{Name: "x", Category: param.EquationParam, Value: 1}},
			param.ErrMissingPrior},
		{"bad prior hyperparameters", []param.Param{{Name: "x", Category: param.EquationParam,
			Value: 1, Prior: prior.Normal{Mu: 0, Sigma: -1},
			Kernel: kernel.RandomWalk, Scale: kernel.Scale{Var: 1}}}, param.ErrBadPrior},
		{"start outside support", []param.Param{{Name: "x", Category: param.EquationParam,
			Value: 2, Prior: prior.Uniform{Min: 0, Max: 1},
			Kernel: kernel.RandomWalk, Scale: kernel.Scale{Var: 1}}}, param.ErrOutOfSupport},
		{"zero variance", []param.Param{{Name: "x", Category: param.EquationParam,
			Value: 0.5, Prior: prior.Uniform{Min: 0, Max: 1},
			Kernel: kernel.RandomWalk}}, param.ErrBadProposal},
		{"inverted ratio range", []param.Param{{Name: "x", Category: param.EquationParam,
			Value: 0.5, Prior: prior.Uniform{Min: 0, Max: 1},
			Kernel: kernel.UniformRatio, Scale: kernel.Scale{A: 2, B: 1}}}, param.ErrBadProposal},
		{"ratio kernel on non-positive start", []param.Param{{Name: "x",
			Category: param.EquationParam, Value: -0.5, Prior: prior.Uniform{Min: -1, Max: 1},
			Kernel: kernel.UniformRatio, Scale: kernel.Scale{A: 1, B: 2}}}, param.ErrBadProposal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := param.NewBlock(tc.specs...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewBlock_FixedWithoutPrior verifies fixed parameters may omit both
// prior and kernel.
func TestNewBlock_FixedWithoutPrior(t *testing.T) {
	b, err := param.NewBlock(
		param.Param{Name: "c", Category: param.ObservationParam, Fixed: true, Value: 3},
	)
	require.NoError(t, err)
	assert.Empty(t, b.Estimated())
	assert.Equal(t, 3.0, b.At(0).Value)
}

// TestBlock_Index verifies name lookups.
func TestBlock_Index(t *testing.T) {
	b := predatorPrey(t)

	i, ok := b.Index("pred0")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = b.Index("nope")
	assert.False(t, ok)
}
