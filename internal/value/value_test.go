package value_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aceto-run/aceto/internal/value"
)

func TestTruthy(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    value.Value
		want bool
	}{
		{"zero int", value.IntFromInt64(0), false},
		{"nonzero int", value.IntFromInt64(1), true},
		{"zero float", value.FloatVal(0), false},
		{"nonzero float", value.FloatVal(0.1), true},
		{"empty string", value.Str(""), false},
		{"nonempty string", value.Str("x"), true},
		{"false", value.BoolVal(false), false},
		{"true", value.BoolVal(true), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Truthy())
		})
	}
}

func TestEqualCrossCase(t *testing.T) {
	assert.True(t, value.IntFromInt64(5).Equal(value.FloatVal(5.0)))
	assert.True(t, value.FloatVal(5.0).Equal(value.IntFromInt64(5)))
	assert.False(t, value.IntFromInt64(5).Equal(value.Str("5")))
}

func TestZeroUnderflowDefault(t *testing.T) {
	z := value.Zero()
	require.Equal(t, value.Int, z.Kind())
	assert.Equal(t, 0, z.Int().Cmp(big.NewInt(0)))
}

func TestFormatPyFloat(t *testing.T) {
	for _, tc := range []struct {
		f    float64
		want string
	}{
		{5, "5.0"},
		{5.5, "5.5"},
		{0, "0.0"},
		{-2.25, "-2.25"},
	} {
		assert.Equal(t, tc.want, value.FormatPyFloat(tc.f))
	}
}

func TestToIntegerParseFailureDefaultsZero(t *testing.T) {
	got := value.Str("not a number").ToInteger()
	assert.Equal(t, 0, got.Int().Sign())
}

func TestToStringValueBooleans(t *testing.T) {
	assert.Equal(t, "True", value.BoolVal(true).ToStringValue().Str())
	assert.Equal(t, "False", value.BoolVal(false).ToStringValue().Str())
}
