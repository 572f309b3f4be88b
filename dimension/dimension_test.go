package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Dimensions
		mul  Dimensions
		div  Dimensions
	}{
		{
			"Force",
			Dimensions{0, 1, 0, 0, 0, 0, 0},
			Dimensions{1, 0, -2, 0, 0, 0, 0},
			Dimensions{1, 1, -2, 0, 0, 0, 0},
			Dimensions{-1, 1, 2, 0, 0, 0, 0},
		},
		{
			"Identity",
			Dimensions{2, 1, -2, 0, 0, 0, 0},
			Dimensionless,
			Dimensions{2, 1, -2, 0, 0, 0, 0},
			Dimensions{2, 1, -2, 0, 0, 0, 0},
		},
		{
			"Cancellation",
			Dimensions{1, 0, -1, 0, 0, 0, 0},
			Dimensions{1, 0, -1, 0, 0, 0, 0},
			Dimensions{2, 0, -2, 0, 0, 0, 0},
			Dimensionless,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mul, tt.a.Mul(tt.b))
			assert.Equal(t, tt.div, tt.a.Div(tt.b))
		})
	}
}

func TestRecip(t *testing.T) {
	a := Dimensions{-1, 1, -2, 0, 0, 0, 0}
	assert.Equal(t, Dimensions{1, -1, 2, 0, 0, 0, 0}, a.Recip())
	assert.True(t, a.Mul(a.Recip()).IsDimensionless())
}

func TestPowIRootRoundTrip(t *testing.T) {
	bases := []Dimensions{
		{1, 0, 0, 0, 0, 0, 0},
		{2, 1, -2, 0, 0, 0, 0},
		{-1, 1, -2, 0, 0, 0, 0},
	}
	for _, a := range bases {
		for _, n := range []int{1, 2, 3, 5} {
			got, err := a.PowI(n).Root(n)
			require.NoError(t, err)
			assert.Equal(t, a, got)
		}
	}
}

func TestRootInvalid(t *testing.T) {
	meter := Dimensions{1, 0, 0, 0, 0, 0, 0}

	_, err := meter.Root(2)
	var ir *ErrInvalidRoot
	require.ErrorAs(t, err, &ir)
	assert.Equal(t, 2, ir.Index)

	_, err = meter.Sqrt()
	assert.Error(t, err)

	_, err = meter.PowI(2).Sqrt()
	assert.NoError(t, err)

	_, err = meter.PowI(3).Cbrt()
	assert.NoError(t, err)
}

func TestIsDimensionless(t *testing.T) {
	assert.True(t, Dimensionless.IsDimensionless())
	assert.False(t, Dimensions{0, 0, 0, 0, 1, 0, 0}.IsDimensionless())
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		d        Dimensions
		expected string
	}{
		{"Newton", Dimensions{1, 1, -2, 0, 0, 0, 0}, "m kg s^-2"},
		{"Kelvin", Dimensions{0, 0, 0, 0, 1, 0, 0}, "K"},
		{"Area", Dimensions{2, 0, 0, 0, 0, 0, 0}, "m^2"},
		{"Dimensionless", Dimensionless, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.String())
		})
	}
}
