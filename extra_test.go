package quantgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelsius(t *testing.T) {
	q := Celsius.Scale(25)
	assert.True(t, q.HasUnit(Kelvin))
	assert.InDelta(t, 298.15, q.value, 1e-12)

	eq, err := q.Eq(Kelvin.Scale(298.15))
	require.NoError(t, err)
	assert.True(t, eq)

	c, err := Kelvin.Scale(298.15).ToCelsius()
	require.NoError(t, err)
	assert.InDelta(t, 25.0, c, 1e-12)
}

func TestCelsiusScaleArray(t *testing.T) {
	a := Celsius.ScaleArray([]float64{0, 25, 100})
	assert.Equal(t, Kelvin.Dimensions(), a.Dimensions())
	assert.InDelta(t, 273.15, a.At(0).value, 1e-12)
	assert.InDelta(t, 373.15, a.At(2).value, 1e-12)
}

func TestToCelsiusWrongUnit(t *testing.T) {
	_, err := Pascal.Scale(1).ToCelsius()
	var iu *ErrIncompatibleUnits
	require.ErrorAs(t, err, &iu)
	assert.Equal(t, Pascal.Dimensions(), iu.Found)
	assert.Equal(t, Kelvin.Dimensions(), iu.Expected)
}

func TestDebyeEvenPower(t *testing.T) {
	d := Debye(1).Scale(2)

	q, err := d.PowI(2)
	require.NoError(t, err)
	assert.True(t, q.HasUnit(Joule.Mul(Angstrom.PowI(3))))
	assert.InDelta(t, 4e-19*1e-30, q.value, 1e-60)

	q4, err := d.PowI(4)
	require.NoError(t, err)
	assert.True(t, q4.HasUnit(Joule.Mul(Angstrom.PowI(3)).PowI(2)))
}

func TestDebyeOddPower(t *testing.T) {
	_, err := Debye(2).PowI(3)
	require.ErrorIs(t, err, ErrDebyeOddPower)

	_, err = Debye(2).PowI(1)
	require.ErrorIs(t, err, ErrDebyeOddPower)
}

func TestDebyeString(t *testing.T) {
	assert.Equal(t, "2.5 De", Debye(2.5).String())
	assert.Equal(t, `2.5\,\mathrm{De}`, Debye(2.5).Latex())
}

func TestAngleConversion(t *testing.T) {
	a := Degrees(180)
	assert.InDelta(t, math.Pi, a.Radians(), 1e-12)
	assert.InDelta(t, 180, a.Degrees(), 1e-12)

	b := Radians(math.Pi / 2)
	assert.InDelta(t, 90, b.Degrees(), 1e-12)
}

func TestAngleArithmetic(t *testing.T) {
	a := Degrees(30).Add(Degrees(60))
	assert.InDelta(t, 90, a.Degrees(), 1e-12)
	assert.InDelta(t, 1.0, a.Sin(), 1e-12)
	assert.InDelta(t, 0.0, a.Cos(), 1e-12)

	assert.InDelta(t, 45, Degrees(90).DivF(2).Degrees(), 1e-12)
	assert.InDelta(t, -30, Degrees(30).Neg().Degrees(), 1e-12)
	assert.InDelta(t, 1.0, Degrees(45).Tan(), 1e-12)
}

func TestAngleString(t *testing.T) {
	assert.Equal(t, "90°", Degrees(90).String())
}
