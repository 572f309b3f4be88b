package quantgo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CelsiusUnit is the affine celsius temperature scale. It is not a
// Quantity: scaling by it shifts into kelvin, so Celsius.Scale(25) is
// the same quantity as Kelvin.Scale(298.15).
type CelsiusUnit struct{}

// Celsius is the celsius temperature unit.
var Celsius CelsiusUnit

// Scale converts a celsius temperature into a kelvin quantity.
func (CelsiusUnit) Scale(t float64) Quantity {
	return Quantity{value: t + 273.15, dims: kelvinDims}
}

// ScaleArray converts a slice of celsius temperatures into a kelvin
// array quantity.
func (CelsiusUnit) ScaleArray(ts []float64) Array {
	out := make([]float64, len(ts))
	copy(out, ts)
	floats.AddConst(273.15, out)
	return Array{values: out, dims: kelvinDims}
}

// ToCelsius returns the celsius representation of a kelvin quantity
// and ErrIncompatibleUnits for anything that is not a temperature.
func (q Quantity) ToCelsius() (float64, error) {
	if q.dims != kelvinDims {
		return 0, incompatible(q.dims, kelvinDims)
	}
	return q.value - 273.15, nil
}

// Debye is the non-SI unit of electric dipole moments. It has no exact
// SI representation on its own; only even powers of it do, which is
// why it is a separate type rather than a Quantity.
type Debye float64

// Scale returns f debye.
func (d Debye) Scale(f float64) Debye {
	return Debye(f * float64(d))
}

// PowI raises the dipole moment to an integer power. Even powers
// produce a quantity in (J·Å³)^(n/2); odd powers have no SI
// representation and fail with ErrDebyeOddPower.
func (d Debye) PowI(n int) (Quantity, error) {
	if n%2 != 0 {
		return Quantity{}, ErrDebyeOddPower
	}
	angstromCubed := math.Pow(Angstrom.value, 3)
	value := math.Pow(float64(d)*float64(d)*1e-19*angstromCubed, float64(n/2))
	dims := jouleDims.Mul(meterDims.PowI(3)).PowI(n / 2)
	return Quantity{value: value, dims: dims}, nil
}

func (d Debye) String() string {
	return plainValue(float64(d)) + " De"
}

// Latex renders the dipole moment for LaTeX math mode.
func (d Debye) Latex() string {
	return floatToLatex(float64(d)) + `\,\mathrm{De}`
}

// Angle is a plane angle, stored in radians. Angles are dimensionless
// in the SI but kept as their own type so that degree and radian
// inputs cannot be mixed up.
type Angle float64

// Radians builds an angle from radians.
func Radians(r float64) Angle {
	return Angle(r)
}

// Degrees builds an angle from degrees.
func Degrees(d float64) Angle {
	return Angle(d * math.Pi / 180)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Add returns the sum of two angles.
func (a Angle) Add(other Angle) Angle {
	return a + other
}

// Sub returns the difference of two angles.
func (a Angle) Sub(other Angle) Angle {
	return a - other
}

// MulF scales the angle by a factor.
func (a Angle) MulF(f float64) Angle {
	return Angle(float64(a) * f)
}

// DivF divides the angle by a factor.
func (a Angle) DivF(f float64) Angle {
	return Angle(float64(a) / f)
}

// Neg returns the negated angle.
func (a Angle) Neg() Angle {
	return -a
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(float64(a))
}

func (a Angle) String() string {
	return fmt.Sprintf("%v°", a.Degrees())
}

// Latex renders the angle in degrees for LaTeX math mode.
func (a Angle) Latex() string {
	return floatToLatex(a.Degrees()) + "°"
}
