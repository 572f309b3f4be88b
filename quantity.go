package quantgo

import (
	"math"

	"github.com/hupe1980/quantgo/dimension"
)

// Quantity is a scalar numeric value tagged with a dimension vector.
// It is an immutable value type: every operation returns a new
// Quantity. Quantities are built by scaling one of the unit constants,
// e.g. Bar.Scale(5) for 5 bar, or by combining existing quantities.
type Quantity struct {
	value float64
	dims  dimension.Dimensions
}

// New creates a quantity from a raw value and dimension vector. It is
// a construction primitive and performs no validation.
func New(value float64, dims dimension.Dimensions) Quantity {
	return Quantity{value: value, dims: dims}
}

// FromRawParts rebuilds a quantity from the (value, exponents) pair
// used at serialization and binding boundaries.
func FromRawParts(value float64, unit [dimension.Count]int8) Quantity {
	return Quantity{value: value, dims: dimension.Dimensions(unit)}
}

// RawParts decomposes the quantity into the (value, exponents) pair
// used at serialization and binding boundaries.
func (q Quantity) RawParts() (float64, [dimension.Count]int8) {
	return q.value, [dimension.Count]int8(q.dims)
}

// Dimensions returns the dimension vector of the quantity.
func (q Quantity) Dimensions() dimension.Dimensions {
	return q.dims
}

// Scale returns f times the quantity. It is the idiom for attaching a
// unit to a number: Meter.Scale(5) is 5 m.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{value: f * q.value, dims: q.dims}
}

// Add returns q + other. Both operands must share a dimension vector;
// otherwise ErrIncompatibleUnits is returned.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if q.dims != other.dims {
		return Quantity{}, incompatible(other.dims, q.dims)
	}
	return Quantity{value: q.value + other.value, dims: q.dims}, nil
}

// Sub returns q - other. Both operands must share a dimension vector;
// otherwise ErrIncompatibleUnits is returned.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if q.dims != other.dims {
		return Quantity{}, incompatible(other.dims, q.dims)
	}
	return Quantity{value: q.value - other.value, dims: q.dims}, nil
}

// Mul returns the product of two quantities. The dimension vectors are
// added; the operation always succeeds.
func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity{value: q.value * other.value, dims: q.dims.Mul(other.dims)}
}

// Div returns the quotient of two quantities. The dimension vectors
// are subtracted; the operation always succeeds.
func (q Quantity) Div(other Quantity) Quantity {
	return Quantity{value: q.value / other.value, dims: q.dims.Div(other.dims)}
}

// MulF multiplies the value by a dimensionless factor.
func (q Quantity) MulF(f float64) Quantity {
	return Quantity{value: q.value * f, dims: q.dims}
}

// DivF divides the value by a dimensionless factor.
func (q Quantity) DivF(f float64) Quantity {
	return Quantity{value: q.value / f, dims: q.dims}
}

// Neg returns the negated quantity.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, dims: q.dims}
}

// Abs returns the quantity with the absolute value.
func (q Quantity) Abs() Quantity {
	return Quantity{value: math.Abs(q.value), dims: q.dims}
}

// Recip returns the reciprocal quantity.
func (q Quantity) Recip() Quantity {
	return Quantity{value: 1 / q.value, dims: q.dims.Recip()}
}

// PowI raises the quantity to an integer power.
func (q Quantity) PowI(n int) Quantity {
	return Quantity{value: math.Pow(q.value, float64(n)), dims: q.dims.PowI(n)}
}

// Root returns the n-th root. The unit root is validated first so a
// wrongly-dimensioned result is never produced; exponents that are not
// divisible by n yield dimension.ErrInvalidRoot.
func (q Quantity) Root(n int) (Quantity, error) {
	dims, err := q.dims.Root(n)
	if err != nil {
		return Quantity{}, err
	}
	var value float64
	switch n {
	case 2:
		value = math.Sqrt(q.value)
	case 3:
		value = math.Cbrt(q.value)
	default:
		value = math.Pow(q.value, 1/float64(n))
	}
	return Quantity{value: value, dims: dims}, nil
}

// Sqrt is Root(2).
func (q Quantity) Sqrt() (Quantity, error) {
	return q.Root(2)
}

// Cbrt is Root(3).
func (q Quantity) Cbrt() (Quantity, error) {
	return q.Root(3)
}

// ToReduced divides the quantity by a reference quantity of the same
// unit and returns the bare ratio. It is the canonical unit-conversion
// primitive: Bar.Scale(5).ToReduced(Pascal) is 500000.
func (q Quantity) ToReduced(reference Quantity) (float64, error) {
	if q.dims != reference.dims {
		return 0, incompatible(q.dims, reference.dims)
	}
	return q.value / reference.value, nil
}

// Value returns the raw numeric value of a dimensionless quantity and
// ErrNotDimensionless otherwise.
func (q Quantity) Value() (float64, error) {
	if !q.dims.IsDimensionless() {
		return 0, &ErrNotDimensionless{Dims: q.dims}
	}
	return q.value, nil
}

// HasUnit reports whether q and other share a dimension vector,
// ignoring the values.
func (q Quantity) HasUnit(other Quantity) bool {
	return q.dims == other.dims
}

// Cmp compares two quantities of the same unit: -1 if q < other, 0 if
// equal, +1 if q > other. Quantities of different units are not
// comparable and yield ErrIncompatibleUnits.
func (q Quantity) Cmp(other Quantity) (int, error) {
	if q.dims != other.dims {
		return 0, incompatible(other.dims, q.dims)
	}
	switch {
	case q.value < other.value:
		return -1, nil
	case q.value > other.value:
		return 1, nil
	default:
		return 0, nil
	}
}

// Eq reports whether two quantities of the same unit have equal values.
func (q Quantity) Eq(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return c == 0 && err == nil, err
}

// Less reports whether q < other for quantities of the same unit.
func (q Quantity) Less(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return c < 0 && err == nil, err
}

// LessEq reports whether q <= other for quantities of the same unit.
func (q Quantity) LessEq(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return c <= 0 && err == nil, err
}

// Greater reports whether q > other for quantities of the same unit.
func (q Quantity) Greater(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return c > 0 && err == nil, err
}

// GreaterEq reports whether q >= other for quantities of the same unit.
func (q Quantity) GreaterEq(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return c >= 0 && err == nil, err
}

// Min returns the smaller of two quantities of the same unit.
func (q Quantity) Min(other Quantity) (Quantity, error) {
	if q.dims != other.dims {
		return Quantity{}, incompatible(other.dims, q.dims)
	}
	return Quantity{value: math.Min(q.value, other.value), dims: q.dims}, nil
}

// Max returns the larger of two quantities of the same unit.
func (q Quantity) Max(other Quantity) (Quantity, error) {
	if q.dims != other.dims {
		return Quantity{}, incompatible(other.dims, q.dims)
	}
	return Quantity{value: math.Max(q.value, other.value), dims: q.dims}, nil
}

// Signum returns 1 for positive values (including +0), -1 for negative
// values (including -0) and NaN for NaN.
func (q Quantity) Signum() float64 {
	if math.IsNaN(q.value) {
		return math.NaN()
	}
	if math.Signbit(q.value) {
		return -1
	}
	return 1
}

// IsNaN reports whether the value is NaN.
func (q Quantity) IsNaN() bool {
	return math.IsNaN(q.value)
}

// IsSignPositive reports whether the value has a positive sign.
func (q Quantity) IsSignPositive() bool {
	return !math.Signbit(q.value)
}

// IsSignNegative reports whether the value has a negative sign.
func (q Quantity) IsSignNegative() bool {
	return math.Signbit(q.value)
}

// Must unwraps a fallible quantity operation, panicking on error. It
// is the explicit opt-in for treating unit mismatches as unrecoverable
// bugs: force := Must(mass.Add(other)).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
