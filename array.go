package quantgo

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/quantgo/dimension"
	"gonum.org/v1/gonum/floats"
)

// Array is a vector of numeric values sharing a single dimension
// vector. It is the vector-valued counterpart of Quantity: the unit
// bookkeeping is identical, only the payload is a float slice.
type Array struct {
	values []float64
	dims   dimension.Dimensions
}

// NewArray creates an array quantity from raw values and a dimension
// vector. The slice is copied; the array owns its payload.
func NewArray(values []float64, dims dimension.Dimensions) Array {
	out := make([]float64, len(values))
	copy(out, values)
	return Array{values: out, dims: dims}
}

// ArrayFromQuantities collects scalar quantities into an array. All
// elements must share a dimension vector; the first mismatch is
// reported as ErrIncompatibleUnits.
func ArrayFromQuantities(qs []Quantity) (Array, error) {
	values := make([]float64, len(qs))
	var dims dimension.Dimensions
	for i, q := range qs {
		if i == 0 {
			dims = q.dims
		} else if q.dims != dims {
			return Array{}, incompatible(q.dims, dims)
		}
		values[i] = q.value
	}
	return Array{values: values, dims: dims}, nil
}

// Linspace returns n linearly spaced quantities between start and end
// (inclusive). Start and end must share a unit.
func Linspace(start, end Quantity, n int) (Array, error) {
	if start.dims != end.dims {
		return Array{}, incompatible(end.dims, start.dims)
	}
	values := make([]float64, n)
	switch n {
	case 0:
	case 1:
		values[0] = start.value
	default:
		floats.Span(values, start.value, end.value)
	}
	return Array{values: values, dims: start.dims}, nil
}

// Logspace returns n logarithmically spaced quantities between start
// and end (inclusive). Start and end must share a unit and have
// positive values.
func Logspace(start, end Quantity, n int) (Array, error) {
	if start.dims != end.dims {
		return Array{}, incompatible(end.dims, start.dims)
	}
	values := make([]float64, n)
	switch n {
	case 0:
	case 1:
		values[0] = start.value
	default:
		floats.LogSpan(values, start.value, end.value)
	}
	return Array{values: values, dims: start.dims}, nil
}

// Dimensions returns the shared dimension vector.
func (a Array) Dimensions() dimension.Dimensions {
	return a.dims
}

// Len returns the number of elements.
func (a Array) Len() int {
	return len(a.values)
}

// IsEmpty reports whether the array has no elements.
func (a Array) IsEmpty() bool {
	return len(a.values) == 0
}

// Values returns a copy of the raw payload.
func (a Array) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	return out
}

// At returns the i-th element as a scalar quantity sharing the
// array's unit.
func (a Array) At(i int) Quantity {
	return Quantity{value: a.values[i], dims: a.dims}
}

// SetAt assigns a scalar quantity to the i-th element. The assigned
// value must carry the array's unit; otherwise ErrIncompatibleUnits is
// returned and the array is unchanged.
func (a Array) SetAt(i int, q Quantity) error {
	if q.dims != a.dims {
		return incompatible(q.dims, a.dims)
	}
	a.values[i] = q.value
	return nil
}

// Quantities expands the array into scalar quantities.
func (a Array) Quantities() []Quantity {
	out := make([]Quantity, len(a.values))
	for i, v := range a.values {
		out[i] = Quantity{value: v, dims: a.dims}
	}
	return out
}

// Sum returns the sum of all elements.
func (a Array) Sum() Quantity {
	return Quantity{value: floats.Sum(a.values), dims: a.dims}
}

// Add returns the element-wise sum of two arrays of the same unit and
// length.
func (a Array) Add(other Array) (Array, error) {
	if a.dims != other.dims {
		return Array{}, incompatible(other.dims, a.dims)
	}
	out := make([]float64, len(a.values))
	floats.AddTo(out, a.values, other.values)
	return Array{values: out, dims: a.dims}, nil
}

// Sub returns the element-wise difference of two arrays of the same
// unit and length.
func (a Array) Sub(other Array) (Array, error) {
	if a.dims != other.dims {
		return Array{}, incompatible(other.dims, a.dims)
	}
	out := make([]float64, len(a.values))
	floats.SubTo(out, a.values, other.values)
	return Array{values: out, dims: a.dims}, nil
}

// Mul multiplies every element by a scalar quantity. The dimension
// vectors are added; the operation always succeeds.
func (a Array) Mul(q Quantity) Array {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	floats.Scale(q.value, out)
	return Array{values: out, dims: a.dims.Mul(q.dims)}
}

// Div divides every element by a scalar quantity. The dimension
// vectors are subtracted; the operation always succeeds.
func (a Array) Div(q Quantity) Array {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	floats.Scale(1/q.value, out)
	return Array{values: out, dims: a.dims.Div(q.dims)}
}

// MulF multiplies every element by a dimensionless factor.
func (a Array) MulF(f float64) Array {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	floats.Scale(f, out)
	return Array{values: out, dims: a.dims}
}

// Scale is the array counterpart of Quantity.Scale: f times the array.
func (a Array) Scale(f float64) Array {
	return a.MulF(f)
}

// PowI raises every element to an integer power.
func (a Array) PowI(n int) Array {
	out := make([]float64, len(a.values))
	for i, v := range a.values {
		out[i] = math.Pow(v, float64(n))
	}
	return Array{values: out, dims: a.dims.PowI(n)}
}

// Root returns the element-wise n-th root. As for scalars, the unit
// root is validated before any result is produced.
func (a Array) Root(n int) (Array, error) {
	dims, err := a.dims.Root(n)
	if err != nil {
		return Array{}, err
	}
	out := make([]float64, len(a.values))
	for i, v := range a.values {
		switch n {
		case 2:
			out[i] = math.Sqrt(v)
		case 3:
			out[i] = math.Cbrt(v)
		default:
			out[i] = math.Pow(v, 1/float64(n))
		}
	}
	return Array{values: out, dims: dims}, nil
}

// Sqrt is Root(2).
func (a Array) Sqrt() (Array, error) {
	return a.Root(2)
}

// Cbrt is Root(3).
func (a Array) Cbrt() (Array, error) {
	return a.Root(3)
}

// ToReduced divides every element by a reference quantity of the same
// unit and returns the bare ratios.
func (a Array) ToReduced(reference Quantity) ([]float64, error) {
	if a.dims != reference.dims {
		return nil, incompatible(a.dims, reference.dims)
	}
	out := make([]float64, len(a.values))
	copy(out, a.values)
	floats.Scale(1/reference.value, out)
	return out, nil
}

// String renders the array with its values reduced to the registered
// derived unit, e.g. "[1 2 3] m/s". No prefix search is applied to
// arrays.
func (a Array) String() string {
	values := a.values
	symbol := a.dims.String()
	if e, ok := tables().Get(a.dims); ok {
		reduced, _ := a.ToReduced(Quantity{value: e.Value, dims: e.Dims})
		values = reduced
		symbol = e.Symbol
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(plainValue(v))
	}
	b.WriteByte(']')
	if symbol != "" {
		b.WriteByte(' ')
		b.WriteString(symbol)
	}
	return b.String()
}

// Format implements fmt.Formatter; all verbs render like String.
func (a Array) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io(f, a.String())
	default:
		fmt.Fprintf(f, "%%!%c(quantgo.Array=%s)", verb, a.String())
	}
}
