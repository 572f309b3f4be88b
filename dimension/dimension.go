package dimension

import (
	"fmt"
	"strings"
)

// Count is the number of SI base dimensions.
const Count = 7

// Indices into a Dimensions vector, in canonical order.
const (
	Length = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminous
)

// Symbols holds the base-unit symbol for each component of a
// Dimensions vector, in canonical order.
var Symbols = [Count]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// Dimensions is a vector of signed exponents, one per SI base
// dimension. The zero value is dimensionless.
//
// Exponents are expected to stay within roughly -20..20. The bound is
// advisory: PowI with a large n can overflow int8, which is a caller
// error.
type Dimensions [Count]int8

// Dimensionless is the all-zero exponent vector.
var Dimensionless = Dimensions{}

// ErrInvalidRoot indicates that a root was requested of a dimension
// vector whose exponents are not all divisible by the index.
type ErrInvalidRoot struct {
	Index int
}

func (e *ErrInvalidRoot) Error() string {
	return fmt.Sprintf("unit exponents are not multiples of %d", e.Index)
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimensions) IsDimensionless() bool {
	return d == Dimensionless
}

// Equal reports whether d and other have pairwise equal exponents.
func (d Dimensions) Equal(other Dimensions) bool {
	return d == other
}

// Mul returns the dimension vector of a product: component-wise sum.
func (d Dimensions) Mul(other Dimensions) Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = d[i] + other[i]
	}
	return out
}

// Div returns the dimension vector of a quotient: component-wise
// difference.
func (d Dimensions) Div(other Dimensions) Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = d[i] - other[i]
	}
	return out
}

// PowI returns the dimension vector of the n-th power.
func (d Dimensions) PowI(n int) Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = d[i] * int8(n)
	}
	return out
}

// Root returns the dimension vector of the n-th root. It fails with
// ErrInvalidRoot unless every exponent is evenly divisible by n.
func (d Dimensions) Root(n int) (Dimensions, error) {
	var out Dimensions
	for i := range d {
		if d[i]%int8(n) != 0 {
			return Dimensionless, &ErrInvalidRoot{Index: n}
		}
		out[i] = d[i] / int8(n)
	}
	return out, nil
}

// Sqrt is Root(2).
func (d Dimensions) Sqrt() (Dimensions, error) {
	return d.Root(2)
}

// Cbrt is Root(3).
func (d Dimensions) Cbrt() (Dimensions, error) {
	return d.Root(3)
}

// Recip returns the dimension vector of the reciprocal: component-wise
// negation.
func (d Dimensions) Recip() Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = -d[i]
	}
	return out
}

// String renders the vector in raw base-unit notation, e.g.
// "kg m s^-2". Zero exponents are omitted, as is the exponent 1. The
// dimensionless vector renders as the empty string.
func (d Dimensions) String() string {
	parts := make([]string, 0, Count)
	for i, e := range d {
		switch e {
		case 0:
		case 1:
			parts = append(parts, Symbols[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", Symbols[i], e))
		}
	}
	return strings.Join(parts, " ")
}
