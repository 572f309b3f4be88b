package quantgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/quantgo/dimension"
)

var (
	// ErrDebyeOddPower is returned when a Debye value is raised to an
	// odd power, which has no SI representation.
	ErrDebyeOddPower = errors.New("debye can only be raised to even powers")
)

// ErrIncompatibleUnits indicates that two quantities with different
// dimension vectors were combined in an operation that requires
// matching units.
type ErrIncompatibleUnits struct {
	Found    dimension.Dimensions
	Expected dimension.Dimensions
}

func (e *ErrIncompatibleUnits) Error() string {
	return fmt.Sprintf("inconsistent units %s and %s", name(e.Found), name(e.Expected))
}

// ErrNotDimensionless indicates that the bare numeric value of a
// dimensioned quantity was requested.
type ErrNotDimensionless struct {
	Dims dimension.Dimensions
}

func (e *ErrNotDimensionless) Error() string {
	return fmt.Sprintf("quantity is not dimensionless: %s", name(e.Dims))
}

// name renders a dimension vector for error messages, preferring the
// registered derived symbol over raw exponent notation.
func name(dims dimension.Dimensions) string {
	if e, ok := tables().Get(dims); ok {
		return e.Symbol
	}
	if dims.IsDimensionless() {
		return "1"
	}
	return dims.String()
}

// incompatible builds the error for a unit mismatch.
func incompatible(found, expected dimension.Dimensions) error {
	return &ErrIncompatibleUnits{Found: found, Expected: expected}
}
