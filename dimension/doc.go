// Package dimension implements the exponent-vector representation of
// physical dimensions and the algebra that combines them.
//
// A Dimensions value holds one signed exponent per SI base dimension in
// the canonical order length, mass, time, electric current,
// thermodynamic temperature, amount of substance, luminous intensity.
// Multiplying two quantities adds their exponent vectors, dividing
// subtracts them, and so on. The zero value is the dimensionless
// element and the multiplicative identity.
package dimension
