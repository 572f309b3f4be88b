// Package quantgo attaches SI units to numeric values and keeps them
// honest: arithmetic only combines quantities whose dimensions fit,
// and results print in compact derived-unit notation with automatic
// metric prefixes.
//
// # Quick Start
//
// Quantities are built by scaling unit constants and combined with
// ordinary method calls:
//
//	mass := quantgo.Kilogram.Scale(1000)
//	acc := quantgo.Meter.Scale(9.81).Div(quantgo.Second.PowI(2))
//	force := mass.Mul(acc)
//	fmt.Println(force) // 9.81 kN
//
// Operations that require matching units return a typed error on
// mismatch:
//
//	_, err := quantgo.Bar.Scale(5).Add(quantgo.Kelvin.Scale(300))
//	// err: inconsistent units K and Pa
//
// Conversion is division by a reference unit:
//
//	pa, _ := quantgo.Bar.Scale(5).ToReduced(quantgo.Pascal) // 500000
//
// # Formatting
//
// Plain output reduces to the best-matching derived unit and picks a
// metric prefix where the unit allows one; %e always uses scientific
// notation; Latex renders for math mode:
//
//	fmt.Sprintf("%v", force)                    // "9.81 kN"
//	fmt.Sprintf("%e", quantgo.Meter.Scale(1e-12)) // "1e-12 m"
//	force.Latex()                               // `9.81\,\mathrm{kN}`
//
// The derived-unit table and prefix table are fixed at build time,
// constructed once on first use and read-only afterwards; the package
// is safe for concurrent use.
//
// # Vector Quantities
//
// Array holds a float slice under a single shared unit, with the same
// checked arithmetic, plus Linspace/Logspace constructors:
//
//	ts, _ := quantgo.Linspace(quantgo.Kelvin.Scale(300), quantgo.Kelvin.Scale(400), 11)
//	ts.At(3)                                    // 330 K
package quantgo
