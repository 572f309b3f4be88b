// Package prefix implements the metric-prefix selection heuristic used
// when formatting quantities. It never changes a quantity, only the
// number/symbol pair that gets printed.
package prefix

import "math"

// Floor is the magnitude below which no prefix is applied; values this
// small are rendered in scientific notation by the caller instead.
const Floor = 1e-12

// symbols maps a multiple-of-three decimal exponent to its SI prefix
// symbol.
var symbols = map[int]string{
	-24: "y",
	-21: "z",
	-18: "a",
	-15: "f",
	-12: "p",
	-9:  "n",
	-6:  "µ",
	-3:  "m",
	0:   "",
	3:   "k",
	6:   "M",
	9:   "G",
	12:  "T",
	15:  "P",
	18:  "E",
	21:  "Z",
	24:  "Y",
}

// Symbol returns the prefix symbol for a multiple-of-three decimal
// exponent in -24..24.
func Symbol(e int) (string, bool) {
	s, ok := symbols[e]
	return s, ok
}

// Select picks the best-fit metric prefix for value. The bound is the
// upper magnitude limit of the prefix search; a bound of 0 disables
// prefixing entirely (units like kelvin never take one). Values whose
// magnitude is not strictly between Floor and bound are returned
// unscaled so that the caller can fall back to scientific notation.
func Select(value float64, bound float64) (float64, string) {
	if bound == 0 {
		return value, ""
	}
	abs := math.Abs(value)
	e := 0
	if abs > Floor && abs < bound {
		e = floorDiv(int(math.Floor(math.Log10(abs))), 3) * 3
	}
	return value / math.Pow(10, float64(e)), symbols[e]
}

// floorDiv is Euclidean division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
