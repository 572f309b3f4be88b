package quantgo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/quantgo/dimension"
	"github.com/hupe1980/quantgo/internal/prefix"
)

// String renders the quantity in plain notation: the value reduced to
// the best-matching derived unit, with a metric prefix where the unit
// is eligible, e.g. "9.81 kN". Values outside [1e-2, 1e4) switch to
// scientific notation; zero does not. Formatting never changes the
// quantity itself.
func (q Quantity) String() string {
	return q.plain()
}

// Format implements fmt.Formatter. %v and %s render plain notation,
// %e and %E always render scientific notation (without prefix search).
func (q Quantity) Format(f fmt.State, verb rune) {
	switch verb {
	case 'e', 'E':
		io(f, q.exponential(verb == 'E'))
	case 'v', 's':
		io(f, q.plain())
	default:
		fmt.Fprintf(f, "%%!%c(quantgo.Quantity=%s)", verb, q.plain())
	}
}

// Latex renders the quantity for LaTeX math mode, e.g.
// `9.81\,\mathrm{\frac{kJ}{mol}}`.
func (q Quantity) Latex() string {
	if e, ok := tables().Get(q.dims); ok && !math.IsNaN(q.value) {
		v, p := prefix.Select(q.value/e.Value, e.Bound)
		return floatToLatex(v) + `\,` + unitToLatex(e.Symbols, e.Exponents, p)
	}
	return floatToLatex(q.value) + `\,` + dimsToLatex(q.dims)
}

func (q Quantity) plain() string {
	if e, ok := tables().Get(q.dims); ok && !math.IsNaN(q.value) {
		v, p := prefix.Select(q.value/e.Value, e.Bound)
		return plainValue(v) + " " + p + e.Symbol
	}
	return joinUnit(plainValue(q.value), q.dims.String())
}

func (q Quantity) exponential(upper bool) string {
	if e, ok := tables().Get(q.dims); ok && !math.IsNaN(q.value) {
		return sci(q.value/e.Value, upper) + " " + e.Symbol
	}
	return joinUnit(sci(q.value, upper), q.dims.String())
}

// plainValue renders v, switching to scientific notation when the
// magnitude leaves [1e-2, 1e4). Zero stays plain.
func plainValue(v float64) string {
	if outsidePlainRange(v) {
		return sci(v, false)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func outsidePlainRange(v float64) bool {
	abs := math.Abs(v)
	return !(abs >= 1e-2 && abs < 1e4) && v != 0
}

func sci(v float64, upper bool) string {
	verb := byte('e')
	if upper {
		verb = 'E'
	}
	return strconv.FormatFloat(v, verb, -1, 64)
}

// joinUnit appends a unit string to a rendered value, omitting the
// separator for dimensionless quantities.
func joinUnit(value, unit string) string {
	if unit == "" {
		return value
	}
	return value + " " + unit
}

func io(f fmt.State, s string) {
	_, _ = f.Write([]byte(s))
}

// floatToLatex renders a value for LaTeX with a precision that shrinks
// as the magnitude grows; outside the -1..3 decade band it uses
// \times10^{e} notation.
func floatToLatex(f float64) string {
	if f == 0 {
		return "0"
	}
	e := int(math.Floor(math.Log10(math.Abs(f))))
	switch e {
	case -1:
		return trimZeros(strconv.FormatFloat(f, 'f', 5, 64))
	case 0:
		return trimZeros(strconv.FormatFloat(f, 'f', 4, 64))
	case 1:
		return trimZeros(strconv.FormatFloat(f, 'f', 3, 64))
	case 2:
		return trimZeros(strconv.FormatFloat(f, 'f', 2, 64))
	case 3:
		return trimZeros(strconv.FormatFloat(f, 'f', 1, 64))
	default:
		mantissa := trimZeros(strconv.FormatFloat(f/math.Pow(10, float64(e)), 'f', 4, 64))
		return fmt.Sprintf(`%s\times10^{%d}`, mantissa, e)
	}
}

// trimZeros strips trailing zeros and a trailing decimal point from a
// fixed-precision rendering.
func trimZeros(x string) string {
	l := len(x)
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == '0' {
			l--
			continue
		}
		if x[i] == '.' {
			l--
		}
		break
	}
	if l == 0 {
		return "0"
	}
	return x[:l]
}

// unitToLatex builds the \mathrm fraction for a per-symbol exponent
// decomposition. A non-empty prefix joins the numerator with
// exponent 1.
func unitToLatex(symbols []string, exponents []int8, prefix string) string {
	type factor struct {
		symbol   string
		exponent int8
	}
	var num, den []factor
	if prefix != "" {
		num = append(num, factor{prefix, 1})
	}
	for i, s := range symbols {
		switch e := exponents[i]; {
		case e > 0:
			num = append(num, factor{s, e})
		case e < 0:
			den = append(den, factor{s, -e})
		}
	}

	product := func(factors []factor) string {
		var b strings.Builder
		for _, f := range factors {
			if f.exponent == 1 {
				b.WriteString(f.symbol)
			} else {
				fmt.Fprintf(&b, "%s^{%d}", f.symbol, f.exponent)
			}
		}
		return b.String()
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return fmt.Sprintf(`\mathrm{%s}`, product(num))
	case len(num) == 0:
		return fmt.Sprintf(`\mathrm{\frac{1}{%s}}`, product(den))
	default:
		return fmt.Sprintf(`\mathrm{\frac{%s}{%s}}`, product(num), product(den))
	}
}

// dimsToLatex renders a raw dimension vector, used when no derived
// unit is registered for it.
func dimsToLatex(dims dimension.Dimensions) string {
	return unitToLatex(dimension.Symbols[:], dims[:], "")
}
