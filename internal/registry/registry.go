// Package registry builds the derived-unit table used for formatting:
// a map from dimension vector to display symbol, reference value,
// prefix-eligibility bound and the per-symbol decomposition needed for
// LaTeX output.
//
// The table is constructed once, by parsing a fixed list of
// unit-expression strings (e.g. "J/mol/K") against a closed vocabulary
// of atomic symbols, and is read-only afterwards.
package registry

import (
	"log/slog"
	"strings"

	"github.com/hupe1980/quantgo/dimension"
)

// Prefix-eligibility bounds of the atomic symbols.
const (
	kilo = 1e3
	mega = 1e6
	peta = 1e15
)

// atom is an atomic unit symbol: its reference quantity in base SI
// units and the magnitude bound of the prefix search (0 disables
// prefixing).
type atom struct {
	value float64
	dims  dimension.Dimensions
	bound float64
}

var atoms = map[string]atom{
	"m":   {1, dimension.Dimensions{1, 0, 0, 0, 0, 0, 0}, mega},
	"g":   {1e-3, dimension.Dimensions{0, 1, 0, 0, 0, 0, 0}, mega},
	"s":   {1, dimension.Dimensions{0, 0, 1, 0, 0, 0, 0}, kilo},
	"mol": {1, dimension.Dimensions{0, 0, 0, 0, 0, 1, 0}, mega},
	"K":   {1, dimension.Dimensions{0, 0, 0, 0, 1, 0, 0}, 0},
	"Hz":  {1, dimension.Dimensions{0, 0, -1, 0, 0, 0, 0}, peta},
	"N":   {1, dimension.Dimensions{1, 1, -2, 0, 0, 0, 0}, peta},
	"Pa":  {1, dimension.Dimensions{-1, 1, -2, 0, 0, 0, 0}, peta},
	"J":   {1, dimension.Dimensions{2, 1, -2, 0, 0, 0, 0}, peta},
	"W":   {1, dimension.Dimensions{2, 1, -3, 0, 0, 0, 0}, peta},
	"m³":  {1, dimension.Dimensions{3, 0, 0, 0, 0, 0, 0}, 0},
	"m²":  {1, dimension.Dimensions{2, 0, 0, 0, 0, 0, 0}, 0},
	"kg":  {1, dimension.Dimensions{0, 1, 0, 0, 0, 0, 0}, 0},
	"C":   {1, dimension.Dimensions{0, 0, 1, 1, 0, 0, 0}, 0},
	"V":   {1, dimension.Dimensions{2, 1, -3, -1, 0, 0, 0}, peta},
	"F":   {1, dimension.Dimensions{-2, -1, 4, 2, 0, 0, 0}, peta},
	"Ω":   {1, dimension.Dimensions{2, 1, -3, -2, 0, 0, 0}, peta},
	"S":   {1, dimension.Dimensions{-2, -1, 3, 2, 0, 0, 0}, peta},
	"Wb":  {1, dimension.Dimensions{2, 1, -2, -1, 0, 0, 0}, peta},
	"T":   {1, dimension.Dimensions{0, 1, -2, -1, 0, 0, 0}, peta},
	"H":   {1, dimension.Dimensions{2, 1, -2, -2, 0, 0, 0}, peta},
	"lm":  {1, dimension.Dimensions{0, 0, 0, 0, 0, 0, 1}, 0},
	"s²":  {1, dimension.Dimensions{0, 0, 2, 0, 0, 0, 0}, 0},
}

// expressions is the fixed list of derived units recognized by the
// formatter. Order matters only for duplicate keys, where the last
// write wins.
var expressions = []string{
	"m",
	"g",
	"s",
	"mol",
	"K",
	"Hz",
	"N",
	"Pa",
	"J",
	"W",
	"C",
	"V",
	"F",
	"Ω",
	"S",
	"Wb",
	"T",
	"H",
	"mol/m³",
	"mol/m²",
	"mol/m",
	"m³/mol",
	"m³/mol/K",
	"g/m³",
	"N/m",
	"J*s",
	"J/mol",
	"J/K",
	"J/mol/K",
	"J/kg",
	"J/kg/K",
	"Pa*s",
	"m/s",
	"m²/s",
	"W/m/K",
	"g/mol",
	"m²",
	"m³",
	"lm/W",
	"m³/kg/s²",
}

// Entry describes one derived unit.
type Entry struct {
	// Value is the reference quantity in base SI units: one of this
	// derived unit equals Value in the base representation.
	Value float64
	// Dims is the dimension vector of the unit and the table key.
	Dims dimension.Dimensions
	// Symbol is the human-readable display symbol, e.g. "J/mol/K".
	Symbol string
	// Bound is the prefix-eligibility bound of the unit's first
	// token; 0 means the unit never takes a metric prefix.
	Bound float64
	// Symbols and Exponents carry the decomposition of the
	// human-written expression, one entry per token, for LaTeX output.
	Symbols   []string
	Exponents []int8
}

// Table maps dimension vectors to derived-unit entries.
type Table struct {
	entries map[dimension.Dimensions]Entry
}

// Get returns the entry for the given dimension vector, if any.
func (t *Table) Get(dims dimension.Dimensions) (Entry, bool) {
	e, ok := t.entries[dims]
	return e, ok
}

// Len returns the number of registered derived units.
func (t *Table) Len() int {
	return len(t.entries)
}

// Build parses the fixed expression list into the derived-unit table.
// Duplicate dimension vectors are overwritten last-write-wins and
// reported through the logger. The expression list is part of the
// build; a malformed entry is an authoring bug and panics.
func Build(logger *slog.Logger) *Table {
	t := &Table{entries: make(map[dimension.Dimensions]Entry, len(expressions))}
	for _, expr := range expressions {
		e := parse(expr)
		if prev, ok := t.entries[e.Dims]; ok {
			logger.Warn("derived unit overwritten",
				"dimensions", e.Dims.String(),
				"previous", prev.Symbol,
				"symbol", e.Symbol,
			)
		}
		t.entries[e.Dims] = e
	}
	logger.Debug("derived unit table built", "entries", len(t.entries))
	return t
}

// parse folds a unit expression left to right. The first atom is
// implicitly preceded by "*".
func parse(expr string) Entry {
	e := Entry{
		Value:  1,
		Symbol: strings.ReplaceAll(expr, "*", ""),
	}
	op := byte('*')
	rest := expr
	for i := 0; len(rest) > 0; i++ {
		sym, ok := matchAtom(rest)
		if !ok {
			panic("registry: unknown unit symbol in expression " + expr)
		}
		rest = rest[len(sym):]

		a := atoms[sym]
		if i == 0 {
			e.Bound = a.bound
		}
		sign := int8(1)
		switch op {
		case '*':
			e.Value *= a.value
			e.Dims = e.Dims.Mul(a.dims)
		case '/':
			e.Value /= a.value
			e.Dims = e.Dims.Div(a.dims)
			sign = -1
		}

		// The LaTeX decomposition keeps the human-written factors:
		// m² and m³ decay to the base symbol with an explicit
		// exponent, everything else counts as a single power.
		sub, exp := sym, int8(1)
		switch sym {
		case "m²":
			sub, exp = "m", 2
		case "m³":
			sub, exp = "m", 3
		}
		e.Symbols = append(e.Symbols, sub)
		e.Exponents = append(e.Exponents, sign*exp)

		if len(rest) == 0 {
			break
		}
		op = rest[0]
		if op != '*' && op != '/' {
			panic("registry: invalid operator in expression " + expr)
		}
		rest = rest[1:]
	}
	return e
}

// matchAtom finds the longest atomic symbol prefixing s. Longest match
// matters because some symbols share prefixes ("m", "m²", "mol").
func matchAtom(s string) (string, bool) {
	best := ""
	for sym := range atoms {
		if len(sym) > len(best) && strings.HasPrefix(s, sym) {
			best = sym
		}
	}
	return best, best != ""
}
