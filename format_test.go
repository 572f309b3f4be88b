package quantgo

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringPrefix(t *testing.T) {
	tests := []struct {
		name     string
		q        Quantity
		expected string
	}{
		{"ForceKilo", Kilogram.Scale(1000).Mul(Meter.Scale(9.81).Div(Second.PowI(2))), "9.81 kN"},
		{"PlainNewton", Newton.Scale(5), "5 N"},
		{"Milli", Second.Scale(0.005), "5 ms"},
		{"MicroMole", Mol.Scale(2e-6), "2 µmol"},
		{"MegaJoule", Joule.Scale(2.5e6), "2.5 MJ"},
		{"KiloVolt", Watt.Scale(2500).Div(Ampere), "2.5 kV"},
		{"KiloFarad", Coulomb.Scale(2500).Div(Volt), "2.5 kF"},
		{"KiloOhm", Volt.Scale(2500).Div(Ampere), "2.5 kΩ"},
		{"KiloSiemens", Ohm.Scale(1).Recip().MulF(2500), "2.5 kS"},
		{"KiloWeber", Volt.Scale(2500).Mul(Second), "2.5 kWb"},
		{"KiloTesla", Weber.Scale(2500).Div(Meter.PowI(2)), "2.5 kT"},
		{"KiloHenry", Weber.Scale(2500).Div(Ampere), "2.5 kH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.q.String())
		})
	}
}

func TestStringNoPrefix(t *testing.T) {
	tests := []struct {
		name     string
		q        Quantity
		expected string
	}{
		// Kelvin never takes a prefix; out-of-range magnitudes go
		// scientific instead.
		{"Kelvin", Kelvin.Scale(300), "300 K"},
		{"ZeroKelvin", Kelvin.Scale(0), "0 K"},
		{"BigKelvin", Kelvin.Scale(1e5), "1e+05 K"},
		{"Volume", Liter.Scale(1), "1e-03 m³"},
		{"Kilogram", Kilogram.Scale(2), "2 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.q.String())
		})
	}
}

func TestStringRawFallback(t *testing.T) {
	// m^4 has no derived symbol.
	q := Meter.PowI(4).Scale(2)
	assert.Equal(t, "2 m^4", q.String())

	// Dimensionless quantities print the bare value.
	ratio := Bar.Scale(5).Div(Pascal.Scale(1e5))
	assert.Equal(t, "5", ratio.String())
}

func TestStringReducesToDerivedSymbol(t *testing.T) {
	// Molar mass reduces through the g/mol reference value.
	s := Gram.Scale(18).Div(Mol).String()
	assert.True(t, strings.HasSuffix(s, " g/mol"), s)
}

func TestStringNaN(t *testing.T) {
	// NaN skips the derived-unit reduction and prints raw.
	q := Kelvin.Scale(math.NaN())
	assert.Equal(t, "NaN K", q.String())
}

func TestFormatExponential(t *testing.T) {
	tests := []struct {
		name     string
		q        Quantity
		format   string
		expected string
	}{
		{"PicoMeter", Meter.Scale(Pico), "%e", "1e-12 m"},
		{"Upper", Meter.Scale(Pico), "%E", "1E-12 m"},
		{"NoPrefixSearch", Newton.Scale(9810), "%e", "9.81e+03 N"},
		{"Plain", Newton.Scale(9810), "%v", "9.81 kN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fmt.Sprintf(tt.format, tt.q))
		})
	}
}

func TestLatex(t *testing.T) {
	tests := []struct {
		name     string
		q        Quantity
		expected string
	}{
		{"Force", Newton.Scale(9810), `9.81\,\mathrm{kN}`},
		{"MolarEntropy", RGas, `8.3145\,\mathrm{\frac{J}{molK}}`},
		{"PerKelvin", Kelvin.Scale(2).Recip(), `0.5\,\mathrm{\frac{1}{K}}`},
		{"RawFallback", Meter.PowI(4).Scale(2), `2\,\mathrm{m^{4}}`},
		{"Nano", Meter.Scale(2.5e-9), `2.5\,\mathrm{nm}`},
		{"BelowPrefixFloor", Meter.Scale(2.5e-20), `2.5\times10^{-20}\,\mathrm{m}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.q.Latex())
		})
	}
}

func TestFloatToLatex(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{9.81, "9.81"},
		{83.1446, "83.145"},
		{831.446, "831.45"},
		{8314.46, "8314.5"},
		{83144.6, `8.3145\times10^{4}`},
		{1e-12, `1\times10^{-12}`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, floatToLatex(tt.in), "%v", tt.in)
	}
}

func TestTrimZeros(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"9.8100", "9.81"},
		{"2.0000", "2"},
		{"0.5000", "0.5"},
		{"100", "100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, trimZeros(tt.in))
	}
}
