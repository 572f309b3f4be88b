package quantgo

import "github.com/hupe1980/quantgo/dimension"

// Dimension vectors of the units below, in the canonical component
// order length, mass, time, current, temperature, amount, luminous
// intensity.
var (
	meterDims          = dimension.Dimensions{1, 0, 0, 0, 0, 0, 0}
	kilogramDims       = dimension.Dimensions{0, 1, 0, 0, 0, 0, 0}
	secondDims         = dimension.Dimensions{0, 0, 1, 0, 0, 0, 0}
	ampereDims         = dimension.Dimensions{0, 0, 0, 1, 0, 0, 0}
	kelvinDims         = dimension.Dimensions{0, 0, 0, 0, 1, 0, 0}
	molDims            = dimension.Dimensions{0, 0, 0, 0, 0, 1, 0}
	candelaDims        = dimension.Dimensions{0, 0, 0, 0, 0, 0, 1}
	hertzDims          = dimension.Dimensions{0, 0, -1, 0, 0, 0, 0}
	newtonDims         = dimension.Dimensions{1, 1, -2, 0, 0, 0, 0}
	pascalDims         = dimension.Dimensions{-1, 1, -2, 0, 0, 0, 0}
	jouleDims          = dimension.Dimensions{2, 1, -2, 0, 0, 0, 0}
	wattDims           = dimension.Dimensions{2, 1, -3, 0, 0, 0, 0}
	coulombDims        = dimension.Dimensions{0, 0, 1, 1, 0, 0, 0}
	voltDims           = dimension.Dimensions{2, 1, -3, -1, 0, 0, 0}
	faradDims          = dimension.Dimensions{-2, -1, 4, 2, 0, 0, 0}
	ohmDims            = dimension.Dimensions{2, 1, -3, -2, 0, 0, 0}
	siemensDims        = dimension.Dimensions{-2, -1, 3, 2, 0, 0, 0}
	weberDims          = dimension.Dimensions{2, 1, -2, -1, 0, 0, 0}
	teslaDims          = dimension.Dimensions{0, 1, -2, -1, 0, 0, 0}
	henryDims          = dimension.Dimensions{2, 1, -2, -2, 0, 0, 0}
	cubicMeterDims     = dimension.Dimensions{3, 0, 0, 0, 0, 0, 0}
	meterPerSecDims    = dimension.Dimensions{1, 0, -1, 0, 0, 0, 0}
	joulePerKelvinDims = dimension.Dimensions{2, 1, -2, 0, -1, 0, 0}
	perMolDims         = dimension.Dimensions{0, 0, 0, 0, 0, -1, 0}
	jouleSecondDims    = dimension.Dimensions{2, 1, -1, 0, 0, 0, 0}
	molarEntropyDims   = dimension.Dimensions{2, 1, -2, 0, -1, -1, 0}
	lumenPerWattDims   = dimension.Dimensions{-2, -1, 3, 0, 0, 0, 1}
	gravitationalDims  = dimension.Dimensions{3, -1, -2, 0, 0, 0, 0}
)

// The seven SI base units.
var (
	// Meter is the SI base unit of length (m).
	Meter = New(1, meterDims)
	// Kilogram is the SI base unit of mass (kg).
	Kilogram = New(1, kilogramDims)
	// Second is the SI base unit of time (s).
	Second = New(1, secondDims)
	// Ampere is the SI base unit of electric current (A).
	Ampere = New(1, ampereDims)
	// Kelvin is the SI base unit of thermodynamic temperature (K).
	Kelvin = New(1, kelvinDims)
	// Mol is the SI base unit of amount of substance (mol).
	Mol = New(1, molDims)
	// Candela is the SI base unit of luminous intensity (cd).
	Candela = New(1, candelaDims)
)

// Derived units.
var (
	// Hertz is the derived unit of frequency (1 Hz = 1 s^-1).
	Hertz = New(1, hertzDims)
	// Newton is the derived unit of force (1 N = 1 kg m s^-2).
	Newton = New(1, newtonDims)
	// Pascal is the derived unit of pressure (1 Pa = 1 N/m²).
	Pascal = New(1, pascalDims)
	// Joule is the derived unit of energy (1 J = 1 N m).
	Joule = New(1, jouleDims)
	// Watt is the derived unit of power (1 W = 1 J/s).
	Watt = New(1, wattDims)
	// Coulomb is the derived unit of electric charge (1 C = 1 A s).
	Coulomb = New(1, coulombDims)
	// Volt is the derived unit of electric potential (1 V = 1 W/A).
	Volt = New(1, voltDims)
	// Farad is the derived unit of capacitance (1 F = 1 C/V).
	Farad = New(1, faradDims)
	// Ohm is the derived unit of resistance (1 Ω = 1 V/A).
	Ohm = New(1, ohmDims)
	// Siemens is the derived unit of conductance (1 S = 1 Ω^-1).
	Siemens = New(1, siemensDims)
	// Weber is the derived unit of magnetic flux (1 Wb = 1 V s).
	Weber = New(1, weberDims)
	// Tesla is the derived unit of flux density (1 T = 1 Wb/m²).
	Tesla = New(1, teslaDims)
	// Henry is the derived unit of inductance (1 H = 1 Wb/A).
	Henry = New(1, henryDims)
)

// Commonly used additional units. They carry no symbol of their own:
// the representation of a quantity is unique, so a pressure built from
// Bar still formats in pascal-based notation.
var (
	// Angstrom is 1e-10 m.
	Angstrom = New(1e-10, meterDims)
	// AMU is the unified atomic mass unit.
	AMU = New(1.6605390671738466e-27, kilogramDims)
	// AU is the astronomical unit.
	AU = New(149597870700, meterDims)
	// Bar is 1e5 Pa.
	Bar = New(1e5, pascalDims)
	// Calorie is 4.184 J.
	Calorie = New(4.184, jouleDims)
	// Day is 86400 s.
	Day = New(86400, secondDims)
	// Gram is 1e-3 kg.
	Gram = New(1e-3, kilogramDims)
	// Hour is 3600 s.
	Hour = New(3600, secondDims)
	// Liter is 1e-3 m³.
	Liter = New(1e-3, cubicMeterDims)
	// Minute is 60 s.
	Minute = New(60, secondDims)
)

// The defining constants of the SI and a few derived ones.
var (
	// CsFrequency is the hyperfine transition frequency of caesium.
	CsFrequency = New(9192631770, hertzDims)
	// SpeedOfLight is the speed of light in vacuum.
	SpeedOfLight = New(299792458, meterPerSecDims)
	// Planck is the Planck constant.
	Planck = New(6.62607015e-34, jouleSecondDims)
	// ElementaryCharge is the elementary charge.
	ElementaryCharge = New(1.602176634e-19, coulombDims)
	// Boltzmann is the Boltzmann constant.
	Boltzmann = New(1.380649e-23, joulePerKelvinDims)
	// Avogadro is the Avogadro constant.
	Avogadro = New(6.02214076e23, perMolDims)
	// LuminousEfficacy is the luminous efficacy of 540 THz radiation.
	LuminousEfficacy = New(683, lumenPerWattDims)
	// RGas is the ideal gas constant R = N_A k_B.
	RGas = New(1.380649e-23*6.02214076e23, molarEntropyDims)
	// Gravitational is the gravitational constant G.
	Gravitational = New(6.6743e-11, gravitationalDims)
)

// Metric prefix values. Only the powers of 1000 between Yocto and
// Yotta are used by the formatter's prefix search; the full set is
// provided for building quantities, e.g. Meter.Scale(5 * Pico).
const (
	Quecto = 1e-30
	Ronto  = 1e-27
	Yocto  = 1e-24
	Zepto  = 1e-21
	Atto   = 1e-18
	Femto  = 1e-15
	Pico   = 1e-12
	Nano   = 1e-9
	Micro  = 1e-6
	Milli  = 1e-3
	Centi  = 1e-2
	Deci   = 1e-1
	Deca   = 1e1
	Hecto  = 1e2
	Kilo   = 1e3
	Mega   = 1e6
	Giga   = 1e9
	Tera   = 1e12
	Peta   = 1e15
	Exa    = 1e18
	Zetta  = 1e21
	Yotta  = 1e24
	Ronna  = 1e27
	Quetta = 1e30
)
