// Package physconst provides the physical constants and unit conversions
// shared by every correlation. All mixing rules evaluate in SI and convert
// at the edges, so the conversion factors live here and nowhere else.
package physconst

// R is the universal gas constant in J/(mol·K).
const R = 8.314

// Avogadro is the Avogadro constant in 1/mol.
const Avogadro = 6.022e23

// AtmBar is standard atmospheric pressure in bar.
const AtmBar = 1.01325

// Unit conversion factors.
const (
	// BarToPa converts bar to pascal.
	BarToPa = 1e5

	// M3ToCm3 converts cubic meters to cubic centimeters.
	M3ToCm3 = 1e6

	// KgM3ToGCm3 converts kg/m³ to g/cm³ (Macleod-Sugden wants CGS density).
	KgM3ToGCm3 = 1e-3

	// MNmToNm converts mN/m to N/m (J/m²).
	MNmToNm = 1e-3

	// GToKg converts g/mol molar mass to kg/mol.
	GToKg = 1e-3
)

// CelsiusToKelvin converts a Celsius temperature to kelvin.
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }
