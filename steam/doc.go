// Package steam looks up saturated-water thermodynamic properties by
// linear interpolation over the classic saturation reference table
// (Borgnakke & Sonntag, Fundamentals of Thermodynamics, table B.1.1),
// and derives phase, vapor quality and quality-weighted mixture
// properties from it.
//
// ✨ Key features:
//   - column-oriented saturation table keyed by temperature or pressure
//   - 1-D monotone linear interpolation over any tabulated column
//   - saturation pressure/temperature and specific-volume shortcuts
//   - vapor quality x = (v-vf)/(vg-vf) and mixture v/h/u/s averages
//   - phase classification from (T,P) or (T,v)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/prefnum/steam"
//
//	p, err := steam.SaturationPressure(100)      // ≈ 101.35 kPa
//	t, err := steam.SaturationTemperature(500)   // ≈ 151.8 °C
//
//	// specific volume of a 90%-quality mixture at 4 MPa
//	v, err := steam.MixtureVolume(0.9, 4000, steam.ColP)
//
//	ph, err := steam.PhaseTV(100, 0.5) // Saturated (vf < v < vg at 100 °C)
//
// Units follow the reference table: °C, kPa, m³/kg, kJ/kg, kJ/(kg·K).
// All lookups interpolate linearly between bracketing rows and fail with
// ErrOutOfRange outside the tabulated span (0.01..374.14 °C).
//
// The package-level functions use the embedded default table; load a
// custom table with Load and call the same operations as methods.
package steam
