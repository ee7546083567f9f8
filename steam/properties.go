package steam

import (
	"fmt"
	"math"
)

// SaturationBand is the |T - Tsat| width, in °C, inside which a (T,P)
// state is classified as saturated rather than compressed liquid or
// superheated vapor.
const SaturationBand = 1e-1

// Phase classifies a water state relative to the saturation dome.
type Phase int

const (
	// PhaseCompressedLiquid: below the saturation temperature at the
	// given pressure (also called subcooled liquid).
	PhaseCompressedLiquid Phase = iota
	// PhaseSaturated: a two-phase liquid/vapor mixture on the dome.
	PhaseSaturated
	// PhaseSuperheatedVapor: above the saturation state.
	PhaseSuperheatedVapor
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseCompressedLiquid:
		return "compressed liquid"
	case PhaseSaturated:
		return "saturated mixture"
	case PhaseSuperheatedVapor:
		return "superheated vapor"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// SaturationPressure returns Psat(T) in kPa for T in °C.
func (t *Table) SaturationPressure(T float64) (float64, error) {
	return t.interp1(T, ColT, ColP)
}

// SaturationTemperature returns Tsat(P) in °C for P in kPa.
func (t *Table) SaturationTemperature(P float64) (float64, error) {
	return t.interp1(P, ColP, ColT)
}

// LiquidVolume returns the saturated liquid specific volume vf(T), m³/kg.
func (t *Table) LiquidVolume(T float64) (float64, error) {
	return t.interp1(T, ColT, ColVf)
}

// VaporVolume returns the saturated vapor specific volume vg(T), m³/kg.
func (t *Table) VaporVolume(T float64) (float64, error) {
	return t.interp1(T, ColT, ColVg)
}

// VaporQuality returns x = (v-vf)/(vg-vf) for the saturation state at
// the given temperature (in=ColT) or pressure (in=ColP). A result
// outside [0,1] means v lies off the dome at that state.
func (t *Table) VaporQuality(v, value float64, in Column) (float64, error) {
	vv, err := t.Interpolate(value, in, ColVf, ColVg)
	if err != nil {
		return 0, err
	}
	vf, vg := vv[0], vv[1]

	return (v - vf) / (vg - vf), nil
}

// MixtureVolume returns the quality-weighted specific volume
// v = (1-x)·vf + x·vg at the saturation state selected by value/in.
func (t *Table) MixtureVolume(x, value float64, in Column) (float64, error) {
	return t.mixture(x, value, in, ColVf, ColVg)
}

// MixtureEnthalpy returns h = (1-x)·hf + x·hg, kJ/kg.
func (t *Table) MixtureEnthalpy(x, value float64, in Column) (float64, error) {
	return t.mixture(x, value, in, ColHf, ColHg)
}

// MixtureEnergy returns u = (1-x)·uf + x·ug, kJ/kg.
func (t *Table) MixtureEnergy(x, value float64, in Column) (float64, error) {
	return t.mixture(x, value, in, ColUf, ColUg)
}

// MixtureEntropy returns s = (1-x)·sf + x·sg, kJ/(kg·K).
func (t *Table) MixtureEntropy(x, value float64, in Column) (float64, error) {
	return t.mixture(x, value, in, ColSf, ColSg)
}

// mixture interpolates the liquid/vapor pair and quality-weights it.
func (t *Table) mixture(x, value float64, in, liquid, vapor Column) (float64, error) {
	if x < 0 || x > 1 || math.IsNaN(x) {
		return 0, fmt.Errorf("quality %g: %w", x, ErrQualityRange)
	}
	pair, err := t.Interpolate(value, in, liquid, vapor)
	if err != nil {
		return 0, err
	}

	return (1-x)*pair[0] + x*pair[1], nil
}

// PhaseTP classifies the state with temperature T (°C) and pressure P
// (kPa): saturated within SaturationBand of Tsat(P), compressed liquid
// below it, superheated vapor above it.
func (t *Table) PhaseTP(T, P float64) (Phase, error) {
	tsat, err := t.SaturationTemperature(P)
	if err != nil {
		return 0, err
	}
	switch {
	case math.Abs(T-tsat) < SaturationBand:
		return PhaseSaturated, nil
	case T < tsat:
		return PhaseCompressedLiquid, nil
	default:
		return PhaseSuperheatedVapor, nil
	}
}

// PhaseTV classifies the state with temperature T (°C) and specific
// volume v (m³/kg) against the dome bounds vf(T) and vg(T).
func (t *Table) PhaseTV(T, v float64) (Phase, error) {
	vv, err := t.Interpolate(T, ColT, ColVf, ColVg)
	if err != nil {
		return 0, err
	}
	switch {
	case v < vv[0]:
		return PhaseCompressedLiquid, nil
	case v > vv[1]:
		return PhaseSuperheatedVapor, nil
	default:
		return PhaseSaturated, nil
	}
}

// Package-level shorthands over the embedded default table.

// SaturationPressure returns Psat(T) from the default table.
func SaturationPressure(T float64) (float64, error) { return Default().SaturationPressure(T) }

// SaturationTemperature returns Tsat(P) from the default table.
func SaturationTemperature(P float64) (float64, error) { return Default().SaturationTemperature(P) }

// LiquidVolume returns vf(T) from the default table.
func LiquidVolume(T float64) (float64, error) { return Default().LiquidVolume(T) }

// VaporVolume returns vg(T) from the default table.
func VaporVolume(T float64) (float64, error) { return Default().VaporVolume(T) }

// VaporQuality returns x from the default table.
func VaporQuality(v, value float64, in Column) (float64, error) {
	return Default().VaporQuality(v, value, in)
}

// MixtureVolume returns the quality-weighted v from the default table.
func MixtureVolume(x, value float64, in Column) (float64, error) {
	return Default().MixtureVolume(x, value, in)
}

// MixtureEnthalpy returns the quality-weighted h from the default table.
func MixtureEnthalpy(x, value float64, in Column) (float64, error) {
	return Default().MixtureEnthalpy(x, value, in)
}

// MixtureEnergy returns the quality-weighted u from the default table.
func MixtureEnergy(x, value float64, in Column) (float64, error) {
	return Default().MixtureEnergy(x, value, in)
}

// MixtureEntropy returns the quality-weighted s from the default table.
func MixtureEntropy(x, value float64, in Column) (float64, error) {
	return Default().MixtureEntropy(x, value, in)
}

// PhaseTP classifies (T,P) against the default table.
func PhaseTP(T, P float64) (Phase, error) { return Default().PhaseTP(T, P) }

// PhaseTV classifies (T,v) against the default table.
func PhaseTV(T, v float64) (Phase, error) { return Default().PhaseTV(T, v) }
