package steam_test

import (
	"testing"

	"github.com/katalvlaran/prefnum/steam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaturationLookups pins the shortcut accessors against embedded rows.
func TestSaturationLookups(t *testing.T) {
	p, err := steam.SaturationPressure(100)
	require.NoError(t, err)
	assert.Equal(t, 101.35, p)

	T, err := steam.SaturationTemperature(101.35)
	require.NoError(t, err)
	assert.Equal(t, 100.0, T)

	vf, err := steam.LiquidVolume(100)
	require.NoError(t, err)
	assert.Equal(t, 0.001044, vf)

	vg, err := steam.VaporVolume(100)
	require.NoError(t, err)
	assert.Equal(t, 1.6729, vg)
}

// TestVaporQuality checks the dome endpoints and the linear middle.
func TestVaporQuality(t *testing.T) {
	x, err := steam.VaporQuality(0.001044, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x, 1e-12, "vf maps to quality 0")

	x, err = steam.VaporQuality(1.6729, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12, "vg maps to quality 1")

	mid := (0.001044 + 1.6729) / 2
	x, err = steam.VaporQuality(mid, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x, 1e-12)

	// The same state addressed by pressure gives the same quality.
	x, err = steam.VaporQuality(mid, 101.35, steam.ColP)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x, 1e-12)
}

// TestMixtureProperties checks the quality-weighted averages at an exact
// table row, where the expected values are the tabulated f/g pairs.
func TestMixtureProperties(t *testing.T) {
	v, err := steam.MixtureVolume(0.5, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, (0.001044+1.6729)/2, v, 1e-12)

	h, err := steam.MixtureEnthalpy(1, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, 2676.1, h, 1e-12, "x=1 is pure saturated vapor")

	u, err := steam.MixtureEnergy(0, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, 418.91, u, 1e-12, "x=0 is pure saturated liquid")

	s, err := steam.MixtureEntropy(0.5, 100, steam.ColT)
	require.NoError(t, err)
	assert.InDelta(t, (1.3068+7.3548)/2, s, 1e-12)
}

// TestMixture_QualityRange rejects qualities outside [0,1].
func TestMixture_QualityRange(t *testing.T) {
	for _, x := range []float64{-0.1, 1.1} {
		_, err := steam.MixtureVolume(x, 100, steam.ColT)
		assert.ErrorIs(t, err, steam.ErrQualityRange, "x=%g", x)
	}
}

// TestMixture_RangePropagation propagates table-range errors.
func TestMixture_RangePropagation(t *testing.T) {
	_, err := steam.MixtureVolume(0.5, 400, steam.ColT)
	assert.ErrorIs(t, err, steam.ErrOutOfRange)
	_, err = steam.VaporQuality(0.5, -20, steam.ColT)
	assert.ErrorIs(t, err, steam.ErrOutOfRange)
}

// TestPhaseTP classifies (T,P) states around atmospheric saturation.
func TestPhaseTP(t *testing.T) {
	ph, err := steam.PhaseTP(25, 101.35)
	require.NoError(t, err)
	assert.Equal(t, steam.PhaseCompressedLiquid, ph)

	ph, err = steam.PhaseTP(100, 101.35)
	require.NoError(t, err)
	assert.Equal(t, steam.PhaseSaturated, ph, "T within the saturation band of Tsat")

	ph, err = steam.PhaseTP(200, 101.35)
	require.NoError(t, err)
	assert.Equal(t, steam.PhaseSuperheatedVapor, ph)

	_, err = steam.PhaseTP(100, 1e6)
	assert.ErrorIs(t, err, steam.ErrOutOfRange)
}

// TestPhaseTV classifies (T,v) states against the dome bounds at 100 °C
// (vf=0.001044, vg=1.6729).
func TestPhaseTV(t *testing.T) {
	ph, err := steam.PhaseTV(100, 0.0005)
	require.NoError(t, err)
	assert.Equal(t, steam.PhaseCompressedLiquid, ph)

	ph, err = steam.PhaseTV(100, 0.8)
	require.NoError(t, err)
	assert.Equal(t, steam.PhaseSaturated, ph)

	ph, err = steam.PhaseTV(100, 3.0)
	require.NoError(t, err)
	assert.Equal(t, steam.PhaseSuperheatedVapor, ph)
}

// TestPhase_String covers the Stringer.
func TestPhase_String(t *testing.T) {
	assert.Equal(t, "compressed liquid", steam.PhaseCompressedLiquid.String())
	assert.Equal(t, "saturated mixture", steam.PhaseSaturated.String())
	assert.Equal(t, "superheated vapor", steam.PhaseSuperheatedVapor.String())
	assert.Equal(t, "Phase(42)", steam.Phase(42).String())
}
