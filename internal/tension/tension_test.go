package tension_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/solventmix/internal/solvent"
	"github.com/talgya/solventmix/internal/tension"
)

const roomTempK = 298.15

func pair() []solvent.Component {
	return []solvent.Component{
		{Name: "Water", MolarMass: 18.015, RefDensity: 997.0, RefTension: 72.8, Parachor: 52.0},
		{Name: "Ethanol", MolarMass: 46.069, RefDensity: 789.0, RefTension: 22.1, Parachor: 128.0},
	}
}

// TestLinearRules check both weighted averages against hand values.
func TestLinearRules(t *testing.T) {
	comps := pair()

	molar, err := tension.LinearMolar([]float64{0.25, 0.75}, comps)
	require.NoError(t, err)
	assert.InDelta(t, 0.25*72.8+0.75*22.1, molar, 1e-12)

	vol, err := tension.LinearVolumetric([]float64{0.5, 0.5}, comps)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*72.8+0.5*22.1, vol, 1e-12)
}

// TestMacleodSugden_FourthPower: doubling the supplied mixture density
// multiplies the result by exactly 2⁴ = 16 with parachor and molar mass
// held fixed.
func TestMacleodSugden_FourthPower(t *testing.T) {
	comps := pair()
	x := []float64{0.5, 0.5}

	base, err := tension.MacleodSugden(x, comps, 900.0)
	require.NoError(t, err)
	doubled, err := tension.MacleodSugden(x, comps, 1800.0)
	require.NoError(t, err)

	assert.InEpsilon(t, 16.0, doubled/base, 1e-9)
}

// TestMacleodSugden_BadDensity: an unavailable upstream density propagates
// as NaN with its cause, never as a garbage number.
func TestMacleodSugden_BadDensity(t *testing.T) {
	comps := pair()
	x := []float64{0.5, 0.5}

	for _, rho := range []float64{math.NaN(), 0, -10} {
		sigma, err := tension.MacleodSugden(x, comps, rho)
		assert.ErrorIs(t, err, tension.ErrBadDensity)
		assert.True(t, math.IsNaN(sigma))
	}
}

// TestSprowPrausnitz_PureComponent: a single-component "mixture" solves to
// exactly the pure surface tension.
func TestSprowPrausnitz_PureComponent(t *testing.T) {
	comps := pair()[:1]

	sigma, fellBack, err := tension.SprowPrausnitz(roomTempK, []float64{1.0}, comps)
	require.NoError(t, err)
	assert.False(t, fellBack)
	assert.InDelta(t, 72.8, sigma, 1e-9)
}

// TestSprowPrausnitz_SurfaceEnrichment: the low-tension component migrates
// to the surface, so the solved tension sits below the linear molar
// estimate and within the pure-component bracket. That depression is the
// model's point, not a defect.
func TestSprowPrausnitz_SurfaceEnrichment(t *testing.T) {
	comps := pair()
	x := []float64{0.5, 0.5}

	sigma, fellBack, err := tension.SprowPrausnitz(roomTempK, x, comps)
	require.NoError(t, err)
	assert.False(t, fellBack)

	linear, err := tension.LinearMolar(x, comps)
	require.NoError(t, err)

	assert.Less(t, sigma, linear)
	assert.Greater(t, sigma, 22.1-10.0)
	assert.Less(t, sigma, 72.8+10.0)
}

// TestSprowPrausnitz_Converges across compositions and temperatures.
func TestSprowPrausnitz_Converges(t *testing.T) {
	comps := pair()
	for _, x := range [][]float64{{0.1, 0.9}, {0.9, 0.1}, {0.764, 0.236}} {
		for _, temp := range []float64{283.15, 298.15, 353.15} {
			sigma, _, err := tension.SprowPrausnitz(temp, x, comps)
			require.NoError(t, err, "x=%v T=%.2f", x, temp)
			assert.False(t, math.IsNaN(sigma))
		}
	}
}
