package composition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/solventmix/internal/composition"
	"github.com/talgya/solventmix/internal/solvent"
)

// Water-like and ethanol-like pair used throughout; only molar mass and
// reference density matter for conversion.
func testComponents() []solvent.Component {
	return []solvent.Component{
		{Name: "Water", MolarMass: 18.015, Tc: 647.1, Pc: 220.6, Zra: 0.2338, RefDensity: 997.0},
		{Name: "Ethanol", MolarMass: 46.069, Tc: 513.9, Pc: 61.4, Zra: 0.2520, RefDensity: 789.0},
	}
}

// TestConvert_MassRoundTrip verifies mass→molar→mass and mass→volume→mass
// recover the original vector within 1e-9 relative tolerance.
func TestConvert_MassRoundTrip(t *testing.T) {
	comps := testComponents()
	mass := []float64{0.3, 0.7}

	set, err := composition.Convert(mass, composition.BasisMass, comps, composition.DefaultTolerance)
	require.NoError(t, err)

	viaMolar, err := composition.Convert(set.Molar, composition.BasisMolar, comps, 1e-6)
	require.NoError(t, err)
	viaVolume, err := composition.Convert(set.Volume, composition.BasisVolume, comps, 1e-6)
	require.NoError(t, err)

	for i := range mass {
		assert.InEpsilon(t, mass[i], viaMolar.Mass[i], 1e-9, "mass->molar->mass component %d", i)
		assert.InEpsilon(t, mass[i], viaVolume.Mass[i], 1e-9, "mass->volume->mass component %d", i)
	}
}

// TestConvert_VolumeBasisSkew checks the 50/50-by-volume water/ethanol
// blend: the lighter-molar-mass component (water) ends up with the molar
// majority once volumes are chained through mass to moles.
func TestConvert_VolumeBasisSkew(t *testing.T) {
	comps := testComponents()

	set, err := composition.Convert([]float64{0.5, 0.5}, composition.BasisVolume, comps, composition.DefaultTolerance)
	require.NoError(t, err)

	assert.Greater(t, set.Molar[0], 0.5, "water molar fraction should exceed 0.5")
	assert.Less(t, set.Molar[1], 0.5, "ethanol molar fraction should stay below 0.5")
	assert.InDelta(t, 1.0, set.Molar[0]+set.Molar[1], 1e-12, "molar fractions must renormalize to 1")
	assert.InDelta(t, 1.0, set.Mass[0]+set.Mass[1], 1e-12)
}

// TestConvert_Normalizes verifies each produced basis individually sums to 1
// even when the input only sums to 1 within the boundary tolerance.
func TestConvert_Normalizes(t *testing.T) {
	comps := testComponents()

	set, err := composition.Convert([]float64{0.49997, 0.50001}, composition.BasisMass, comps, composition.DefaultTolerance)
	require.NoError(t, err)

	for _, vec := range [][]float64{set.Mass, set.Molar, set.Volume} {
		sum := 0.0
		for _, f := range vec {
			sum += f
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

// TestConvert_InputErrors exercises the configuration-error taxonomy: each
// bad input fails fast with its sentinel before any conversion happens.
func TestConvert_InputErrors(t *testing.T) {
	comps := testComponents()

	tests := []struct {
		name      string
		fractions []float64
		basis     composition.Basis
		comps     []solvent.Component
		wantErr   error
	}{
		{"length mismatch", []float64{1.0}, composition.BasisMass, comps, composition.ErrLengthMismatch},
		{"empty", nil, composition.BasisMass, nil, composition.ErrLengthMismatch},
		{"negative fraction", []float64{1.2, -0.2}, composition.BasisMass, comps, composition.ErrNegativeFraction},
		{"sum below one", []float64{0.4, 0.4}, composition.BasisMass, comps, composition.ErrSumNotUnity},
		{"sum above one", []float64{0.7, 0.7}, composition.BasisMolar, comps, composition.ErrSumNotUnity},
		{"unknown basis", []float64{0.5, 0.5}, composition.Basis("weight"), comps, composition.ErrBadBasis},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := composition.Convert(tc.fractions, tc.basis, tc.comps, composition.DefaultTolerance)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestConvert_ZeroConstants verifies the converter refuses to divide by a
// zero molar mass or reference density.
func TestConvert_ZeroConstants(t *testing.T) {
	comps := testComponents()
	comps[1].MolarMass = 0

	_, err := composition.Convert([]float64{0.5, 0.5}, composition.BasisMass, comps, composition.DefaultTolerance)
	assert.ErrorIs(t, err, composition.ErrBadConstants)

	comps = testComponents()
	comps[0].RefDensity = 0
	_, err = composition.Convert([]float64{0.5, 0.5}, composition.BasisVolume, comps, composition.DefaultTolerance)
	assert.ErrorIs(t, err, composition.ErrBadConstants)
}

// TestSet_On returns the vector matching the basis tag.
func TestSet_On(t *testing.T) {
	comps := testComponents()
	set, err := composition.Convert([]float64{0.5, 0.5}, composition.BasisMolar, comps, composition.DefaultTolerance)
	require.NoError(t, err)

	molar, err := set.On(composition.BasisMolar)
	require.NoError(t, err)
	assert.Equal(t, set.Molar, molar)

	_, err = set.On(composition.Basis("nope"))
	assert.ErrorIs(t, err, composition.ErrBadBasis)
}

// TestConvert_SingleComponent keeps a pure "mixture" pure on every basis.
func TestConvert_SingleComponent(t *testing.T) {
	comps := testComponents()[:1]

	set, err := composition.Convert([]float64{1.0}, composition.BasisMass, comps, composition.DefaultTolerance)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, set.Molar[0], 1e-15)
	assert.InDelta(t, 1.0, set.Volume[0], 1e-15)
}
