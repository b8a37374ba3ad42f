package density_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/solventmix/internal/density"
	"github.com/talgya/solventmix/internal/solvent"
)

const roomTempK = 298.15

func water() solvent.Component {
	return solvent.Component{Name: "Water", MolarMass: 18.015, Tc: 647.1, Pc: 220.6,
		Omega: 0.344, Zra: 0.2338, RefDensity: 997.0}
}

func ethanol() solvent.Component {
	return solvent.Component{Name: "Ethanol", MolarMass: 46.069, Tc: 513.9, Pc: 61.4,
		Omega: 0.644, Zra: 0.2520, RefDensity: 789.0}
}

func toluene() solvent.Component {
	return solvent.Component{Name: "Toluene", MolarMass: 92.14, Tc: 591.8, Pc: 41.0,
		Omega: 0.264, Zra: 0.2646, RefDensity: 867.0}
}

// TestIdeal_PureComponent: a single-component "mixture" is exactly the
// reference density under volume additivity.
func TestIdeal_PureComponent(t *testing.T) {
	rho, err := density.Ideal([]float64{1.0}, []solvent.Component{water()})
	require.NoError(t, err)
	assert.InDelta(t, 997.0, rho, 1e-9)
}

// TestIdeal_Binary: the harmonic mass-fraction mix sits between the pure
// densities.
func TestIdeal_Binary(t *testing.T) {
	rho, err := density.Ideal([]float64{0.5, 0.5}, []solvent.Component{water(), ethanol()})
	require.NoError(t, err)
	assert.Greater(t, rho, 789.0)
	assert.Less(t, rho, 997.0)

	// 1 / (0.5/997 + 0.5/789) by hand.
	want := 1.0 / (0.5/997.0 + 0.5/789.0)
	assert.InDelta(t, want, rho, 1e-9)
}

// TestIdeal_ZeroDensity: a zero pure density must fail, not divide.
func TestIdeal_ZeroDensity(t *testing.T) {
	bad := water()
	bad.RefDensity = 0

	rho, err := density.Ideal([]float64{1.0}, []solvent.Component{bad})
	assert.ErrorIs(t, err, density.ErrZeroDensity)
	assert.True(t, math.IsNaN(rho))
}

// TestPureComponentAccuracy: each correlation, fed a pure component at
// 25 °C, lands within ±15% of the tabulated reference density.
func TestPureComponentAccuracy(t *testing.T) {
	models := map[string]func(c solvent.Component) (float64, error){
		"rackett": func(c solvent.Component) (float64, error) {
			return density.Rackett(roomTempK, []float64{1.0}, []solvent.Component{c})
		},
		"costald": func(c solvent.Component) (float64, error) {
			return density.Costald(roomTempK, []float64{1.0}, []solvent.Component{c})
		},
		"pr-peneloux": func(c solvent.Component) (float64, error) {
			return density.PRPeneloux(roomTempK, 1.01325, []float64{1.0}, []solvent.Component{c})
		},
	}

	for name, model := range models {
		for _, comp := range []solvent.Component{water(), ethanol(), toluene()} {
			t.Run(name+"/"+comp.Name, func(t *testing.T) {
				rho, err := model(comp)
				require.NoError(t, err)
				require.False(t, math.IsNaN(rho))
				assert.InEpsilon(t, comp.RefDensity, rho, 0.15,
					"%s on pure %s: got %.1f want %.1f ±15%%", name, comp.Name, rho, comp.RefDensity)
			})
		}
	}
}

// TestSupercriticalBoundary: reduced temperature exactly 1.0 is a domain
// violation, returned as NaN with its cause — never a panic or a division
// by zero.
func TestSupercriticalBoundary(t *testing.T) {
	comp := ethanol()
	comps := []solvent.Component{comp}
	x := []float64{1.0}

	rho, err := density.Rackett(comp.Tc, x, comps)
	assert.ErrorIs(t, err, density.ErrSupercritical)
	assert.True(t, math.IsNaN(rho))

	rho, err = density.Costald(comp.Tc, x, comps)
	assert.ErrorIs(t, err, density.ErrSupercritical)
	assert.True(t, math.IsNaN(rho))

	// Above critical as well.
	_, err = density.Rackett(comp.Tc*1.2, x, comps)
	assert.ErrorIs(t, err, density.ErrSupercritical)
}

// TestRackett_BinaryFinite: Kay's rule mixing stays finite and plausible
// for a subcritical binary.
func TestRackett_BinaryFinite(t *testing.T) {
	rho, err := density.Rackett(roomTempK, []float64{0.6, 0.4}, []solvent.Component{water(), ethanol()})
	require.NoError(t, err)
	assert.Greater(t, rho, 500.0)
	assert.Less(t, rho, 1500.0)
}

// TestPRPeneloux_PressureDependence: the liquid root exists at moderate
// pressures and the density barely moves — liquids are nearly
// incompressible under the shifted EOS.
func TestPRPeneloux_PressureDependence(t *testing.T) {
	comps := []solvent.Component{ethanol()}
	x := []float64{1.0}

	atAtm, err := density.PRPeneloux(roomTempK, 1.01325, x, comps)
	require.NoError(t, err)
	at5Bar, err := density.PRPeneloux(roomTempK, 5.0, x, comps)
	require.NoError(t, err)

	assert.InEpsilon(t, atAtm, at5Bar, 0.02)
}

// TestPRPeneloux_NoLiquidRoot: a non-physical negative pressure leaves no
// positive molar volume; the model reports the missing liquid root as NaN
// instead of a negative density.
func TestPRPeneloux_NoLiquidRoot(t *testing.T) {
	comps := []solvent.Component{ethanol()}

	rho, err := density.PRPeneloux(roomTempK, -1.0, []float64{1.0}, comps)
	assert.ErrorIs(t, err, density.ErrNoLiquidRoot)
	assert.True(t, math.IsNaN(rho))
}
