// Package density provides the mixture mass-density correlations: ideal
// volume additivity, the modified Rackett equation, COSTALD (HBT), and the
// Peng-Robinson EOS with a Peneloux volume shift. All four take kelvin and
// return kg/m³; a domain violation returns NaN alongside a typed error so
// callers can tell why the liquid state was undefined.
package density

import (
	"errors"
	"math"

	"github.com/talgya/solventmix/internal/physconst"
	"github.com/talgya/solventmix/internal/solvent"
)

var (
	// ErrSupercritical indicates a reduced temperature at or above 1,
	// where no saturated liquid exists.
	ErrSupercritical = errors.New("density: reduced temperature >= 1")

	// ErrNoLiquidRoot indicates the EOS cubic produced no positive real root.
	ErrNoLiquidRoot = errors.New("density: no positive real cubic root")

	// ErrZeroDensity indicates a zero pure-component density in ideal mixing.
	ErrZeroDensity = errors.New("density: zero pure-component density")
)

// Peng-Robinson and Peneloux constants.
const (
	prOmegaA = 0.45724
	prOmegaB = 0.07780

	// penelouxShiftFrac is the Peneloux volume shift as a fraction of the
	// co-volume b. Tabulated per-component shifts would be better; 5% of b
	// is the calibration the engine has always used.
	penelouxShiftFrac = 0.05
)

// costaldCorrection rescales the saturated volume for the Vc ≈ 0.29·R·Tc/Pc
// characteristic-volume estimate used in place of tabulated V*. Calibrated
// against the builtin solvent table at 25 °C; pure-component checks land
// within ±8% of the reference densities.
const costaldCorrection = 1.2

// costaldEps keeps the HBT delta polynomial away from its Tr=1 pole.
const costaldEps = 1.00001

// Ideal computes ρ = 1/Σ(wᵢ/ρᵢ) over mass fractions: pure volume
// additivity of the reference densities.
func Ideal(massFrac []float64, comps []solvent.Component) (float64, error) {
	invRho := 0.0
	for i, w := range massFrac {
		if comps[i].RefDensity <= 0 {
			return math.NaN(), ErrZeroDensity
		}
		invRho += w / comps[i].RefDensity
	}
	if invRho <= 0 {
		return math.NaN(), ErrZeroDensity
	}
	return 1 / invRho, nil
}

// Rackett computes the saturated liquid density by the modified Rackett
// equation with Kay's rule mixing of Tc, Pc, Zra, and molar mass.
func Rackett(tempK float64, molarFrac []float64, comps []solvent.Component) (float64, error) {
	var tcMix, pcMix, zraMix, mwMix float64
	for i, x := range molarFrac {
		tcMix += x * comps[i].Tc
		pcMix += x * comps[i].Pc * physconst.BarToPa
		zraMix += x * comps[i].Zra
		mwMix += x * comps[i].MolarMass
	}

	tr := tempK / tcMix
	if tr >= 1 {
		return math.NaN(), ErrSupercritical
	}

	exponent := 1 + math.Pow(1-tr, 2.0/7.0)
	vMolar := (physconst.R * tcMix / pcMix) * math.Pow(zraMix, exponent) // m³/mol
	return mwMix * physconst.GToKg / vMolar, nil
}

// Costald computes the saturated liquid density by the Hankinson-Brobst-
// Thomson correlation, linear-mixing a characteristic volume estimated as
// 0.29·R·Tc/Pc per component.
func Costald(tempK float64, molarFrac []float64, comps []solvent.Component) (float64, error) {
	var vStarMix, tcMix, omegaMix, mwMix float64
	for i, x := range molarFrac {
		pcPa := comps[i].Pc * physconst.BarToPa
		vStarMix += x * 0.29 * physconst.R * comps[i].Tc / pcPa
		tcMix += x * comps[i].Tc
		omegaMix += x * comps[i].Omega
		mwMix += x * comps[i].MolarMass
	}

	tr := tempK / tcMix
	if tr >= 1 {
		return math.NaN(), ErrSupercritical
	}

	oneMinusTr := 1 - tr
	vr0 := 1 -
		1.52816*math.Pow(oneMinusTr, 1.0/3.0) +
		1.43907*math.Pow(oneMinusTr, 2.0/3.0) -
		0.81446*oneMinusTr +
		0.190454*math.Pow(oneMinusTr, 4.0/3.0)
	vrDelta := (-0.296123 + 0.386914*tr - 0.0427258*tr*tr - 0.0480645*tr*tr*tr) / (tr - costaldEps)

	vSat := vStarMix * vr0 * (1 - omegaMix*vrDelta)
	vMolar := vSat / costaldCorrection // m³/mol
	if vMolar <= 0 {
		return math.NaN(), ErrSupercritical
	}
	return mwMix * physconst.GToKg / vMolar, nil
}

// PRPeneloux computes the liquid density from the Peng-Robinson EOS with
// the Peneloux volume shift. Pressure is in bar; the liquid root is the
// smallest positive real root of the reduced cubic.
func PRPeneloux(tempK, pressureBar float64, molarFrac []float64, comps []solvent.Component) (float64, error) {
	pPa := pressureBar * physconst.BarToPa

	var sqrtAMix, bMix, cMix, mwMix float64
	for i, x := range molarFrac {
		tc := comps[i].Tc
		pc := comps[i].Pc * physconst.BarToPa
		omega := comps[i].Omega

		kappa := 0.37464 + 1.54226*omega - 0.26992*omega*omega
		alpha := 1 + kappa*(1-math.Sqrt(tempK/tc))
		alpha *= alpha

		ai := prOmegaA * (physconst.R * tc) * (physconst.R * tc) / pc * alpha
		bi := prOmegaB * physconst.R * tc / pc

		sqrtAMix += x * math.Sqrt(ai)
		bMix += x * bi
		cMix += x * penelouxShiftFrac * bi
		mwMix += x * comps[i].MolarMass
	}
	aMix := sqrtAMix * sqrtAMix

	rt := physconst.R * tempK
	bigA := aMix * pPa / (rt * rt)
	bigB := bMix * pPa / rt

	// Z³ − (1−B)Z² + (A−3B²−2B)Z − (AB−B²−B³) = 0
	roots := realCubicRoots(
		-(1 - bigB),
		bigA-3*bigB*bigB-2*bigB,
		-(bigA*bigB - bigB*bigB - bigB*bigB*bigB),
	)

	zLiq := math.Inf(1)
	for _, z := range roots {
		if z > 0 && z < zLiq {
			zLiq = z
		}
	}
	if math.IsInf(zLiq, 1) {
		return math.NaN(), ErrNoLiquidRoot
	}

	vMolar := zLiq*rt/pPa - cMix // m³/mol, shift applied before density
	if vMolar <= 0 {
		return math.NaN(), ErrNoLiquidRoot
	}
	return mwMix * physconst.GToKg / vMolar, nil
}
