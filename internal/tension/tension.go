// Package tension provides the mixture surface-tension correlations: linear
// molar and volumetric averages, Macleod-Sugden from the mixture parachor
// and an externally supplied mixture density, and Sprow-Prausnitz with an
// ideal surface phase solved by bracketed bisection. All return mN/m.
package tension

import (
	"errors"
	"math"

	"github.com/talgya/solventmix/internal/physconst"
	"github.com/talgya/solventmix/internal/solvent"
)

var (
	// ErrBadDensity indicates a non-finite or non-positive mixture density
	// fed to Macleod-Sugden.
	ErrBadDensity = errors.New("tension: invalid mixture density")

	// ErrUnbracketed indicates the Sprow-Prausnitz search interval holds no
	// sign change.
	ErrUnbracketed = errors.New("tension: root not bracketed")

	// ErrNoConvergence indicates the bisection hit its iteration cap.
	ErrNoConvergence = errors.New("tension: bisection did not converge")
)

// Bisection bounds for the Sprow-Prausnitz solve.
const (
	// bracketHeadroom widens the search interval past the pure-component
	// extremes, in mN/m. Surface enrichment can depress the mixture below
	// min(σᵢ), never by more than a few mN/m.
	bracketHeadroom = 10.0

	bisectMaxIter = 200
	bisectTol     = 1e-10
)

// LinearMolar computes the molar-fraction weighted average of the pure
// surface tensions.
func LinearMolar(molarFrac []float64, comps []solvent.Component) (float64, error) {
	sigma := 0.0
	for i, x := range molarFrac {
		sigma += x * comps[i].RefTension
	}
	return sigma, nil
}

// LinearVolumetric computes the volume-fraction weighted average.
func LinearVolumetric(volFrac []float64, comps []solvent.Component) (float64, error) {
	sigma := 0.0
	for i, phi := range volFrac {
		sigma += phi * comps[i].RefTension
	}
	return sigma, nil
}

// MacleodSugden computes σ = (P_mix·ρ_mix/MW_mix)⁴ with the parachor and
// molar mass mixed molarly. mixDensity is the mixture liquid density in
// kg/m³ — typically a density-model output — and is converted to the g/cm³
// the parachor correlation is defined in.
func MacleodSugden(molarFrac []float64, comps []solvent.Component, mixDensity float64) (float64, error) {
	if math.IsNaN(mixDensity) || mixDensity <= 0 {
		return math.NaN(), ErrBadDensity
	}

	var mwMix, parachorMix float64
	for i, x := range molarFrac {
		mwMix += x * comps[i].MolarMass
		parachorMix += x * comps[i].Parachor
	}

	rhoGCm3 := mixDensity * physconst.KgM3ToGCm3
	sigma := parachorMix * rhoGCm3 / mwMix
	return sigma * sigma * sigma * sigma, nil
}

// SprowPrausnitz solves Σ xᵢ·exp((σ−σᵢ)·Aᵢ/(R·T)) = 1 for the mixture
// surface tension, with the molar surface area Aᵢ = Vmᵢ^(2/3)·Nₐ^(1/3).
// Low-tension components preferentially populate the surface, so the result
// sits below the linear estimate — that is the model, not an error.
//
// When the bracket holds no sign change the model falls back to the linear
// molar average; fellBack reports that the fallback was taken.
func SprowPrausnitz(tempK float64, molarFrac []float64, comps []solvent.Component) (sigma float64, fellBack bool, err error) {
	areas := make([]float64, len(comps))
	for i, c := range comps {
		vm := c.MolarMass * physconst.GToKg / c.RefDensity // m³/mol
		areas[i] = math.Pow(vm, 2.0/3.0) * math.Cbrt(physconst.Avogadro)
	}

	rt := physconst.R * tempK
	objective := func(sig float64) float64 {
		sum := 0.0
		for i, x := range molarFrac {
			diff := (sig - comps[i].RefTension) * physconst.MNmToNm // mN/m -> J/m²
			sum += x * math.Exp(diff*areas[i]/rt)
		}
		return sum - 1
	}

	lo, hi := comps[0].RefTension, comps[0].RefTension
	for _, c := range comps[1:] {
		lo = math.Min(lo, c.RefTension)
		hi = math.Max(hi, c.RefTension)
	}
	lo -= bracketHeadroom
	hi += bracketHeadroom

	root, err := bisect(objective, lo, hi)
	if err != nil {
		if errors.Is(err, ErrUnbracketed) {
			linear, _ := LinearMolar(molarFrac, comps)
			return linear, true, nil
		}
		return math.NaN(), false, err
	}
	return root, false, nil
}

// bisect finds a root of f on [lo, hi] by bisection. The objective is
// monotone in σ, so a bracketed root is unique.
func bisect(f func(float64) float64, lo, hi float64) (float64, error) {
	fLo, fHi := f(lo), f(hi)
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if fLo*fHi > 0 {
		return math.NaN(), ErrUnbracketed
	}

	for i := 0; i < bisectMaxIter; i++ {
		mid := (lo + hi) / 2
		fMid := f(mid)
		if fMid == 0 || (hi-lo)/2 < bisectTol {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return math.NaN(), ErrNoConvergence
}
