// Package viscosity provides the mixture dynamic-viscosity correlations:
// linear molar average, Arrhenius log-mixing, Kendall-Monroe, and
// Grunberg-Nissan with binary interaction parameters. All take molar
// fractions and the pure reference viscosities and return cP.
package viscosity

import (
	"errors"
	"math"

	"github.com/talgya/solventmix/internal/solvent"
)

// ErrNonPositiveViscosity indicates a pure viscosity at or below zero,
// which has no logarithm.
var ErrNonPositiveViscosity = errors.New("viscosity: non-positive pure viscosity")

// Linear computes the arithmetic molar average. Known to overestimate real
// mixtures; informational only.
func Linear(molarFrac []float64, comps []solvent.Component) (float64, error) {
	mu := 0.0
	for i, x := range molarFrac {
		mu += x * comps[i].RefVisc
	}
	return mu, nil
}

// Arrhenius computes ln μ_mix = Σ xᵢ·ln μᵢ, the ideal-solution estimate.
func Arrhenius(molarFrac []float64, comps []solvent.Component) (float64, error) {
	lnMu, err := logMix(molarFrac, comps)
	if err != nil {
		return math.NaN(), err
	}
	return math.Exp(lnMu), nil
}

// KendallMonroe computes μ_mix^(1/3) = Σ xᵢ·μᵢ^(1/3).
func KendallMonroe(molarFrac []float64, comps []solvent.Component) (float64, error) {
	cube := 0.0
	for i, x := range molarFrac {
		if comps[i].RefVisc <= 0 {
			return math.NaN(), ErrNonPositiveViscosity
		}
		cube += x * math.Cbrt(comps[i].RefVisc)
	}
	return cube * cube * cube, nil
}

// GrunbergNissan computes ln μ_mix = Σ xᵢ·ln μᵢ + ΣᵢΣⱼ(i≠j) Gᵢⱼ·xᵢ·xⱼ.
// Gᵢⱼ is looked up by component identity in the caller-supplied table and
// defaults to 0, so an empty (or nil) table reduces exactly to Arrhenius.
func GrunbergNissan(molarFrac []float64, comps []solvent.Component, table *InteractionTable) (float64, error) {
	lnMu, err := logMix(molarFrac, comps)
	if err != nil {
		return math.NaN(), err
	}

	excess := 0.0
	for i := range comps {
		for j := range comps {
			if i == j {
				continue
			}
			excess += table.Get(comps[i].Name, comps[j].Name) * molarFrac[i] * molarFrac[j]
		}
	}
	return math.Exp(lnMu + excess), nil
}

func logMix(molarFrac []float64, comps []solvent.Component) (float64, error) {
	lnMu := 0.0
	for i, x := range molarFrac {
		if comps[i].RefVisc <= 0 {
			return 0, ErrNonPositiveViscosity
		}
		lnMu += x * math.Log(comps[i].RefVisc)
	}
	return lnMu, nil
}
