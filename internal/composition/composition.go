// Package composition provides basis-tagged fraction vectors and the
// conversion between mass, molar, and volume bases. Conversion happens here
// and nowhere else: every correlation takes the basis it needs from a Set
// produced by Convert, so the three bases can never drift apart.
package composition

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/talgya/solventmix/internal/solvent"
)

// Basis tags which kind of fraction a vector holds.
type Basis string

const (
	BasisMass   Basis = "mass"
	BasisMolar  Basis = "molar"
	BasisVolume Basis = "volume"
)

// DefaultTolerance is the boundary tolerance on the fraction sum. Interior
// call sites that re-check normalized vectors use a tighter 1e-6.
const DefaultTolerance = 1e-4

var (
	// ErrLengthMismatch indicates fractions and components differ in length.
	ErrLengthMismatch = errors.New("composition: fraction and component counts differ")

	// ErrNegativeFraction indicates a fraction below zero.
	ErrNegativeFraction = errors.New("composition: negative fraction")

	// ErrSumNotUnity indicates fractions do not sum to 1 within tolerance.
	ErrSumNotUnity = errors.New("composition: fractions do not sum to 1")

	// ErrBadBasis indicates an unrecognized basis tag.
	ErrBadBasis = errors.New("composition: unknown basis")

	// ErrBadConstants indicates a zero molar mass or reference density,
	// which would turn a conversion into a silent division by zero.
	ErrBadConstants = errors.New("composition: zero molar mass or reference density")
)

// Set holds the same composition expressed on all three bases, each
// individually normalized to sum to 1.
type Set struct {
	Molar  []float64 `json:"molar"`
	Mass   []float64 `json:"mass"`
	Volume []float64 `json:"volume"`
}

// Validate checks a raw fraction vector against the components it describes.
func Validate(fractions []float64, comps []solvent.Component, tol float64) error {
	if len(fractions) != len(comps) {
		return fmt.Errorf("%w: %d fractions, %d components", ErrLengthMismatch, len(fractions), len(comps))
	}
	if len(fractions) == 0 {
		return fmt.Errorf("%w: empty composition", ErrLengthMismatch)
	}
	for i, f := range fractions {
		if f < 0 {
			return fmt.Errorf("%w: %s = %.6g", ErrNegativeFraction, comps[i].Name, f)
		}
	}
	if sum := floats.Sum(fractions); math.Abs(sum-1) > tol {
		return fmt.Errorf("%w: sum = %.8g", ErrSumNotUnity, sum)
	}
	for _, c := range comps {
		if c.MolarMass <= 0 || c.RefDensity <= 0 {
			return fmt.Errorf("%w: %s", ErrBadConstants, c.Name)
		}
	}
	return nil
}

// Convert validates the input vector and produces the molar, mass, and
// volume fraction vectors. Round trips recover the input within
// floating-point tolerance.
func Convert(fractions []float64, basis Basis, comps []solvent.Component, tol float64) (Set, error) {
	if err := Validate(fractions, comps, tol); err != nil {
		return Set{}, err
	}

	var set Set
	switch basis {
	case BasisMass:
		set.Mass = normalized(fractions)
		set.Molar = scaledInverse(set.Mass, molarMasses(comps))
		set.Volume = scaledInverse(set.Mass, refDensities(comps))
	case BasisMolar:
		set.Molar = normalized(fractions)
		set.Mass = scaled(set.Molar, molarMasses(comps))
		set.Volume = scaledInverse(set.Mass, refDensities(comps))
	case BasisVolume:
		set.Volume = normalized(fractions)
		set.Mass = scaled(set.Volume, refDensities(comps))
		set.Molar = scaledInverse(set.Mass, molarMasses(comps))
	default:
		return Set{}, fmt.Errorf("%w: %q", ErrBadBasis, basis)
	}
	return set, nil
}

// On returns the vector for the given basis.
func (s Set) On(basis Basis) ([]float64, error) {
	switch basis {
	case BasisMass:
		return s.Mass, nil
	case BasisMolar:
		return s.Molar, nil
	case BasisVolume:
		return s.Volume, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadBasis, basis)
}

// normalized returns a copy of v scaled to sum to 1.
func normalized(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	floats.Scale(1/floats.Sum(out), out)
	return out
}

// scaled returns the renormalized element-wise product v[i]*k[i].
func scaled(v, k []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * k[i]
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

// scaledInverse returns the renormalized element-wise quotient v[i]/k[i].
func scaledInverse(v, k []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] / k[i]
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

func molarMasses(comps []solvent.Component) []float64 {
	out := make([]float64, len(comps))
	for i, c := range comps {
		out[i] = c.MolarMass
	}
	return out
}

func refDensities(comps []solvent.Component) []float64 {
	out := make([]float64, len(comps))
	for i, c := range comps {
		out[i] = c.RefDensity
	}
	return out
}
