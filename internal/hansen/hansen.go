// Package hansen provides Hansen solubility parameter mixing and the
// relative energy difference (RED) compatibility score. Both are pure and
// total: defined for every composition that sums to 1.
package hansen

import "math"

// Params is a point in Hansen space.
type Params struct {
	D float64 `json:"dd"` // MPa^0.5, dispersion
	P float64 `json:"dp"` // MPa^0.5, polarity
	H float64 `json:"dh"` // MPa^0.5, hydrogen bonding
}

// Mix computes the mixture Hansen parameters as the volume-fraction
// weighted average per axis.
func Mix(volFrac []float64, axes []Params) Params {
	var mix Params
	for i, phi := range volFrac {
		mix.D += phi * axes[i].D
		mix.P += phi * axes[i].P
		mix.H += phi * axes[i].H
	}
	return mix
}

// Distance computes the Hansen distance Ra between two points, with the
// conventional factor 4 on the dispersion axis.
func Distance(a, b Params) float64 {
	dd := a.D - b.D
	dp := a.P - b.P
	dh := a.H - b.H
	return math.Sqrt(4*dd*dd + dp*dp + dh*dh)
}

// RED computes the relative energy difference of a solvent (or mixture)
// point against a target material: Ra divided by the target's interaction
// radius. RED < 1 conventionally signals compatibility.
func RED(point Params, target Target) float64 {
	return Distance(point, target.Center) / target.Radius
}

// Compatible reports whether the point sits inside the target's sphere.
func Compatible(point Params, target Target) bool {
	return RED(point, target) < 1
}
