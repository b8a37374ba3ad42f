package density

import "math"

// realCubicRoots returns the real roots of z³ + b2·z² + b1·z + b0 = 0,
// via the depressed-cubic reduction: Cardano when one real root exists,
// the trigonometric form when all three are real. Bounded, closed form —
// no iteration that could fail to converge.
func realCubicRoots(b2, b1, b0 float64) []float64 {
	// Substitute z = t - b2/3 to drop the quadratic term.
	shift := b2 / 3
	p := b1 - b2*b2/3
	q := 2*b2*b2*b2/27 - b2*b1/3 + b0

	disc := q*q/4 + p*p*p/27
	switch {
	case disc > 0:
		// One real root.
		sq := math.Sqrt(disc)
		t := math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
		return []float64{t - shift}
	case disc == 0:
		if p == 0 {
			return []float64{-shift}
		}
		// Repeated root plus a simple one.
		t1 := 3 * q / p
		t2 := -3 * q / (2 * p)
		return []float64{t1 - shift, t2 - shift}
	default:
		// Three distinct real roots.
		m := 2 * math.Sqrt(-p/3)
		theta := math.Acos(3*q/(p*m)) / 3
		roots := make([]float64, 0, 3)
		for k := 0; k < 3; k++ {
			t := m * math.Cos(theta-2*math.Pi*float64(k)/3)
			roots = append(roots, t-shift)
		}
		return roots
	}
}
