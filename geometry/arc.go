// SPDX-License-Identifier: MIT
// Package: hexwave/geometry
//
// arc.go — centre form of the endpoint arcs stored in an Outline.
//
// Contract:
//   • Arcs are circular (rx = ry = Radius, x-rotation 0).
//   • Degenerate arcs (From == To or Radius == 0) have no sweep; callers
//     draw them as a straight segment.

package geometry

import "math"

// Center recovers the centre of the arc from its endpoint form, following the
// SVG endpoint-to-centre conversion for circular radii. When the radius is
// too small to span the chord it is scaled up, as SVG renderers do, and the
// centre falls on the chord midpoint. A degenerate arc returns From.
// Complexity: O(1).
func (a Arc) Center() Point {
	half := a.From.Sub(a.To).Scale(0.5)
	l2 := half.X*half.X + half.Y*half.Y
	if l2 == 0 || a.Radius == 0 {
		return a.From
	}
	mid := a.From.Add(a.To).Scale(0.5)
	// clamp at 0: an undersized radius puts the centre on the chord
	k := math.Sqrt(math.Max(0, (a.Radius*a.Radius-l2)/l2))
	// the centre sits on the side of the chord opposite the flag combination
	if a.LargeArc == a.Sweep {
		k = -k
	}
	return Point{X: mid.X + k*half.Y, Y: mid.Y - k*half.X}
}

// EffectiveRadius returns the radius actually drawn: Radius, or half the
// chord when Radius cannot span it.
// Complexity: O(1).
func (a Arc) EffectiveRadius() float64 {
	return math.Max(a.Radius, a.From.Distance(a.To)/2)
}

// StartAngle is the angle of From as seen from the arc centre.
// Complexity: O(1).
func (a Arc) StartAngle() float64 {
	return a.From.Sub(a.Center()).Angle()
}

// SweepAngle is the signed angle travelled from From to To: positive for
// Sweep arcs, negative otherwise, zero for degenerate arcs.
// Complexity: O(1); at most one wrap of 2π.
func (a Arc) SweepAngle() float64 {
	c := a.Center()
	if a.From.AlmostEqual(a.To, Epsilon) {
		return 0
	}
	d := a.To.Sub(c).Angle() - a.From.Sub(c).Angle()
	// atan2 differences lie in (-2π, 2π); bring d onto the flagged direction
	if a.Sweep {
		for d < 0 {
			d += 2 * math.Pi
		}
	} else {
		for d > 0 {
			d -= 2 * math.Pi
		}
	}
	return d
}
