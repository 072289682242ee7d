// SPDX-License-Identifier: MIT
// Package: hexwave/hexgrid
//
// axial.go — axial (q, r) coordinates of enumerated cells.
//
// Contract:
//   • Flat-top orientation only; the ring of a cell equals the axial
//     distance of its coordinate from the origin.
//   • Conversions never fail: any point snaps to the hexagon containing it.

package hexgrid

import (
	"math"

	"github.com/katalvlaran/hexwave/geometry"
)

// Axial is a flat-top axial hex coordinate (q, r). The third cube
// coordinate is implied as s = -q-r.
type Axial struct {
	Q, R int
}

// axialDirections lists the six neighbour offsets, starting at 30° and
// turning with the spokes.
var axialDirections = [Spokes]Axial{
	{Q: 1, R: 0}, {Q: 0, R: 1}, {Q: -1, R: 1},
	{Q: -1, R: 0}, {Q: 0, R: -1}, {Q: 1, R: -1},
}

// AxialFromPosition converts a centre-relative placement into the axial
// coordinate of the hexagon containing it, using cube rounding.
// Complexity: O(1).
func AxialFromPosition(p geometry.Point, radius float64) Axial {
	q := (2.0 / 3.0 * p.X) / radius
	r := (-1.0/3.0*p.X + math.Sqrt(3)/3.0*p.Y) / radius
	return cubeRound(q, r, -q-r)
}

// cubeRound snaps fractional cube coordinates to the nearest hexagon,
// resetting the component with the largest rounding error.
func cubeRound(q, r, s float64) Axial {
	rq, rr, rs := math.Round(q), math.Round(r), math.Round(s)
	dq, dr, ds := math.Abs(rq-q), math.Abs(rr-r), math.Abs(rs-s)
	// q+r+s must stay 0: recompute the worst-rounded component from the others
	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return Axial{Q: int(rq), R: int(rr)}
}

// Position returns the centre-relative placement of a.
// Complexity: O(1).
func (a Axial) Position(radius float64) geometry.Point {
	return geometry.Point{
		X: radius * 1.5 * float64(a.Q),
		Y: radius * math.Sqrt(3) * (float64(a.Q)/2 + float64(a.R)),
	}
}

// Distance returns the number of steps between a and b on the hex grid.
// Complexity: O(1).
func (a Axial) Distance(b Axial) int {
	dq, dr := a.Q-b.Q, a.R-b.R
	// cube distance with the implied third axis ds = -(dq+dr)
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Neighbors returns the six adjacent coordinates in direction order.
// Complexity: O(1) time, fixed-size result.
func (a Axial) Neighbors() [Spokes]Axial {
	var ns [Spokes]Axial
	for i, d := range axialDirections {
		ns[i] = Axial{Q: a.Q + d.Q, R: a.R + d.R}
	}
	return ns
}

// Axial returns the axial coordinate of c for hexagons of vertex radius radius.
// The distance of the result from the origin equals c.Ring.
// Complexity: O(1).
func (c Cell) Axial(radius float64) Axial {
	return AxialFromPosition(c.Position, radius)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
