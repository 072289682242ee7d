// SPDX-License-Identifier: MIT
// Package: hexwave/hexgrid
//
// hexgrid.go — ring/spoke/offset enumeration of grid cells.
//
// Contract:
//   - Enumerate is a pure function of its inputs: the returned sequence may be
//     ranged over any number of times and always yields the same cells in the
//     same (ring, spoke, offset) order.
//   - Placements are relative to the grid centre; callers add the centre.
//   - Consumers must rely on membership and ring assignment only, never on
//     absolute iteration order.

package hexgrid

import (
	"iter"
	"math"

	"github.com/katalvlaran/hexwave/geometry"
)

// Spokes is the number of straight walks that make up one ring.
const Spokes = 6

const (
	// spokeRotation aligns ring corners with the flat-top hexagon (30°).
	spokeRotation = math.Pi / 6
	// spokeStep is the angle between spokes (60°).
	spokeStep = math.Pi / 3
	// offsetTurn rotates the offset walk away from the spoke (120°).
	offsetTurn = 2 * math.Pi / 3
)

// Cell is one grid position. Ring 0 is the single centre cell, for which
// Spoke and Offset are always 0. For Ring r > 0, Spoke ∈ [0,5] and
// Offset ∈ [0,r).
type Cell struct {
	Ring     int
	Spoke    int
	Offset   int
	Position geometry.Point
}

// HexagonHeight returns the centre-to-centre distance of adjacent flat-top
// hexagons of vertex radius radius: radius·√3.
func HexagonHeight(radius float64) float64 {
	return radius * math.Sqrt(3)
}

// RingSize returns the number of cells in ring r: 1 for the centre, 6r beyond it.
func RingSize(r int) int {
	switch {
	case r < 0:
		return 0
	case r == 0:
		return 1
	default:
		return Spokes * r
	}
}

// CellCount returns the centred hexagonal number 3g²+3g+1, the number of
// cells in a grid of size g (0 for negative g).
func CellCount(gridSize int) int {
	if gridSize < 0 {
		return 0
	}
	return 3*gridSize*gridSize + 3*gridSize + 1
}

// Placement returns the position of the cell (ring, spoke, offset) relative
// to the grid centre, for hexagons of vertex radius radius.
// Ring 0 always maps to the origin.
// Complexity: O(1).
func Placement(ring, spoke, offset int, radius float64) geometry.Point {
	if ring <= 0 {
		return geometry.Origin
	}
	height := HexagonHeight(radius)
	spokeAngle := float64(spoke)*spokeStep + spokeRotation
	offsetAngle := spokeAngle + offsetTurn
	ringRadius := float64(ring) * height
	offsetDistance := float64(offset) * height
	return geometry.Polar(ringRadius, spokeAngle).Add(geometry.Polar(offsetDistance, offsetAngle))
}

// Enumerate returns every cell of a grid with gridSize rings around the
// centre, ring by ring, as a lazy sequence. A negative gridSize yields
// nothing. Breaking out of the range loop stops the walk.
// Complexity: O(1) per cell.
func Enumerate(gridSize int, radius float64) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if gridSize < 0 {
			return
		}
		if !yield(Cell{Position: geometry.Origin}) {
			return
		}
		for ring := 1; ring <= gridSize; ring++ {
			for spoke := 0; spoke < Spokes; spoke++ {
				for offset := 0; offset < ring; offset++ {
					c := Cell{
						Ring:     ring,
						Spoke:    spoke,
						Offset:   offset,
						Position: Placement(ring, spoke, offset, radius),
					}
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}

// Cells collects Enumerate into a slice sized by CellCount.
func Cells(gridSize int, radius float64) []Cell {
	out := make([]Cell, 0, CellCount(gridSize))
	for c := range Enumerate(gridSize, radius) {
		out = append(out, c)
	}
	return out
}

// Rings groups the cells of Enumerate by ring index; rings[r] holds ring r.
func Rings(gridSize int, radius float64) [][]Cell {
	if gridSize < 0 {
		return nil
	}
	rings := make([][]Cell, gridSize+1)
	for r := range rings {
		rings[r] = make([]Cell, 0, RingSize(r))
	}
	for c := range Enumerate(gridSize, radius) {
		rings[c.Ring] = append(rings[c.Ring], c)
	}
	return rings
}
