// Package hexgrid enumerates the cells of a centred hexagonal grid ring by
// ring, the layout behind the centred hexagonal numbers 1, 7, 19, 37, 61, …
//
// What:
//
//   - Enumerate yields every Cell of a grid of the given size as a lazy,
//     restartable iter.Seq; Cells collects it.
//   - Each ring r > 0 is walked as six spokes; along spoke s the walk takes
//     offset steps rotated 120° from the spoke direction, which traces a
//     hexagonal (not circular) ring of 6r cells.
//   - Axial converts placements back to axial hex coordinates, whose
//     distance from the origin equals the ring index.
//
// Layout (gridSize = 1, flat-top hexagons, y down; sN is spoke N of ring 1):
//
//	        s4
//	  s3          s5
//	       centre
//	  s2          s0
//	        s1
//
// Complexity:
//
//   - Enumerate: O(1) per yielded cell, O(3g²+3g+1) for the full walk, O(1) memory.
//   - Cells:     O(3g²+3g+1) time and memory.
package hexgrid
