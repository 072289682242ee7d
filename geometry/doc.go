// Package geometry is the pure-math kernel of hexwave: it turns a centre, a
// vertex radius and a corner-rounding radius into the closed outline of one
// rounded hexagon.
//
// What:
//
//   - Point: an immutable 2D coordinate (y grows downward, as on a canvas).
//   - Outline: move → (arc, line) × 6 → close, reusable both as a stroked
//     outline and as a filled clip region.
//   - Arc: endpoint-form elliptical arc with circular radius, plus recovery of
//     its centre and sweep for renderers that need centre-form arcs.
//
// Orientation:
//
//	Vertex n sits at angle n·60° from the centre, so the hexagon is flat-top:
//
//	      4 ____ 5
//	       /    \
//	    3 /      \ 0
//	      \      /
//	       \____/
//	      2      1
//
// Errors:
//
//   - ErrInvalidRadius: radius ≤ 0 (or not finite).
//   - ErrNegativeCornerRadius: cornerRadius < 0.
//   - ErrCornerRadiusTooLarge: cornerRadius ≥ radius·sin(π/6); such an outline
//     would self-intersect.
//
// Complexity: every operation is O(1); an Outline always holds six corners.
package geometry
