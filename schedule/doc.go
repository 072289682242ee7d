// Package schedule derives the keyframe timetable of the hexwave animation:
// per ring, when its filling circle grows, when it takes the accent colour and
// when every ring fades back together.
//
// Timing (D = Duration(gridSize) = 2·(gridSize+1) + 2 time units):
//
//	ring r grows       [2r/D, (2r+1)/D]     radius 0 → R
//	ring r recolours   [(2r+1)/D, (2r+2)/D] base → accent
//	all rings fade     [(D-1)/D, 1]         accent → fade
//
// Exactly one ring grows in any one-unit slot, so the fill visibly travels
// outward; the cycle repeats indefinitely with period D.
//
// Tracks hold parallel key-time/value slices and are sampled with
// piecewise-linear interpolation; colours blend in sRGB through go-colorful.
package schedule
