// Package hexwave draws a centred hexagonal grid of rounded hexagons whose
// rings fill outward in sequence and fade back together, as an animated SVG
// and as PNG frames.
//
// What is inside?
//
//	geometry/       — Point, rounded hexagon Outline, arc centre/sweep recovery
//	hexgrid/        — ring/spoke/offset enumeration of cells, axial coordinates
//	schedule/       — per-ring keyframe tracks for radius and colour
//	scene/          — configuration record + one-shot composition of the above
//	render/svgdoc/  — SVG document collaborator (github.com/ajstarks/svgo)
//	render/raster/  — PNG frame collaborator (github.com/fogleman/gg)
//	cmd/hexwave/    — the generator binary
//
// Cell counts follow the centred hexagonal numbers:
//
//	gridSize  0  1   2   3   4
//	cells     1  7  19  37  61
//
// Everything below render/ is pure and deterministic: identical
// configurations produce bit-identical scenes.
//
//	go run ./cmd/hexwave
package hexwave
