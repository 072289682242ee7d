// Package scene assembles the three pure hexwave components into one
// immutable Scene: the rounded hexagon outline, every grid cell placement
// and every ring's animation schedule, together with the canvas size and
// centre derived from the configuration record.
//
// Everything is computed up front by Compose; renderers (render/svgdoc,
// render/raster) only read a Scene and fold it into their output in a
// single pass.
//
// Configuration is an explicit Config built with functional options
// (WithGridSize, WithHexagonRadius, WithStrokeWidth, WithCornerRadius,
// WithPalette, …). Option constructors panic on meaningless values; Compose
// reports parameter combinations that are only invalid together, such as a
// corner radius too large for the hexagon radius, as errors.
package scene
