// Package raster renders still frames of a hexwave scene to PNG with
// github.com/fogleman/gg, sampling every ring's schedule at a key time.
//
// Each frame fills, per cell, the ring's circle clipped to the rounded
// hexagon and then strokes all outlines on top, the same layering as the SVG
// document. Optional ring-index labels use the Go Mono face through
// github.com/golang/freetype.
//
// WriteFrames renders a whole cycle in parallel (golang.org/x/sync/errgroup);
// frames share nothing but the read-only Scene.
package raster
