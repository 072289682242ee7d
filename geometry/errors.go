// SPDX-License-Identifier: MIT
// Package: hexwave/geometry
//
// errors.go — sentinel errors for the geometry kernel.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w (see geometryErrorf).

package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidRadius indicates a hexagon radius that is zero, negative or not finite.
var ErrInvalidRadius = errors.New("geometry: radius must be positive and finite")

// ErrNegativeCornerRadius indicates a corner-rounding radius below zero.
var ErrNegativeCornerRadius = errors.New("geometry: corner radius must not be negative")

// ErrCornerRadiusTooLarge indicates a corner-rounding radius at or beyond
// radius·sin(π/6). The straight and rounded endpoints of adjacent corners
// would cross, producing a self-intersecting or degenerate outline.
var ErrCornerRadiusTooLarge = errors.New("geometry: corner radius too large for hexagon radius")

// geometryErrorf prefixes a sentinel with method context, keeping it
// matchable through errors.Is.
func geometryErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
