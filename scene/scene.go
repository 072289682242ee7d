// SPDX-License-Identifier: MIT
// Package: hexwave/scene
//
// scene.go — one-shot composition of outline, placements and schedules.
//
// Contract:
//   - Compose computes every value before returning; a Scene is never mutated.
//   - Geometry sentinels (geometry.ErrCornerRadiusTooLarge, …) surface
//     unchanged through %w so callers can match them with errors.Is.
//
// Complexity: O(3g²+3g+1) for the cells, O(g) for the schedules.

package scene

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hexwave/geometry"
	"github.com/katalvlaran/hexwave/hexgrid"
	"github.com/katalvlaran/hexwave/schedule"
)

const methodCompose = "Compose"

// Canvas margins, in hexagon radii, around the outermost ring.
const (
	marginWidth  = 5 // R·(5+3g)
	marginHeight = 3 // R√3·(3+2g)
)

// Scene is the fully computed, immutable description of one image.
type Scene struct {
	Config Config

	// Width and Height are the canvas size in user units; Center is its middle.
	Width, Height float64
	Center        geometry.Point

	// Outline is the rounded hexagon centred on the origin; instances are
	// translated to Center + Cell.Position.
	Outline geometry.Outline

	Cells     []hexgrid.Cell
	Schedules []schedule.Schedule
}

// Compose validates cfg and computes the Scene it describes.
//
// Errors: ErrInvalidConfig, geometry.ErrInvalidRadius,
// geometry.ErrNegativeCornerRadius, geometry.ErrCornerRadiusTooLarge.
func Compose(cfg Config) (*Scene, error) {
	if cfg.GridSize < 0 {
		return nil, fmt.Errorf("%s: gridSize=%d: %w", methodCompose, cfg.GridSize, ErrInvalidConfig)
	}
	if cfg.StrokeWidth < 0 || math.IsNaN(cfg.StrokeWidth) {
		return nil, fmt.Errorf("%s: strokeWidth=%g: %w", methodCompose, cfg.StrokeWidth, ErrInvalidConfig)
	}
	if cfg.TimeUnit <= 0 {
		return nil, fmt.Errorf("%s: timeUnit=%s: %w", methodCompose, cfg.TimeUnit, ErrInvalidConfig)
	}
	// checked here so the panicking schedule options below never see them
	for _, c := range []struct {
		name  string
		color colorful.Color
	}{
		{"background", cfg.Background},
		{"strokeColor", cfg.StrokeColor},
		{"baseColor", cfg.BaseColor},
		{"accentColor", cfg.AccentColor},
		{"fadeColor", cfg.FadeColor},
	} {
		if !c.color.IsValid() {
			return nil, fmt.Errorf("%s: %s out of gamut: %w", methodCompose, c.name, ErrInvalidConfig)
		}
	}

	outline, err := geometry.BuildHexagonOutline(geometry.Origin, cfg.HexagonRadius, cfg.CornerRadius)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, err)
	}

	scheds, err := schedule.Build(cfg.GridSize,
		schedule.WithHexagonRadius(cfg.HexagonRadius),
		schedule.WithColors(cfg.BaseColor, cfg.AccentColor, cfg.FadeColor),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompose, err)
	}

	w, h := CanvasSize(cfg)
	return &Scene{
		Config:    cfg,
		Width:     w,
		Height:    h,
		Center:    geometry.Point{X: w / 2, Y: h / 2},
		Outline:   outline,
		Cells:     hexgrid.Cells(cfg.GridSize, cfg.HexagonRadius),
		Schedules: scheds,
	}, nil
}

// CanvasSize returns the image width and height for cfg: the outermost ring
// plus a margin, with room for half a stroke on every side.
func CanvasSize(cfg Config) (width, height float64) {
	g := float64(cfg.GridSize)
	width = cfg.HexagonRadius*(marginWidth+3*g) + cfg.StrokeWidth*2/math.Sqrt(3)
	height = hexgrid.HexagonHeight(cfg.HexagonRadius)*(marginHeight+2*g) + cfg.StrokeWidth
	return width, height
}

// Placement returns the absolute canvas position of c.
func (s *Scene) Placement(c hexgrid.Cell) geometry.Point {
	return s.Center.Add(c.Position)
}

// ScheduleFor returns the schedule of the ring c belongs to.
func (s *Scene) ScheduleFor(c hexgrid.Cell) schedule.Schedule {
	return s.Schedules[c.Ring]
}

// Duration returns the cycle length in time units.
func (s *Scene) Duration() int {
	return schedule.Duration(s.Config.GridSize)
}
