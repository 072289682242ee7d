// SPDX-License-Identifier: MIT
// Package: hexwave/scene
//
// config.go — the configuration record and its functional options.
//
// Deterministic defaults:
//   • GridSize      = 4    (61 hexagons)
//   • HexagonRadius = 10
//   • StrokeWidth   = 1
//   • CornerRadius  = 1.5·StrokeWidth unless set explicitly
//   • TimeUnit      = 1s
//   • Palette       = schedule defaults; black stroke on a pale cyan background

package scene

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hexwave/schedule"
)

const (
	DefaultGridSize      = 4
	DefaultHexagonRadius = 10.0
	DefaultStrokeWidth   = 1.0
	DefaultTimeUnit      = time.Second

	// cornerPerStroke derives the corner radius from the stroke width.
	cornerPerStroke = 1.5
)

var (
	DefaultBackground  = mustHex("#e0fbfc")
	DefaultStrokeColor = mustHex("#000000")
)

// mustHex parses a fixed hex literal and panics if it is malformed.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("scene: " + err.Error())
	}
	return c
}

// Config is the full parameter set of a hexwave image.
type Config struct {
	GridSize      int
	HexagonRadius float64
	StrokeWidth   float64
	CornerRadius  float64
	TimeUnit      time.Duration

	Background  colorful.Color
	StrokeColor colorful.Color
	BaseColor   colorful.Color
	AccentColor colorful.Color
	FadeColor   colorful.Color
}

// Option mutates a Config under construction.
type Option func(*options)

type options struct {
	cfg       Config
	cornerSet bool
}

// DefaultConfig returns the configuration of the reference image.
func DefaultConfig() Config {
	return NewConfig()
}

// NewConfig applies opts over the defaults, in order (later options win).
// Unless WithCornerRadius is given, the corner radius follows the stroke width.
func NewConfig(opts ...Option) Config {
	o := options{cfg: Config{
		GridSize:      DefaultGridSize,
		HexagonRadius: DefaultHexagonRadius,
		StrokeWidth:   DefaultStrokeWidth,
		TimeUnit:      DefaultTimeUnit,
		Background:    DefaultBackground,
		StrokeColor:   DefaultStrokeColor,
		BaseColor:     schedule.DefaultBaseColor,
		AccentColor:   schedule.DefaultAccentColor,
		FadeColor:     schedule.DefaultFadeColor,
	}}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.cornerSet {
		o.cfg.CornerRadius = o.cfg.StrokeWidth * cornerPerStroke
	}
	return o.cfg
}

// WithGridSize sets the number of rings around the centre cell. Panics if n < 0.
func WithGridSize(n int) Option {
	if n < 0 {
		panic("scene: WithGridSize(n<0)")
	}
	return func(o *options) { o.cfg.GridSize = n }
}

// WithHexagonRadius sets the centre-to-vertex radius. Panics if r <= 0.
func WithHexagonRadius(r float64) Option {
	if !(r > 0) {
		panic("scene: WithHexagonRadius(r<=0)")
	}
	return func(o *options) { o.cfg.HexagonRadius = r }
}

// WithStrokeWidth sets the outline stroke width. Panics if w < 0.
func WithStrokeWidth(w float64) Option {
	if w < 0 {
		panic("scene: WithStrokeWidth(w<0)")
	}
	return func(o *options) { o.cfg.StrokeWidth = w }
}

// WithCornerRadius pins the corner-rounding radius. Panics if r < 0; the
// upper bound depends on the hexagon radius and is checked by Compose.
func WithCornerRadius(r float64) Option {
	if r < 0 {
		panic("scene: WithCornerRadius(r<0)")
	}
	return func(o *options) {
		o.cfg.CornerRadius = r
		o.cornerSet = true
	}
}

// WithTimeUnit sets the wall-clock length of one schedule time unit.
// Panics if d <= 0.
func WithTimeUnit(d time.Duration) Option {
	if d <= 0 {
		panic("scene: WithTimeUnit(d<=0)")
	}
	return func(o *options) { o.cfg.TimeUnit = d }
}

// WithPalette sets the base, accent and fade colours of the filling circles.
// Panics on out-of-gamut colours.
func WithPalette(base, accent, fade colorful.Color) Option {
	if !base.IsValid() || !accent.IsValid() || !fade.IsValid() {
		panic("scene: WithPalette(out-of-gamut colour)")
	}
	return func(o *options) {
		o.cfg.BaseColor, o.cfg.AccentColor, o.cfg.FadeColor = base, accent, fade
	}
}

// WithBackground sets the canvas background. Panics on an out-of-gamut colour.
func WithBackground(c colorful.Color) Option {
	if !c.IsValid() {
		panic("scene: WithBackground(out-of-gamut colour)")
	}
	return func(o *options) { o.cfg.Background = c }
}

// WithStrokeColor sets the outline colour. Panics on an out-of-gamut colour.
func WithStrokeColor(c colorful.Color) Option {
	if !c.IsValid() {
		panic("scene: WithStrokeColor(out-of-gamut colour)")
	}
	return func(o *options) { o.cfg.StrokeColor = c }
}
