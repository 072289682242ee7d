// SPDX-License-Identifier: MIT
// Package: hexwave/schedule
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input; Build
//     itself never panics.
//   • Options resolve into an immutable config; later options win.

package schedule

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default palette: cells grow in pale blue, settle on a deep accent and fade
// back to white at the end of every cycle.
var (
	DefaultBaseColor   = mustHex("#8ecae6")
	DefaultAccentColor = mustHex("#023047")
	DefaultFadeColor   = mustHex("#ffffff")
)

// mustHex parses a fixed hex literal; a malformed literal is a programming
// error and panics at package init.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("schedule: " + err.Error())
	}
	return c
}

// DefaultHexagonRadius is the full-grown circle radius when none is given.
const DefaultHexagonRadius = 10.0

// Option customises Build.
type Option func(*config)

type config struct {
	hexagonRadius float64
	base          colorful.Color
	accent        colorful.Color
	fade          colorful.Color
}

func newConfig(opts ...Option) config {
	cfg := config{
		hexagonRadius: DefaultHexagonRadius,
		base:          DefaultBaseColor,
		accent:        DefaultAccentColor,
		fade:          DefaultFadeColor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHexagonRadius sets the radius every ring's circle grows to.
// Panics if r <= 0.
func WithHexagonRadius(r float64) Option {
	if !(r > 0) {
		panic("schedule: WithHexagonRadius(r<=0)")
	}
	return func(c *config) {
		c.hexagonRadius = r
	}
}

// WithColors sets the base, accent and fade colours.
// Panics if any colour lies outside the sRGB gamut.
func WithColors(base, accent, fade colorful.Color) Option {
	if !base.IsValid() || !accent.IsValid() || !fade.IsValid() {
		panic("schedule: WithColors(out-of-gamut colour)")
	}
	return func(c *config) {
		c.base, c.accent, c.fade = base, accent, fade
	}
}
