// SPDX-License-Identifier: MIT
// Package: hexwave/schedule
//
// schedule.go — per-ring keyframe tracks.
//
// Contract:
//   - Build is pure: identical inputs yield identical schedules.
//   - Key times are non-decreasing, start at 0 and end at 1 for every track.
//   - startGrowing(r) < startGrowing(r+1) for every ring r.
//
// Complexity: O(gridSize) time and memory; each track has a fixed length.

package schedule

import (
	"fmt"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const methodBuild = "Build"

// Time units per ring (growth + colour settle) and trailing units reserved
// for the final fade.
const (
	unitsPerRing  = 2
	trailingUnits = 2
)

// Duration returns the cycle length, in time units, for a grid of the given
// size: 2·(gridSize+1) + 2.
func Duration(gridSize int) int {
	return (gridSize+1)*unitsPerRing + trailingUnits
}

// Track is one animated attribute: Values[i] holds at KeyTimes[i].
type Track[T any] struct {
	KeyTimes []float64
	Values   []T
}

// Len returns the number of keyframes.
func (tr Track[T]) Len() int { return len(tr.KeyTimes) }

// Sample interpolates the track at key time t with lerp. t is clamped to
// [0,1]; zero-length segments (repeated key times) are stepped over. An
// empty track samples to the zero T.
func (tr Track[T]) Sample(t float64, lerp func(a, b T, f float64) T) T {
	n := min(len(tr.KeyTimes), len(tr.Values))
	if n == 0 {
		var zero T
		return zero
	}
	if t <= tr.KeyTimes[0] {
		return tr.Values[0]
	}
	for i := 0; i+1 < n; i++ {
		lo, hi := tr.KeyTimes[i], tr.KeyTimes[i+1]
		if t >= lo && t < hi {
			return lerp(tr.Values[i], tr.Values[i+1], (t-lo)/(hi-lo))
		}
	}
	return tr.Values[n-1]
}

// Window holds the four ring-specific instants of a schedule, as key times.
type Window struct {
	StartGrowing    float64
	StopGrowing     float64
	StopColorChange float64
	StartFading     float64
}

// Schedule is the repeating animation of one ring.
type Schedule struct {
	Ring     int
	Duration int
	Window   Window
	Radius   Track[float64]
	Color    Track[colorful.Color]
}

// Build returns one schedule per ring, indexed by ring, for a grid of the
// given size. gridSize 0 yields a single schedule for the centre cell.
//
// Errors: ErrNegativeGridSize.
func Build(gridSize int, opts ...Option) ([]Schedule, error) {
	if gridSize < 0 {
		return nil, fmt.Errorf("%s: gridSize=%d: %w", methodBuild, gridSize, ErrNegativeGridSize)
	}
	cfg := newConfig(opts...)
	d := Duration(gridSize)

	out := make([]Schedule, gridSize+1)
	for r := range out {
		out[r] = buildRing(r, d, cfg)
	}
	return out, nil
}

// RingWindow returns the key-time window of ring r in a cycle of d units.
func RingWindow(r, d int) Window {
	unit := 1 / float64(d)
	start := float64(unitsPerRing*r) / float64(d)
	return Window{
		StartGrowing:    start,
		StopGrowing:     start + unit,
		StopColorChange: start + 2*unit,
		StartFading:     float64(d-1) / float64(d),
	}
}

func buildRing(r, d int, cfg config) Schedule {
	w := RingWindow(r, d)
	return Schedule{
		Ring:     r,
		Duration: d,
		Window:   w,
		Radius: Track[float64]{
			KeyTimes: []float64{0, w.StartGrowing, w.StopGrowing, 1},
			Values:   []float64{0, 0, cfg.hexagonRadius, cfg.hexagonRadius},
		},
		Color: Track[colorful.Color]{
			KeyTimes: []float64{0, w.StartGrowing, w.StopGrowing, w.StopColorChange, w.StartFading, 1},
			Values:   []colorful.Color{cfg.base, cfg.base, cfg.base, cfg.accent, cfg.accent, cfg.fade},
		},
	}
}

// RadiusAt returns the circle radius at key time t.
func (s Schedule) RadiusAt(t float64) float64 {
	return s.Radius.Sample(t, lerpFloat)
}

// ColorAt returns the fill colour at key time t, blended in sRGB as SVG
// renderers interpolate colours.
func (s Schedule) ColorAt(t float64) colorful.Color {
	return s.Color.Sample(t, func(a, b colorful.Color, f float64) colorful.Color {
		return a.BlendRgb(b, f)
	})
}

// Growing reports whether the ring's circle is expanding at key time t.
func (s Schedule) Growing(t float64) bool {
	return t >= s.Window.StartGrowing && t < s.Window.StopGrowing
}

// Period returns the wall-clock length of one cycle when a time unit lasts unit.
func (s Schedule) Period(unit time.Duration) time.Duration {
	return time.Duration(s.Duration) * unit
}

// Phase maps elapsed wall-clock time onto a key time in [0,1), wrapping
// around every period.
func (s Schedule) Phase(elapsed, unit time.Duration) float64 {
	p := float64(s.Period(unit))
	if p <= 0 {
		return 0
	}
	f := math.Mod(float64(elapsed), p) / p
	if f < 0 {
		f++
	}
	return f
}

func lerpFloat(a, b, f float64) float64 {
	return a + (b-a)*f
}
