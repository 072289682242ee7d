package scene_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hexwave/geometry"
	"github.com/katalvlaran/hexwave/hexgrid"
	"github.com/katalvlaran/hexwave/scene"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := scene.DefaultConfig()
	assert.Equal(t, 4, cfg.GridSize)
	assert.Equal(t, 10.0, cfg.HexagonRadius)
	assert.Equal(t, 1.0, cfg.StrokeWidth)
	assert.Equal(t, 1.5, cfg.CornerRadius)
	assert.Equal(t, time.Second, cfg.TimeUnit)
}

// TestDefaultColors pins the package palette literals.
func TestDefaultColors(t *testing.T) {
	assert.Equal(t, "#e0fbfc", scene.DefaultBackground.Hex())
	assert.Equal(t, "#000000", scene.DefaultStrokeColor.Hex())
	cfg := scene.DefaultConfig()
	assert.Equal(t, scene.DefaultBackground, cfg.Background)
	assert.Equal(t, scene.DefaultStrokeColor, cfg.StrokeColor)
}

// TestNewConfig_CornerFollowsStroke checks the derived corner radius and its override.
func TestNewConfig_CornerFollowsStroke(t *testing.T) {
	cfg := scene.NewConfig(scene.WithStrokeWidth(2))
	assert.Equal(t, 3.0, cfg.CornerRadius)

	cfg = scene.NewConfig(scene.WithCornerRadius(0.25), scene.WithStrokeWidth(2))
	assert.Equal(t, 0.25, cfg.CornerRadius)
}

func TestNewConfig_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { scene.WithGridSize(-1) })
	assert.Panics(t, func() { scene.WithHexagonRadius(0) })
	assert.Panics(t, func() { scene.WithStrokeWidth(-1) })
	assert.Panics(t, func() { scene.WithCornerRadius(-1) })
	assert.Panics(t, func() { scene.WithTimeUnit(0) })
	assert.Panics(t, func() { scene.WithBackground(colorful.Color{R: -1}) })
	assert.Panics(t, func() { scene.WithStrokeColor(colorful.Color{G: 3}) })
	assert.Panics(t, func() {
		scene.WithPalette(colorful.Color{B: 2}, scene.DefaultStrokeColor, scene.DefaultBackground)
	})
}

// TestCompose_Default checks the reference image: 61 cells, 5 schedules and
// the canvas size of the original layout.
func TestCompose_Default(t *testing.T) {
	s, err := scene.Compose(scene.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, s.Cells, 61)
	require.Len(t, s.Schedules, 5)
	assert.Equal(t, 12, s.Duration())
	assert.InDelta(t, 10*17+2/math.Sqrt(3), s.Width, 1e-9)
	assert.InDelta(t, 10*math.Sqrt(3)*11+1, s.Height, 1e-9)
	assert.InDelta(t, s.Width/2, s.Center.X, 1e-12)
	assert.InDelta(t, s.Height/2, s.Center.Y, 1e-12)
	assert.True(t, s.Outline.Closed())
	assert.True(t, s.Outline.Center.AlmostEqual(geometry.Origin, 0))

	for _, c := range s.Cells {
		p := s.Placement(c)
		// every hexagon fits inside the canvas
		assert.Greater(t, p.X-s.Config.HexagonRadius, 0.0)
		assert.Less(t, p.X+s.Config.HexagonRadius, s.Width)
		assert.Greater(t, p.Y-hexgrid.HexagonHeight(s.Config.HexagonRadius)/2, 0.0)
		assert.Less(t, p.Y+hexgrid.HexagonHeight(s.Config.HexagonRadius)/2, s.Height)
		assert.Equal(t, c.Ring, s.ScheduleFor(c).Ring)
	}
}

// TestCompose_GridSizeZero is the single-hexagon scenario.
func TestCompose_GridSizeZero(t *testing.T) {
	s, err := scene.Compose(scene.NewConfig(scene.WithGridSize(0)))
	require.NoError(t, err)
	require.Len(t, s.Cells, 1)
	require.Len(t, s.Schedules, 1)
	assert.Equal(t, 4, s.Duration())
	assert.True(t, s.Placement(s.Cells[0]).AlmostEqual(s.Center, 0))
}

func TestCompose_Errors(t *testing.T) {
	cases := []struct {
		name string
		cfg  scene.Config
		err  error
	}{
		{"CornerTooLarge", scene.NewConfig(scene.WithCornerRadius(5)), geometry.ErrCornerRadiusTooLarge},
		{"StrokeDrivenCornerTooLarge", scene.NewConfig(scene.WithStrokeWidth(4)), geometry.ErrCornerRadiusTooLarge},
		{"NegativeGrid", func() scene.Config { c := scene.DefaultConfig(); c.GridSize = -2; return c }(), scene.ErrInvalidConfig},
		{"ZeroTimeUnit", func() scene.Config { c := scene.DefaultConfig(); c.TimeUnit = 0; return c }(), scene.ErrInvalidConfig},
		{"BaseOutOfGamut", func() scene.Config { c := scene.DefaultConfig(); c.BaseColor = colorful.Color{R: 2}; return c }(), scene.ErrInvalidConfig},
		{"FadeOutOfGamut", func() scene.Config { c := scene.DefaultConfig(); c.FadeColor = colorful.Color{B: -0.5}; return c }(), scene.ErrInvalidConfig},
		{"BackgroundOutOfGamut", func() scene.Config { c := scene.DefaultConfig(); c.Background = colorful.Color{G: 1.5}; return c }(), scene.ErrInvalidConfig},
		{"ZeroRadius", func() scene.Config { c := scene.DefaultConfig(); c.HexagonRadius = 0; return c }(), geometry.ErrInvalidRadius},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Compose(tc.cfg)
			if !errors.Is(err, tc.err) {
				t.Errorf("Compose error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestCompose_Deterministic verifies bit-identical re-runs.
func TestCompose_Deterministic(t *testing.T) {
	cfg := scene.NewConfig(scene.WithGridSize(6), scene.WithHexagonRadius(7.5))
	a, err := scene.Compose(cfg)
	require.NoError(t, err)
	b, err := scene.Compose(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
