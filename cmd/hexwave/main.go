// Package main generates the hexwave image: a centred hexagonal grid whose
// rings fill outward one after another, settle on an accent colour and fade
// back together, repeating indefinitely.
//
// Output (relative to the working directory):
//
//	animation_frames/hexagons.svg   animated SVG
//	animation_frames/frame_NNN.png  still frames of one cycle
//
// All parameters are constants; there are no flags or environment variables.
// Any failure is fatal.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hexwave/render/raster"
	"github.com/katalvlaran/hexwave/render/svgdoc"
	"github.com/katalvlaran/hexwave/scene"
)

const (
	outputDir   = "animation_frames"
	svgFileName = "hexagons.svg"

	gridSize      = 4 // 0 is a single hexagon; each step adds a ring
	hexagonRadius = 10.0
	strokeWidth   = 1.0

	framesPerUnit = 4
	frameScale    = 4.0
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hexwave: ")
	start := time.Now()

	cfg := scene.NewConfig(
		scene.WithGridSize(gridSize),
		scene.WithHexagonRadius(hexagonRadius),
		scene.WithStrokeWidth(strokeWidth),
	)
	s, err := scene.Compose(cfg)
	if err != nil {
		log.Fatalf("compose scene: %v", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", outputDir, err)
	}

	svgPath := filepath.Join(outputDir, svgFileName)
	if err := writeSVG(svgPath, s); err != nil {
		log.Fatalf("problem saving SVG file to %s: %v", svgPath, err)
	}
	log.Printf("wrote %s", svgPath)

	r, err := raster.New(s, raster.WithScale(frameScale))
	if err != nil {
		log.Fatalf("raster renderer: %v", err)
	}
	frames, err := r.WriteFrames(context.Background(), outputDir, s.Duration()*framesPerUnit)
	if err != nil {
		log.Fatalf("write frames: %v", err)
	}
	log.Printf("wrote %d frames to %s", len(frames), outputDir)

	fmt.Println(summary(s, svgPath, len(frames), time.Since(start)))
}

func writeSVG(path string, s *scene.Scene) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return svgdoc.Write(f, s)
}

func summary(s *scene.Scene, svgPath string, frames int, took time.Duration) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("hexwave"),
		row("rings", fmt.Sprintf("%d", s.Config.GridSize)),
		row("hexagons", fmt.Sprintf("%d", len(s.Cells))),
		row("cycle", (time.Duration(s.Duration())*s.Config.TimeUnit).String()),
		row("canvas", fmt.Sprintf("%.2f × %.2f", s.Width, s.Height)),
		row("svg", svgPath),
		row("frames", fmt.Sprintf("%d", frames)),
		row("took", took.Round(time.Millisecond).String()),
	)
}
