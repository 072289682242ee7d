// SPDX-License-Identifier: MIT
// Package: hexwave/render/raster
//
// raster.go — PNG frames of a scene at arbitrary key times.
//
// Contract:
//   - Frame is safe for concurrent use: every call owns its gg context and
//     font face; the Scene is only read.
//   - Key times outside [0,1] are clamped by the schedule tracks.

package raster

import (
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hexwave/geometry"
	"github.com/katalvlaran/hexwave/scene"
)

const methodWriteFrames = "WriteFrames"

// Renderer draws frames of one Scene.
type Renderer struct {
	scene     *scene.Scene
	scale     float64
	labelSize float64
	font      *truetype.Font
}

// New returns a Renderer for s. The Go Mono font is parsed only when labels
// are requested.
func New(s *scene.Scene, opts ...Option) (*Renderer, error) {
	r := &Renderer{scene: s, scale: DefaultScale}
	for _, opt := range opts {
		opt(r)
	}
	if r.labelSize > 0 {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("raster: parse label font: %w", err)
		}
		r.font = f
	}
	return r, nil
}

// Size returns the frame size in pixels.
func (r *Renderer) Size() (width, height int) {
	return int(math.Ceil(r.scene.Width * r.scale)), int(math.Ceil(r.scene.Height * r.scale))
}

// Frame renders the scene at key time t ∈ [0,1].
func (r *Renderer) Frame(t float64) image.Image {
	return r.render(t).Image()
}

// FrameAt renders the scene after elapsed wall-clock time, wrapping around
// the cycle.
func (r *Renderer) FrameAt(elapsed time.Duration) image.Image {
	return r.Frame(r.scene.Schedules[0].Phase(elapsed, r.scene.Config.TimeUnit))
}

func (r *Renderer) render(t float64) *gg.Context {
	s := r.scene
	cfg := s.Config
	w, h := r.Size()

	dc := gg.NewContext(w, h)
	dc.SetColor(cfg.Background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	for _, c := range s.Cells {
		sched := s.ScheduleFor(c)
		radius := sched.RadiusAt(t)
		if radius <= 0 {
			continue
		}
		p := s.Placement(c)
		traceOutline(dc, s.Outline.Translate(p))
		dc.Clip()
		dc.DrawCircle(p.X, p.Y, radius)
		dc.SetColor(sched.ColorAt(t))
		dc.Fill()
		dc.ResetClip()
	}

	if cfg.StrokeWidth > 0 {
		// gg strokes in device pixels
		dc.SetLineWidth(cfg.StrokeWidth * r.scale)
		dc.SetColor(cfg.StrokeColor)
		for _, c := range s.Cells {
			traceOutline(dc, s.Outline.Translate(s.Placement(c)))
			dc.Stroke()
		}
	}

	if r.font != nil {
		face := truetype.NewFace(r.font, &truetype.Options{Size: r.labelSize * r.scale, Hinting: font.HintingFull})
		defer face.Close()
		dc.SetFontFace(face)
		dc.SetColor(cfg.StrokeColor)
		for _, c := range s.Cells {
			p := s.Placement(c)
			dc.DrawStringAnchored(strconv.Itoa(c.Ring), p.X, p.Y, 0.5, 0.5)
		}
	}
	return dc
}

// traceOutline appends o to the current path of dc, converting each
// endpoint arc to gg's centre form.
func traceOutline(dc *gg.Context, o geometry.Outline) {
	dc.MoveTo(o.Start.X, o.Start.Y)
	for _, c := range o.Corners {
		a := c.Arc
		if sweep := a.SweepAngle(); sweep != 0 {
			ctr := a.Center()
			start := a.StartAngle()
			dc.DrawArc(ctr.X, ctr.Y, a.EffectiveRadius(), start, start+sweep)
		} else {
			dc.LineTo(a.To.X, a.To.Y)
		}
		dc.LineTo(c.Line.To.X, c.Line.To.Y)
	}
	dc.ClosePath()
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%03d.png", i)
}

// WriteFrames renders count evenly spaced frames of one cycle into dir,
// creating it if needed, and returns the written paths in frame order.
// Frames are rendered concurrently; the first failure or ctx cancellation
// stops the remaining work, and the frames written by this call are removed
// before the error is returned. The directory itself is left in place.
//
// Errors: ErrFrameCount, ctx.Err(), file-system errors.
func (r *Renderer) WriteFrames(ctx context.Context, dir string, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodWriteFrames, count, ErrFrameCount)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWriteFrames, err)
	}

	paths := make([]string, count)
	written := make([]bool, count) // one writer per index
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < count; i++ {
		paths[i] = filepath.Join(dir, FrameName(i))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := float64(i) / float64(count)
			if err := r.render(t).SavePNG(paths[i]); err != nil {
				return fmt.Errorf("%s: frame %d: %w", methodWriteFrames, i, err)
			}
			written[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for i, ok := range written {
			if ok {
				_ = os.Remove(paths[i])
			}
		}
		return nil, err
	}
	return paths, nil
}
