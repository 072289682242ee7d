package svgdoc

import (
	"fmt"
	"io"

	"github.com/katalvlaran/hexwave/geometry"
	"github.com/katalvlaran/hexwave/scene"
)

// Ids of the shared definitions.
const (
	HexagonID     = "hexagon"
	HexagonClipID = "hexagon-clip"
)

// RingID returns the id of ring r's animated circle.
func RingID(r int) string {
	return fmt.Sprintf("ring-%d", r)
}

// Build folds s into a Document: the outline, its clip region and one
// animated circle per ring as definitions; per cell, the ring's circle
// clipped to the hexagon followed by the stroked outline.
func Build(s *scene.Scene) (*Document, error) {
	cfg := s.Config
	doc := New()
	doc.SetTitle(fmt.Sprintf("hexwave %d rings", cfg.GridSize))
	doc.SetBackground(cfg.Background)

	defs := []Definition{
		PathDef{
			ID:   HexagonID,
			Data: s.Outline.PathData(),
			Attrs: []string{
				`fill="none"`,
				`stroke="` + cfg.StrokeColor.Hex() + `"`,
				`stroke-width="` + geometry.FormatNumber(cfg.StrokeWidth) + `"`,
			},
		},
		ClipDef{ID: HexagonClipID, Ref: HexagonID},
	}
	for _, sc := range s.Schedules {
		defs = append(defs, AnimatedCircleDef{ID: RingID(sc.Ring), Schedule: sc, Unit: cfg.TimeUnit})
	}
	for _, def := range defs {
		if err := doc.AppendDefinition(def); err != nil {
			return nil, err
		}
	}

	for _, c := range s.Cells {
		p := s.Placement(c)
		if err := doc.AppendInstance(Instance{Ref: RingID(c.Ring), Position: p, ClipRef: HexagonClipID}); err != nil {
			return nil, err
		}
		if err := doc.AppendInstance(Instance{Ref: HexagonID, Position: p}); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Write builds the document for s and serialises it to w.
func Write(w io.Writer, s *scene.Scene) error {
	doc, err := Build(s)
	if err != nil {
		return err
	}
	return doc.Serialize(w, s.Width, s.Height)
}
