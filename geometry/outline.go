// SPDX-License-Identifier: MIT
// Package: hexwave/geometry
//
// outline.go — rounded hexagon outline construction.
//
// Contract:
//   - BuildHexagonOutline validates its parameters and returns sentinel errors;
//     it never panics.
//   - The same Outline serves as a stroked shape and as a filled clip region.
//   - Determinism: identical inputs produce bit-identical outlines.
//
// Construction:
//   - For vertex n two supporting points are derived from one formula,
//     cornerPoint(n, k): k=4 walks toward the previous vertex (straight-line
//     endpoint), k=2 toward the next one (rounded-corner endpoint).
//   - Path: M straight[0], then for n = 0..5: A → rounded[n], L → straight[n+1 mod 6]; Z.

package geometry

import (
	"math"
	"strings"
)

const methodBuildHexagonOutline = "BuildHexagonOutline"

// HexagonSides is the number of corners (and edges) of a hexagon.
const HexagonSides = 6

// hexagonAngle is the angle between consecutive vertices (60°).
const hexagonAngle = 2 * math.Pi / HexagonSides

// Direction steps used by cornerPoint, in multiples of hexagonAngle.
const (
	towardPrevious = 4 // straight-line endpoint
	towardNext     = 2 // rounded-corner endpoint
)

// cornerBoundFactor is sin(π/6): the corner radius must stay strictly below
// radius·cornerBoundFactor.
const cornerBoundFactor = 0.5

// Line is a straight segment.
type Line struct {
	From, To Point
}

// Arc is an SVG-style endpoint arc with equal radii on both axes and no
// x-axis rotation.
type Arc struct {
	From, To Point
	Radius   float64
	LargeArc bool
	Sweep    bool
}

// Corner is one rounded vertex followed by the edge leading to the next vertex.
type Corner struct {
	Vertex Point
	Arc    Arc
	Line   Line
}

// Outline is the closed path of one rounded hexagon.
type Outline struct {
	Center       Point
	Radius       float64
	CornerRadius float64
	Start        Point
	Corners      [HexagonSides]Corner
}

// MaxCornerRadius returns the exclusive upper bound for a corner-rounding
// radius on a hexagon of the given vertex radius.
func MaxCornerRadius(radius float64) float64 {
	return radius * cornerBoundFactor
}

// ValidateParameters checks radius and cornerRadius against the outline
// preconditions and returns the matching sentinel error, or nil.
func ValidateParameters(radius, cornerRadius float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return geometryErrorf(methodBuildHexagonOutline, ErrInvalidRadius, "radius=%g", radius)
	}
	if cornerRadius < 0 || math.IsNaN(cornerRadius) {
		return geometryErrorf(methodBuildHexagonOutline, ErrNegativeCornerRadius, "cornerRadius=%g", cornerRadius)
	}
	if cornerRadius >= MaxCornerRadius(radius) {
		return geometryErrorf(methodBuildHexagonOutline, ErrCornerRadiusTooLarge,
			"cornerRadius=%g, limit=%g", cornerRadius, MaxCornerRadius(radius))
	}
	return nil
}

// BuildHexagonOutline returns the rounded hexagon of vertex radius radius
// centred on center. cornerRadius = 0 yields sharp corners (zero-length arcs).
//
// Errors: ErrInvalidRadius, ErrNegativeCornerRadius, ErrCornerRadiusTooLarge.
// Complexity: O(1).
func BuildHexagonOutline(center Point, radius, cornerRadius float64) (Outline, error) {
	if err := ValidateParameters(radius, cornerRadius); err != nil {
		return Outline{}, err
	}

	var straight, rounded [HexagonSides]Point
	for n := 0; n < HexagonSides; n++ {
		straight[n] = cornerPoint(center, radius, cornerRadius, n, towardPrevious)
		rounded[n] = cornerPoint(center, radius, cornerRadius, n, towardNext)
	}

	o := Outline{
		Center:       center,
		Radius:       radius,
		CornerRadius: cornerRadius,
		Start:        straight[0],
	}
	for n := 0; n < HexagonSides; n++ {
		next := (n + 1) % HexagonSides
		o.Corners[n] = Corner{
			Vertex: vertex(center, radius, n),
			Arc: Arc{
				From:   straight[n],
				To:     rounded[n],
				Radius: cornerRadius,
				Sweep:  true,
			},
			Line: Line{From: rounded[n], To: straight[next]},
		}
	}

	return o, nil
}

// vertex returns the n-th sharp vertex of the hexagon.
func vertex(center Point, radius float64, n int) Point {
	return center.Add(Polar(radius, float64(n)*hexagonAngle))
}

// cornerPoint offsets vertex n by cornerRadius·cos60° along direction (n+k)·60°.
func cornerPoint(center Point, radius, cornerRadius float64, n, k int) Point {
	inset := cornerRadius * math.Cos(hexagonAngle)
	return vertex(center, radius, n).Add(Polar(inset, float64(n+k)*hexagonAngle))
}

// End returns the point the path reaches before the closing command.
func (o Outline) End() Point {
	return o.Corners[HexagonSides-1].Line.To
}

// Closed reports whether the path returns to its start point.
func (o Outline) Closed() bool {
	return o.End().AlmostEqual(o.Start, Epsilon)
}

// Vertices returns the six sharp vertices the corners are rounded from.
func (o Outline) Vertices() [HexagonSides]Point {
	var vs [HexagonSides]Point
	for i, c := range o.Corners {
		vs[i] = c.Vertex
	}
	return vs
}

// Translate returns a copy of o shifted by d.
func (o Outline) Translate(d Point) Outline {
	t := o
	t.Center = o.Center.Add(d)
	t.Start = o.Start.Add(d)
	for i, c := range o.Corners {
		t.Corners[i] = Corner{
			Vertex: c.Vertex.Add(d),
			Arc: Arc{
				From:     c.Arc.From.Add(d),
				To:       c.Arc.To.Add(d),
				Radius:   c.Arc.Radius,
				LargeArc: c.Arc.LargeArc,
				Sweep:    c.Arc.Sweep,
			},
			Line: Line{From: c.Line.From.Add(d), To: c.Line.To.Add(d)},
		}
	}
	return t
}

// PathData renders the outline as an SVG path "d" attribute:
//
//	M sx,sy A r,r 0 0,1 x,y L x,y … Z
func (o Outline) PathData() string {
	var sb strings.Builder
	sb.WriteString("M")
	sb.WriteString(formatPair(o.Start))
	for _, c := range o.Corners {
		r := FormatNumber(c.Arc.Radius)
		sb.WriteString(" A")
		sb.WriteString(r + "," + r)
		sb.WriteString(" 0 ")
		sb.WriteString(flag(c.Arc.LargeArc) + "," + flag(c.Arc.Sweep) + " ")
		sb.WriteString(formatPair(c.Arc.To))
		sb.WriteString(" L")
		sb.WriteString(formatPair(c.Line.To))
	}
	sb.WriteString(" Z")
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
