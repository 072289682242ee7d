// SPDX-License-Identifier: MIT
// Package: hexwave/render/svgdoc
//
// document.go — definition/instance collection and one-pass serialisation.
//
// Contract:
//   - Definitions are emitted in insertion order inside <defs>; instances in
//     insertion order after the optional background.
//   - Every instance must reference ids that are already defined.
//   - Serialize reports the first write error of the underlying writer.

package svgdoc

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hexwave/geometry"
)

const (
	methodAppendDefinition = "AppendDefinition"
	methodAppendInstance   = "AppendInstance"
	methodSerialize        = "Serialize"
)

// Document is an SVG image under construction.
type Document struct {
	title      string
	background *colorful.Color
	defs       []Definition
	ids        map[string]bool
	instances  []Instance
}

// New returns an empty document.
func New() *Document {
	return &Document{ids: make(map[string]bool)}
}

// SetTitle sets the <title> element.
func (d *Document) SetTitle(title string) { d.title = title }

// SetBackground fills the whole canvas with c beneath every instance.
func (d *Document) SetBackground(c colorful.Color) { d.background = &c }

// AppendDefinition registers a reusable shape.
//
// Errors: ErrEmptyID, ErrDuplicateDefinition, ErrUnknownReference (a
// ClipDef naming an undefined shape).
func (d *Document) AppendDefinition(def Definition) error {
	id := def.DefID()
	if id == "" {
		return fmt.Errorf("%s: %w", methodAppendDefinition, ErrEmptyID)
	}
	if d.ids[id] {
		return fmt.Errorf("%s: id %q: %w", methodAppendDefinition, id, ErrDuplicateDefinition)
	}
	if c, ok := def.(ClipDef); ok && !d.ids[c.Ref] {
		return fmt.Errorf("%s: clip %q -> %q: %w", methodAppendDefinition, id, c.Ref, ErrUnknownReference)
	}
	d.ids[id] = true
	d.defs = append(d.defs, def)
	return nil
}

// AppendInstance places a previously defined shape.
//
// Errors: ErrUnknownReference.
func (d *Document) AppendInstance(in Instance) error {
	if !d.ids[in.Ref] {
		return fmt.Errorf("%s: ref %q: %w", methodAppendInstance, in.Ref, ErrUnknownReference)
	}
	if in.ClipRef != "" && !d.ids[in.ClipRef] {
		return fmt.Errorf("%s: clip %q: %w", methodAppendInstance, in.ClipRef, ErrUnknownReference)
	}
	d.instances = append(d.instances, in)
	return nil
}

// Len returns the number of definitions and instances.
func (d *Document) Len() (defs, instances int) {
	return len(d.defs), len(d.instances)
}

// Serialize writes the document with a viewBox of viewWidth×viewHeight.
func (d *Document) Serialize(w io.Writer, viewWidth, viewHeight float64) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	pw, ph := int(math.Ceil(viewWidth)), int(math.Ceil(viewHeight))
	canvas.Start(pw, ph, fmt.Sprintf(`viewBox="0 0 %s %s"`,
		geometry.FormatNumber(viewWidth), geometry.FormatNumber(viewHeight)))
	if d.title != "" {
		canvas.Title(d.title)
	}

	canvas.Def()
	for _, def := range d.defs {
		def.emit(canvas)
	}
	canvas.DefEnd()

	if d.background != nil {
		canvas.Rect(0, 0, pw, ph, `fill="`+d.background.Hex()+`"`)
	}
	for _, in := range d.instances {
		canvas.Use(0, 0, "#"+in.Ref, in.attrs()...)
	}
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodSerialize, err)
	}
	return nil
}
