package svgdoc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/hexwave/geometry"
	"github.com/katalvlaran/hexwave/schedule"
)

// Definition is a reusable shape registered in the document's <defs>.
type Definition interface {
	DefID() string
	emit(canvas *svg.SVG)
}

// PathDef is a named path. Attrs are raw `name="value"` pairs.
type PathDef struct {
	ID    string
	Data  string
	Attrs []string
}

func (d PathDef) DefID() string { return d.ID }

func (d PathDef) emit(canvas *svg.SVG) {
	canvas.Path(d.Data, append([]string{idAttr(d.ID)}, d.Attrs...)...)
}

// ClipDef turns an existing definition into a clip region.
type ClipDef struct {
	ID  string
	Ref string
}

func (d ClipDef) DefID() string { return d.ID }

func (d ClipDef) emit(canvas *svg.SVG) {
	canvas.ClipPath(idAttr(d.ID))
	canvas.Use(0, 0, "#"+d.Ref)
	canvas.ClipEnd()
}

// AnimatedCircleDef is a circle centred on the origin whose radius and fill
// follow a ring schedule, repeating indefinitely. Unit is the wall-clock
// length of one schedule time unit.
type AnimatedCircleDef struct {
	ID       string
	Schedule schedule.Schedule
	Unit     time.Duration
}

func (d AnimatedCircleDef) DefID() string { return d.ID }

// svgo has no element with animation children, so the circle is written to
// the canvas writer directly.
func (d AnimatedCircleDef) emit(canvas *svg.SVG) {
	s := d.Schedule
	dur := geometry.FormatNumber(s.Period(d.Unit).Seconds()) + "s"
	kd := keyTimeDecimals(s.Duration)
	fmt.Fprintf(canvas.Writer, "<circle %s cx=\"0\" cy=\"0\" r=\"%s\" fill=\"%s\">\n",
		idAttr(d.ID), geometry.FormatNumber(s.Radius.Values[0]), s.Color.Values[0].Hex())
	fmt.Fprintf(canvas.Writer, "<animate attributeName=\"r\" values=\"%s\" keyTimes=\"%s\" dur=\"%s\" calcMode=\"linear\" repeatCount=\"indefinite\"/>\n",
		joinNumbers(s.Radius.Values), joinKeyTimes(s.Radius.KeyTimes, kd), dur)
	fmt.Fprintf(canvas.Writer, "<animate attributeName=\"fill\" values=\"%s\" keyTimes=\"%s\" dur=\"%s\" calcMode=\"linear\" repeatCount=\"indefinite\"/>\n",
		joinColors(s.Color.Values), joinKeyTimes(s.Color.KeyTimes, kd), dur)
	fmt.Fprintln(canvas.Writer, "</circle>")
}

// Instance places definition Ref at Position, optionally clipped by the
// clip definition ClipRef.
type Instance struct {
	Ref      string
	Position geometry.Point
	ClipRef  string
}

func (in Instance) attrs() []string {
	a := []string{fmt.Sprintf(`transform="translate(%s,%s)"`,
		geometry.FormatNumber(in.Position.X), geometry.FormatNumber(in.Position.Y))}
	if in.ClipRef != "" {
		a = append(a, fmt.Sprintf(`clip-path="url(#%s)"`, in.ClipRef))
	}
	return a
}

func idAttr(id string) string {
	return `id="` + id + `"`
}

func joinNumbers(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = geometry.FormatNumber(v)
	}
	return strings.Join(parts, ";")
}

// keyTimeDecimals keeps three more digits than the 1/duration slot width, so
// adjacent ring windows never serialise to the same key time.
func keyTimeDecimals(duration int) int {
	return len(strconv.Itoa(duration)) + 3
}

func joinKeyTimes(kts []float64, decimals int) string {
	parts := make([]string, len(kts))
	for i, kt := range kts {
		parts[i] = geometry.FormatFixed(kt, decimals)
	}
	return strings.Join(parts, ";")
}

func joinColors(cs []colorful.Color) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Hex()
	}
	return strings.Join(parts, ";")
}
