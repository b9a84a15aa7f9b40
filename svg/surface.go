package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"github.com/phanxgames/sacred"
)

var _ sacred.Surface = (*Surface)(nil)

// precision is the number of device units per pixel. svgo takes integer
// coordinates, so geometry is scaled up by precision and the document root
// scales it back down.
const precision = 10

// blendCSS maps blend modes to CSS mix-blend-mode values. REPLACE and REMOVE
// have no CSS equivalent and render as normal.
var blendCSS = [...]string{
	sacred.BlendNormal:     "normal",
	sacred.BlendAdd:        "plus-lighter",
	sacred.BlendDarkest:    "darken",
	sacred.BlendLightest:   "lighten",
	sacred.BlendMultiply:   "multiply",
	sacred.BlendScreen:     "screen",
	sacred.BlendReplace:    "normal",
	sacred.BlendRemove:     "normal",
	sacred.BlendExclusion:  "exclusion",
	sacred.BlendDifference: "difference",
	sacred.BlendOverlay:    "overlay",
	sacred.BlendHardLight:  "hard-light",
	sacred.BlendSoftLight:  "soft-light",
	sacred.BlendDodge:      "color-dodge",
	sacred.BlendBurn:       "color-burn",
}

// BlendCSS returns the mix-blend-mode value for m.
func BlendCSS(m sacred.BlendMode) string {
	if int(m) < len(blendCSS) {
		return blendCSS[m]
	}
	return "normal"
}

type style struct {
	fill, stroke     sacred.HSB
	noFill, noStroke bool
	weight           float64
	blend            sacred.BlendMode
	offset           sacred.Vec2
}

// Surface writes sacred drawing calls as SVG elements through svgo. Call
// Begin before drawing and End after.
type Surface struct {
	canvas *svgo.SVG
	st     style
	stack  []style
	xs, ys []int
}

// NewSurface returns a surface writing to w.
func NewSurface(w io.Writer) *Surface {
	return &Surface{
		canvas: svgo.New(w),
		st:     defaultStyle(),
	}
}

func defaultStyle() style {
	return style{fill: sacred.HSBWhite, stroke: sacred.HSBBlack, weight: 1}
}

// Begin opens a width x height document.
func (s *Surface) Begin(width, height int) {
	s.canvas.Start(width, height)
	s.canvas.Gtransform(fmt.Sprintf("scale(%g)", 1.0/precision))
}

// End closes the document.
func (s *Surface) End() {
	s.canvas.Gend()
	s.canvas.End()
}

func (s *Surface) Push() { s.stack = append(s.stack, s.st) }

func (s *Surface) Pop() {
	if n := len(s.stack); n > 0 {
		s.st = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) Translate(dx, dy float64) {
	s.st.offset = s.st.offset.Add(sacred.Vec2{X: dx, Y: dy})
}

func (s *Surface) SetFill(c sacred.HSB)            { s.st.fill, s.st.noFill = c, false }
func (s *Surface) NoFill()                         { s.st.noFill = true }
func (s *Surface) SetStroke(c sacred.HSB)          { s.st.stroke, s.st.noStroke = c, false }
func (s *Surface) NoStroke()                       { s.st.noStroke = true }
func (s *Surface) SetStrokeWeight(px float64)      { s.st.weight = px }
func (s *Surface) StrokeWeight() float64           { return s.st.weight }
func (s *Surface) SetBlendMode(m sacred.BlendMode) { s.st.blend = m }

// Clear is a no-op: a document starts transparent and cannot erase what it
// has already written.
func (s *Surface) Clear() {}

func (s *Surface) DrawRect(x, y, w, h float64) {
	x, y = x+s.st.offset.X, y+s.st.offset.Y
	s.canvas.Rect(scaled(x), scaled(y), scaled(w), scaled(h), s.style(true))
}

func (s *Surface) DrawEllipse(cx, cy, w, h float64) {
	cx, cy = cx+s.st.offset.X, cy+s.st.offset.Y
	s.canvas.Ellipse(scaled(cx), scaled(cy), scaled(w/2), scaled(h/2), s.style(true))
}

func (s *Surface) DrawPolygon(points []sacred.Vec2) {
	if len(points) < 2 {
		return
	}
	s.xs, s.ys = s.xs[:0], s.ys[:0]
	for _, p := range points {
		s.xs = append(s.xs, scaled(p.X+s.st.offset.X))
		s.ys = append(s.ys, scaled(p.Y+s.st.offset.Y))
	}
	s.canvas.Polygon(s.xs, s.ys, s.style(true))
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64) {
	o := s.st.offset
	s.canvas.Line(scaled(x1+o.X), scaled(y1+o.Y), scaled(x2+o.X), scaled(y2+o.Y), s.style(false))
}

// style returns the CSS declarations for the current state. Lines are
// never filled.
func (s *Surface) style(fillable bool) string {
	var b strings.Builder
	if !fillable || s.st.noFill {
		b.WriteString("fill:none")
	} else {
		writePaint(&b, "fill", s.st.fill)
	}
	b.WriteByte(';')
	if s.st.noStroke || s.st.weight <= 0 {
		b.WriteString("stroke:none")
	} else {
		writePaint(&b, "stroke", s.st.stroke)
		b.WriteString(";stroke-width:")
		b.WriteString(strconv.FormatFloat(s.st.weight*precision, 'f', -1, 64))
		b.WriteString(";stroke-linejoin:miter")
	}
	if s.st.blend != sacred.BlendNormal {
		b.WriteString(";mix-blend-mode:")
		b.WriteString(BlendCSS(s.st.blend))
	}
	return b.String()
}

func writePaint(b *strings.Builder, prop string, c sacred.HSB) {
	b.WriteString(prop)
	b.WriteByte(':')
	b.WriteString(c.Hex())
	if op := c.Opacity(); op < 1 {
		b.WriteByte(';')
		b.WriteString(prop)
		b.WriteString("-opacity:")
		b.WriteString(strconv.FormatFloat(op, 'f', 3, 64))
	}
}

func scaled(v float64) int {
	return int(math.Round(v * precision))
}
