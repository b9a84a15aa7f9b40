package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/sacred"
)

// --- Hit shapes ---

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in screen coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Widgets ---

// Widget identifies an overlay control.
type Widget uint8

const (
	WidgetNone       Widget = iota // canvas
	WidgetSelector                 // shape selector strip, outside any icon
	WidgetShape                    // one shape icon; Hit.Index is its ShapeKinds index
	WidgetRegenerate               // regenerate button
	WidgetLabel                    // pattern name label
	WidgetBlend                    // blend mode selector
)

// Hit is the result of an overlay hit test.
type Hit struct {
	Widget Widget
	Index  int
}

// Overlay metrics, in pixels. The debug font is 6x16.
const (
	overlayMargin = 10
	overlayGap    = 5
	iconSize      = 28
	glyphW        = 6
	glyphH        = 16
	buttonPadX    = 20
	buttonPadY    = 10
)

const (
	selectorText   = "SELECT SHAPE"
	regenerateText = "REGENERATE"
	blendText      = "BLEND MODE"
)

// Overlay lays out and draws the host controls: the shape selector strip
// (top-left), the pattern label and regenerate button (bottom-right) and,
// when enabled, the blend mode selector (top-right). Presses over any of
// them are reported so they never reach the canvas.
type Overlay struct {
	showSelector bool
	showBlend    bool

	selector HitRect
	selLabel HitRect
	icons    []HitCircle
	label    HitRect
	regen    HitRect
	blend    HitRect

	shapes []sacred.ShapeKind
}

// NewOverlay returns the overlay for variant v. The growth variant gets
// only the regenerate button, since its four cells have no single active
// shape or pattern. The blend variant adds the blend mode selector.
func NewOverlay(v sacred.Variant) *Overlay {
	return &Overlay{
		showSelector: v != sacred.VariantGrowth,
		showBlend:    v == sacred.VariantBlend,
		shapes:       sacred.ShapeKinds(),
	}
}

// Layout positions the widgets for a width x height screen. labelText is
// the pattern label; its box is sized to fit.
func (o *Overlay) Layout(width, height float64, labelText string) {
	m := float64(overlayMargin)

	o.selLabel, o.selector, o.label = HitRect{}, HitRect{}, HitRect{}
	o.icons = o.icons[:0]

	bw := float64(len(regenerateText)*glyphW + 2*buttonPadX)
	bh := float64(glyphH + 2*buttonPadY)
	o.regen = HitRect{X: width - m - bw, Y: height - m - bh, Width: bw, Height: bh}

	o.blend = HitRect{}
	if o.showBlend {
		w := float64(max(len(blendText), 8)*glyphW + buttonPadX)
		o.blend = HitRect{X: width - m - w, Y: m, Width: w, Height: 2*glyphH + buttonPadY}
	}

	if !o.showSelector {
		return
	}
	o.selLabel = HitRect{X: m, Y: m, Width: float64(len(selectorText)*glyphW + buttonPadX/2), Height: iconSize}
	x := o.selLabel.X + o.selLabel.Width + overlayGap
	for range o.shapes {
		o.icons = append(o.icons, HitCircle{CenterX: x + iconSize/2, CenterY: m + iconSize/2, Radius: iconSize / 2})
		x += iconSize + overlayGap
	}
	o.selector = HitRect{X: m, Y: m, Width: x - m - overlayGap, Height: iconSize}

	if labelText != "" {
		lw := float64(len(labelText)*glyphW + buttonPadX)
		lh := float64(glyphH + buttonPadY)
		o.label = HitRect{X: width - m - lw, Y: o.regen.Y - m - lh, Width: lw, Height: lh}
	}
}

// HitTest reports the widget under (x, y).
func (o *Overlay) HitTest(x, y float64) Hit {
	for i, c := range o.icons {
		if c.Contains(x, y) {
			return Hit{Widget: WidgetShape, Index: i}
		}
	}
	switch {
	case o.showSelector && o.selector.Contains(x, y):
		return Hit{Widget: WidgetSelector}
	case o.regen.Contains(x, y):
		return Hit{Widget: WidgetRegenerate}
	case o.label.Width > 0 && o.label.Contains(x, y):
		return Hit{Widget: WidgetLabel}
	case o.showBlend && o.blend.Contains(x, y):
		return Hit{Widget: WidgetBlend}
	}
	return Hit{}
}

// Contains reports whether (x, y) is over any widget.
func (o *Overlay) Contains(x, y float64) bool {
	return o.HitTest(x, y).Widget != WidgetNone
}

// Shape returns the shape kind of icon i.
func (o *Overlay) Shape(i int) (sacred.ShapeKind, bool) {
	if i < 0 || i >= len(o.shapes) {
		return sacred.Ellipse, false
	}
	return o.shapes[i], true
}

var (
	panelColor  = sacred.HSBBlack.WithAlpha(70)
	buttonColor = sacred.HSBBlack
	iconStroke  = sacred.HSBBlack
)

// Draw paints the widgets through s onto dst. active is highlighted in the
// selector; label and blend are the current pattern label and blend mode.
func (o *Overlay) Draw(dst *ebiten.Image, s *Surface, active sacred.ShapeKind, label string, blend sacred.BlendMode) {
	s.Push()
	defer s.Pop()
	s.SetBlendMode(sacred.BlendNormal)
	s.NoStroke()

	if o.showSelector {
		s.SetFill(panelColor)
		drawRect(s, o.selLabel)
		ebitenutil.DebugPrintAt(dst, selectorText, int(o.selLabel.X)+buttonPadX/4, int(o.selLabel.Y)+(iconSize-glyphH)/2)
	}

	for i, c := range o.icons {
		kind := o.shapes[i]
		if kind == active {
			s.NoStroke()
			s.SetFill(sacred.HSBWhite)
			drawRect(s, HitRect{X: c.CenterX - c.Radius, Y: c.CenterY - c.Radius, Width: 2 * c.Radius, Height: 2 * c.Radius})
		}
		s.NoFill()
		s.SetStroke(iconStroke)
		s.SetStrokeWeight(2)
		// Icon glyphs are always valid; ignore the error.
		_ = sacred.DrawShape(s, kind, sacred.Instance{Center: sacred.Vec2{X: c.CenterX, Y: c.CenterY}, Size: c.Radius * 0.6})
	}
	s.NoStroke()

	if o.label.Width > 0 {
		s.SetFill(panelColor)
		drawRect(s, o.label)
		ebitenutil.DebugPrintAt(dst, label, int(o.label.X)+buttonPadX/2, int(o.label.Y)+buttonPadY/2)
	}

	s.SetFill(buttonColor)
	drawRect(s, o.regen)
	ebitenutil.DebugPrintAt(dst, regenerateText, int(o.regen.X)+buttonPadX, int(o.regen.Y)+buttonPadY)

	if o.showBlend {
		s.SetFill(panelColor)
		drawRect(s, o.blend)
		ebitenutil.DebugPrintAt(dst, blendText, int(o.blend.X)+buttonPadX/2, int(o.blend.Y)+buttonPadY/2)
		ebitenutil.DebugPrintAt(dst, blend.String(), int(o.blend.X)+buttonPadX/2, int(o.blend.Y)+buttonPadY/2+glyphH)
	}
}

func drawRect(s sacred.Surface, r HitRect) {
	s.DrawRect(r.X, r.Y, r.Width, r.Height)
}
