package sacred

// LayoutMode selects how the canvas is split into cells.
type LayoutMode uint8

const (
	LayoutQuad LayoutMode = iota // 2x2, or one row of 4 on short landscape canvases
	LayoutPair                   // two cells, stacked when portrait
	LayoutGrid                   // fixed 2x2 with alternate-colour cells
)

// Single-row thresholds for LayoutQuad.
const (
	SingleRowMinAspect = 1.5
	SingleRowMaxHeight = 500
)

// CellDescriptor describes one cell of a frame. It is derived from the
// canvas size and the current snapshot every frame and never stored.
type CellDescriptor struct {
	Rect         Rect
	Background   HSB
	StrokeHue    float64
	Tinted       bool
	PatternIndex int
}

// tint and shade backgrounds for the quad layout.
func tintBG(h float64) HSB  { return NewHSB(h, 20, 100) }
func shadeBG(h float64) HSB { return NewHSB(h, 100, 20) }

// SingleRow reports whether a LayoutQuad canvas of the given size uses the
// single-row arrangement.
func SingleRow(width, height float64) bool {
	return height > 0 && width/height > SingleRowMinAspect && height < SingleRowMaxHeight
}

// LayoutCells splits a width x height canvas into cells for mode. alt is the
// alternate background used by LayoutGrid and ignored otherwise.
func LayoutCells(mode LayoutMode, width, height float64, gen GenerationState, alt HSB) []CellDescriptor {
	base, comp := gen.BaseHue, gen.ComplementaryHue
	switch mode {
	case LayoutPair:
		if height > width {
			ch := height / 2
			return []CellDescriptor{
				{Rect: Rect{0, 0, width, ch}, Background: NewHSB(base, 100, 100), StrokeHue: comp, PatternIndex: 0},
				{Rect: Rect{0, ch, width, ch}, Background: NewHSB(comp, 100, 100), StrokeHue: base, PatternIndex: 0},
			}
		}
		cw := width / 2
		return []CellDescriptor{
			{Rect: Rect{0, 0, cw, height}, Background: NewHSB(base, 100, 100), StrokeHue: comp, PatternIndex: 0},
			{Rect: Rect{cw, 0, cw, height}, Background: NewHSB(comp, 100, 100), StrokeHue: base, PatternIndex: 0},
		}

	case LayoutGrid:
		cw, ch := width/2, height/2
		return []CellDescriptor{
			{Rect: Rect{0, 0, cw, ch}, Background: NewHSB(base, 100, 100), StrokeHue: comp},
			{Rect: Rect{cw, 0, cw, ch}, Background: alt, StrokeHue: base},
			{Rect: Rect{0, ch, cw, ch}, Background: alt, StrokeHue: comp},
			{Rect: Rect{cw, ch, cw, ch}, Background: NewHSB(comp, 100, 100), StrokeHue: base},
		}
	}

	if SingleRow(width, height) {
		cw := width / 4
		return []CellDescriptor{
			{Rect: Rect{0, 0, cw, height}, Background: tintBG(comp), StrokeHue: comp, Tinted: true, PatternIndex: 0},
			{Rect: Rect{cw, 0, cw, height}, Background: shadeBG(comp), StrokeHue: comp, Tinted: false, PatternIndex: 1},
			{Rect: Rect{cw * 2, 0, cw, height}, Background: tintBG(base), StrokeHue: base, Tinted: true, PatternIndex: 2},
			{Rect: Rect{cw * 3, 0, cw, height}, Background: shadeBG(base), StrokeHue: base, Tinted: false, PatternIndex: 3},
		}
	}
	cw, ch := width/2, height/2
	return []CellDescriptor{
		{Rect: Rect{0, 0, cw, ch}, Background: shadeBG(comp), StrokeHue: comp, Tinted: true, PatternIndex: 0},
		{Rect: Rect{cw, 0, cw, ch}, Background: tintBG(base), StrokeHue: base, Tinted: false, PatternIndex: 1},
		{Rect: Rect{0, ch, cw, ch}, Background: tintBG(comp), StrokeHue: comp, Tinted: false, PatternIndex: 2},
		{Rect: Rect{cw, ch, cw, ch}, Background: shadeBG(base), StrokeHue: base, Tinted: true, PatternIndex: 3},
	}
}
