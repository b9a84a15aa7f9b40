package sacred

import "testing"

func testGeneration() GenerationState {
	return GenerationState{}.WithHue(30)
}

func assertCoverage(t *testing.T, cells []CellDescriptor, w, h float64) {
	t.Helper()
	area := 0.0
	for _, c := range cells {
		area += c.Rect.Width * c.Rect.Height
	}
	if !approxEqual(area, w*h, 1e-6) {
		t.Errorf("cells cover %v, want %v", area, w*h)
	}
}

func TestSingleRow(t *testing.T) {
	tests := []struct {
		w, h float64
		want bool
	}{
		{1600, 400, true},
		{1600, 600, false}, // too tall
		{700, 499, false},  // ratio under 1.5
		{750, 500, false},  // height not under 500
		{748.5, 499, false},
		{749, 499, true},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := SingleRow(tt.w, tt.h); got != tt.want {
			t.Errorf("SingleRow(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestLayoutQuadGrid(t *testing.T) {
	g := testGeneration()
	cells := LayoutCells(LayoutQuad, 800, 600, g, HSB{})
	if len(cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(cells))
	}
	want := []struct {
		rect   Rect
		bg     HSB
		hue    float64
		tinted bool
	}{
		{Rect{0, 0, 400, 300}, NewHSB(210, 100, 20), 210, true},
		{Rect{400, 0, 400, 300}, NewHSB(30, 20, 100), 30, false},
		{Rect{0, 300, 400, 300}, NewHSB(210, 20, 100), 210, false},
		{Rect{400, 300, 400, 300}, NewHSB(30, 100, 20), 30, true},
	}
	for i, w := range want {
		c := cells[i]
		if c.Rect != w.rect || c.Background != w.bg || c.StrokeHue != w.hue || c.Tinted != w.tinted || c.PatternIndex != i {
			t.Errorf("cell %d = %+v, want %+v", i, c, w)
		}
	}
	assertCoverage(t, cells, 800, 600)
}

func TestLayoutQuadSingleRow(t *testing.T) {
	g := testGeneration()
	cells := LayoutCells(LayoutQuad, 1600, 400, g, HSB{})
	if len(cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(cells))
	}
	wantBG := []HSB{NewHSB(210, 20, 100), NewHSB(210, 100, 20), NewHSB(30, 20, 100), NewHSB(30, 100, 20)}
	wantTinted := []bool{true, false, true, false}
	for i, c := range cells {
		if c.Rect != (Rect{float64(i) * 400, 0, 400, 400}) {
			t.Errorf("cell %d rect = %+v", i, c.Rect)
		}
		if c.Background != wantBG[i] {
			t.Errorf("cell %d background = %+v, want %+v", i, c.Background, wantBG[i])
		}
		if c.Tinted != wantTinted[i] || c.PatternIndex != i {
			t.Errorf("cell %d tinted=%v index=%d", i, c.Tinted, c.PatternIndex)
		}
	}
	assertCoverage(t, cells, 1600, 400)
}

func TestLayoutPair(t *testing.T) {
	g := testGeneration()

	land := LayoutCells(LayoutPair, 800, 400, g, HSB{})
	if len(land) != 2 {
		t.Fatalf("cells = %d, want 2", len(land))
	}
	if land[1].Rect != (Rect{400, 0, 400, 400}) {
		t.Errorf("landscape cell 1 = %+v", land[1].Rect)
	}
	if land[0].Background != NewHSB(30, 100, 100) || land[0].StrokeHue != 210 {
		t.Errorf("cell 0 = %+v", land[0])
	}
	if land[1].Background != NewHSB(210, 100, 100) || land[1].StrokeHue != 30 {
		t.Errorf("cell 1 = %+v", land[1])
	}
	assertCoverage(t, land, 800, 400)

	port := LayoutCells(LayoutPair, 400, 800, g, HSB{})
	if port[1].Rect != (Rect{0, 400, 400, 400}) {
		t.Errorf("portrait cell 1 = %+v", port[1].Rect)
	}
	assertCoverage(t, port, 400, 800)

	// A square canvas is not portrait.
	sq := LayoutCells(LayoutPair, 500, 500, g, HSB{})
	if sq[1].Rect.X != 250 {
		t.Errorf("square cell 1 = %+v", sq[1].Rect)
	}
}

func TestLayoutGrid(t *testing.T) {
	g := testGeneration()
	cells := LayoutCells(LayoutGrid, 600, 400, g, HSBWhite)
	if len(cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(cells))
	}
	wantBG := []HSB{NewHSB(30, 100, 100), HSBWhite, HSBWhite, NewHSB(210, 100, 100)}
	wantHue := []float64{210, 30, 210, 30}
	for i, c := range cells {
		if c.Background != wantBG[i] || c.StrokeHue != wantHue[i] {
			t.Errorf("cell %d = %+v", i, c)
		}
	}
	assertCoverage(t, cells, 600, 400)
}
