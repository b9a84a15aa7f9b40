package screen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sacred"
)

func TestEbitenBlendPresets(t *testing.T) {
	tests := []struct {
		mode sacred.BlendMode
		want ebiten.Blend
	}{
		{sacred.BlendNormal, ebiten.BlendSourceOver},
		{sacred.BlendAdd, ebiten.BlendLighter},
		{sacred.BlendReplace, ebiten.BlendCopy},
		{sacred.BlendRemove, ebiten.BlendDestinationOut},
	}
	for _, tt := range tests {
		if got := EbitenBlend(tt.mode); got != tt.want {
			t.Errorf("EbitenBlend(%v) = %+v, want %+v", tt.mode, got, tt.want)
		}
	}
}

func TestEbitenBlendMinMax(t *testing.T) {
	if op := EbitenBlend(sacred.BlendDarkest).BlendOperationRGB; op != ebiten.BlendOperationMin {
		t.Errorf("DARKEST rgb op = %v, want Min", op)
	}
	if op := EbitenBlend(sacred.BlendLightest).BlendOperationRGB; op != ebiten.BlendOperationMax {
		t.Errorf("LIGHTEST rgb op = %v, want Max", op)
	}
}

func TestEbitenBlendEveryModeDistinct(t *testing.T) {
	seen := map[ebiten.Blend]sacred.BlendMode{}
	for _, m := range sacred.BlendModes() {
		if !Expressible(m) {
			continue
		}
		b := EbitenBlend(m)
		if prev, ok := seen[b]; ok {
			t.Errorf("%v and %v map to the same blend", prev, m)
		}
		seen[b] = m
	}
}

func TestEbitenBlendFallback(t *testing.T) {
	fallback := []sacred.BlendMode{
		sacred.BlendExclusion, sacred.BlendDifference, sacred.BlendOverlay,
		sacred.BlendHardLight, sacred.BlendSoftLight, sacred.BlendDodge, sacred.BlendBurn,
	}
	for _, m := range fallback {
		if Expressible(m) {
			t.Errorf("Expressible(%v) = true, want false", m)
		}
		if got := EbitenBlend(m); got != ebiten.BlendSourceOver {
			t.Errorf("EbitenBlend(%v) = %+v, want source-over", m, got)
		}
	}
	n := 0
	for _, m := range sacred.BlendModes() {
		if Expressible(m) {
			n++
		}
	}
	if n != 8 {
		t.Errorf("expressible modes = %d, want 8", n)
	}
}
