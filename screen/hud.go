package screen

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the FPS text is rebuilt.
const hudRefresh = 500 * time.Millisecond

// hud shows the current FPS and TPS in the bottom-left corner.
type hud struct {
	text string
	last time.Time
}

func (h *hud) update(now time.Time) {
	if !h.last.IsZero() && now.Sub(h.last) < hudRefresh {
		return
	}
	h.last = now
	h.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (h *hud) draw(dst *ebiten.Image) {
	if h.text == "" {
		return
	}
	y := dst.Bounds().Dy() - 2*glyphH - overlayMargin
	ebitenutil.DebugPrintAt(dst, h.text, overlayMargin, y)
}
