package screen

import "github.com/hajimehoshi/ebiten/v2"

// syntheticEvent is one injected input event. Presses use screen
// coordinates, identical to real pointer input.
type syntheticEvent struct {
	press bool
	x, y  float64
	key   ebiten.Key
}

// InjectClick queues a pointer press at (x, y). The event is consumed on the
// next Update, before real input.
func (g *Game) InjectClick(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{press: true, x: x, y: y})
}

// InjectKey queues a key press. Only keys bound by the host have an effect.
func (g *Game) InjectKey(k ebiten.Key) {
	g.injectQueue = append(g.injectQueue, syntheticEvent{key: k})
}

// processInjected pops one queued event and handles it. It returns true if
// an event was consumed, in which case real input is skipped this frame.
func (g *Game) processInjected() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	if evt.press {
		g.press(evt.x, evt.y)
	} else {
		g.handleKey(evt.key, false)
	}
	return true
}
