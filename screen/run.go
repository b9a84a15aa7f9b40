package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/sacred"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the initial window size in device-independent
	// pixels. The window is resizable; the sketch follows its size.
	Width, Height int
	// ShowFPS draws a small FPS/TPS widget in the bottom-left corner.
	ShowFPS bool
	// HideOverlay disables the shape selector, label and buttons.
	HideOverlay bool
	// ScreenshotDir is where Ctrl+S and script screenshots are written.
	// Default "screenshots".
	ScreenshotDir string
	// Script, when set, is stepped once per Update.
	Script *ScriptRunner
	// ExitOnScriptDone ends Run once the script has finished.
	ExitOnScriptDone bool
	// Clock returns the current time. Default time.Now.
	Clock func() time.Time
	// Logger receives host messages. Default discards.
	Logger *slog.Logger
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "sacred"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 800
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Game adapts a Sketch to ebiten.Game: it feeds pointer and key input to the
// sketch, replays each frame's commands onto the screen and draws the
// overlay on top.
type Game struct {
	sk      *sacred.Sketch
	cfg     RunConfig
	logger  *slog.Logger
	clock   func() time.Time
	surface *Surface
	overlay *Overlay
	hud     *hud

	frame   sacred.Frame
	showFPS bool

	injectQueue     []syntheticEvent
	screenshotQueue []string
}

// NewGame returns a Game driving sk. Use it directly with ebiten.RunGame
// when the window is managed elsewhere; otherwise call Run.
func NewGame(sk *sacred.Sketch, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		sk:      sk,
		cfg:     cfg,
		logger:  cfg.Logger,
		clock:   cfg.Clock,
		surface: NewSurface(nil),
		hud:     &hud{},
		showFPS: cfg.ShowFPS,
	}
	if !cfg.HideOverlay {
		g.overlay = NewOverlay(sk.Variant())
	}
	g.sk.OnResize(float64(cfg.Width), float64(cfg.Height))
	g.layoutOverlay()
	return g
}

// Run opens a resizable window and drives sk until the window is closed,
// or until the script finishes when cfg.ExitOnScriptDone is set.
func Run(sk *sacred.Sketch, cfg RunConfig) error {
	g := NewGame(sk, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if !g.processInjected() {
		g.pollInput()
	}
	if g.cfg.Script != nil {
		g.cfg.Script.step(g)
	}

	g.frame = g.sk.Tick(g.clock())
	for _, err := range g.frame.Errors {
		g.logger.Debug("frame error", "err", err)
	}
	g.layoutOverlay()
	g.hud.update(g.clock())

	if g.cfg.Script != nil && g.cfg.ExitOnScriptDone && g.cfg.Script.Done() &&
		len(g.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.surface.Reset()
	sacred.Replay(g.frame.Commands, g.surface)

	if g.overlay != nil {
		g.surface.Reset()
		g.overlay.Draw(screen, g.surface, g.sk.Generation().Shape, g.sk.ActivePatternDisplayName(), g.sk.BlendMode())
	}
	if g.showFPS {
		g.hud.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas always matches the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if sw, sh := g.sk.Size(); sw != w || sh != h {
		g.sk.OnResize(w, h)
		g.layoutOverlay()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) layoutOverlay() {
	if g.overlay == nil {
		return
	}
	w, h := g.sk.Size()
	g.overlay.Layout(w, h, g.sk.ActivePatternDisplayName())
}

// pollInput reads real pointer and key presses for this frame.
func (g *Game) pollInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.press(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		g.press(float64(x), float64(y))
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		g.handleKey(k, ctrl)
	}
}

// press routes a pointer press at screen coordinates to the overlay or the
// sketch.
func (g *Game) press(x, y float64) {
	now := g.clock()
	hit := Hit{}
	if g.overlay != nil {
		hit = g.overlay.HitTest(x, y)
	}
	switch hit.Widget {
	case WidgetShape:
		if k, ok := g.overlay.Shape(hit.Index); ok {
			g.setShape(k)
		}
	case WidgetRegenerate:
		g.regenerate(now)
	case WidgetBlend:
		g.sk.SetBlendMode(g.sk.BlendMode().Next())
	default:
		g.sk.Click(x, y, hit.Widget != WidgetNone, now)
	}
}

// shapeKeys select sacred.ShapeKinds by index.
var shapeKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

// handleKey applies a key binding. ctrl reports whether Control (or Command)
// is held.
func (g *Game) handleKey(k ebiten.Key, ctrl bool) {
	if ctrl {
		if k == ebiten.KeyS {
			g.Screenshot(g.sk.Variant().String())
		}
		return
	}
	if i := slices.Index(shapeKeys, k); i >= 0 {
		g.setShape(sacred.ShapeKinds()[i])
		return
	}
	switch k {
	case ebiten.KeyR:
		g.regenerate(g.clock())
	case ebiten.KeyB:
		g.sk.SetBlendMode(g.sk.BlendMode().Next())
	case ebiten.KeyP:
		g.nextPattern()
	case ebiten.KeyF:
		g.showFPS = !g.showFPS
	}
}

func (g *Game) setShape(k sacred.ShapeKind) {
	if err := g.sk.SetShapeKind(k); err != nil {
		g.logger.Warn("set shape", "shape", k, "err", err)
	}
}

func (g *Game) regenerate(now time.Time) {
	if err := g.sk.Regenerate(now); err != nil {
		g.logger.Warn("regenerate", "err", err)
	}
}

// nextPattern advances the active pattern to the next one in the pool.
func (g *Game) nextPattern() {
	pool := g.sk.Generator().Patterns()
	if len(pool) == 0 {
		return
	}
	i := slices.Index(pool, g.sk.Generation().Pattern)
	next := pool[(i+1)%len(pool)]
	if err := g.sk.SetPatternName(next); err != nil {
		g.logger.Warn("set pattern", "pattern", next, "err", err)
	}
}
