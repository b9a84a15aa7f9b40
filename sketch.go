package sacred

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Frame is the output of one Sketch.Tick.
type Frame struct {
	State    AnimationState
	Cells    []CellDescriptor
	Commands []DrawCommand // valid until the next Tick
	// Errors lists cells that failed to draw. The failing cell is skipped;
	// the rest of the frame is still drawn.
	Errors      []error
	Regenerated bool
}

// Sketch is the per-frame step function of a composition. It owns the
// current snapshot, the blend selection and the canvas size, and turns them
// into draw commands on every Tick.
//
// Sketch is not safe for concurrent use (single-threaded frame loop, no
// locks).
type Sketch struct {
	cfg     Config
	catalog *Catalog
	gen     *Generator
	sched   *Scheduler
	rng     *rand.Rand
	logger  *slog.Logger

	anim    AnimationState
	started bool
	blend   BlendMode
	alt     HSB

	width, height float64

	rec   *Recorder
	cells []CellDescriptor
	errs  []error
}

// NewSketch builds a sketch from cfg. It fails with ErrInsufficientUniverse
// when the growth variant's effective pool cannot fill every cell.
func NewSketch(cfg Config) (*Sketch, error) {
	cfg = cfg.withDefaults()
	gen := NewGenerator(cfg.Catalog, cfg.Pool, cfg.Rand, cfg.Logger)
	if len(gen.Patterns()) == 0 {
		return nil, fmt.Errorf("new sketch %s: empty pattern pool: %w", cfg.Variant, ErrInsufficientUniverse)
	}
	if cfg.Variant == VariantGrowth && len(gen.Patterns()) < CellCount {
		return nil, fmt.Errorf("new sketch %s: %d patterns for %d cells: %w",
			cfg.Variant, len(gen.Patterns()), CellCount, ErrInsufficientUniverse)
	}
	sk := &Sketch{
		cfg:     cfg,
		catalog: cfg.Catalog,
		gen:     gen,
		rng:     cfg.Rand,
		logger:  cfg.Logger,
		rec:     NewRecorder(),
	}
	if cfg.Variant == VariantGrowth {
		sk.sched = NewScheduler(gen, SchedulerConfig{
			AnimationDuration: cfg.AnimationDuration,
			AutoRegenInterval: cfg.AutoRegenInterval,
			Ease:              cfg.GrowthEase,
		})
	}
	if cfg.Variant == VariantBlend {
		sk.blend = BlendAdd
	}
	return sk, nil
}

// Variant returns the sketch's composition.
func (sk *Sketch) Variant() Variant { return sk.cfg.Variant }

// Catalog returns the recipe catalog in use.
func (sk *Sketch) Catalog() *Catalog { return sk.catalog }

// Generator returns the sketch's generator.
func (sk *Sketch) Generator() *Generator { return sk.gen }

// Started reports whether the first snapshot has been taken.
func (sk *Sketch) Started() bool { return sk.started }

// Generation returns the current colour/shape/pattern snapshot.
func (sk *Sketch) Generation() GenerationState { return sk.anim.Generation }

// Animation returns the current animation snapshot.
func (sk *Sketch) Animation() AnimationState { return sk.anim }

// BlendMode returns the blend mode applied to the cells.
func (sk *Sketch) BlendMode() BlendMode { return sk.blend }

// AltColor returns the alternate background of the blend grid.
func (sk *Sketch) AltColor() HSB { return sk.alt }

// Size returns the canvas size set by OnResize.
func (sk *Sketch) Size() (width, height float64) { return sk.width, sk.height }

// StrokeWeight returns the stroke weight for the current canvas size.
func (sk *Sketch) StrokeWeight() float64 {
	return min(sk.width, sk.height) * sk.cfg.StrokeRatio
}

// ActivePatternDisplayName returns the label of the active pattern, e.g.
// "Seed Of Life". For the growth variant this is cell 0's pattern.
func (sk *Sketch) ActivePatternDisplayName() string {
	if !sk.started {
		return ""
	}
	return sk.anim.Generation.Pattern.DisplayName()
}

// OnResize records the new canvas size. Layout and stroke weight follow on
// the next Tick; the snapshot is unchanged.
func (sk *Sketch) OnResize(width, height float64) {
	if width == sk.width && height == sk.height {
		return
	}
	sk.width, sk.height = width, height
	sk.logger.Debug("resize", "width", width, "height", height, "stroke", sk.StrokeWeight())
}

// Start takes the first snapshot at now. Tick calls it implicitly; calling
// it again is a no-op.
func (sk *Sketch) Start(now time.Time) error {
	if sk.started {
		return nil
	}
	if sk.sched != nil {
		st, err := sk.sched.Start(now)
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		sk.anim = st
	} else {
		sk.anim = uniform(AnimationState{
			Generation:     sk.gen.Initial(),
			Progress:       1,
			AnimationStart: now,
			LastRegen:      now,
		})
	}
	sk.started = true
	sk.alt = sk.pickAlt()
	sk.emit(CauseStart, now)
	return nil
}

// Regenerate replaces the snapshot with a new one: a fresh hue pair and a
// pattern and shape different from the current ones.
func (sk *Sketch) Regenerate(now time.Time) error {
	return sk.regenerate(CauseManual, now)
}

// Click handles a pointer press at (x, y). Presses over a host overlay
// (overOverlay) are ignored. Any other press regenerates and reports true.
func (sk *Sketch) Click(x, y float64, overOverlay bool, now time.Time) bool {
	if overOverlay {
		return false
	}
	if err := sk.regenerate(CauseClick, now); err != nil {
		sk.logger.Warn("click regenerate failed", "x", x, "y", y, "err", err)
		return false
	}
	return true
}

func (sk *Sketch) regenerate(cause RegenerationCause, now time.Time) error {
	if !sk.started {
		return sk.Start(now)
	}
	if sk.sched != nil {
		st, err := sk.sched.Regenerate(sk.anim, now)
		if err != nil {
			return fmt.Errorf("regenerate: %w", err)
		}
		sk.anim = st
	} else {
		next := sk.anim
		next.Generation = sk.gen.Regenerate(sk.anim.Generation)
		next.AnimationStart, next.LastRegen = now, now
		next.Regenerations++
		sk.anim = uniform(next)
	}
	sk.alt = sk.pickAlt()
	sk.emit(cause, now)
	return nil
}

// SetShapeKind makes k the active shape. In the growth variant it applies
// to cell 0; if another cell already uses k the two cells swap shapes so the
// set stays duplicate-free.
func (sk *Sketch) SetShapeKind(k ShapeKind) error {
	if !k.Valid() {
		return fmt.Errorf("set shape %s: %w", k, ErrInvalidShapeParameter)
	}
	if !sk.started {
		return fmt.Errorf("set shape %s: %w", k, ErrNotStarted)
	}
	next := sk.anim
	if sk.sched != nil {
		swapInto(next.Shapes[:], k)
		next.Generation.Shape = next.Shapes[0]
	} else {
		next.Generation.Shape = k
		next = uniform(next)
	}
	sk.anim = next
	return nil
}

// SetPatternName makes name the active pattern. It fails with
// ErrUnknownPattern when the catalog has no recipe for name. In the growth
// variant it applies to cell 0 like SetShapeKind.
func (sk *Sketch) SetPatternName(name PatternName) error {
	if !sk.catalog.Has(name) {
		return fmt.Errorf("set pattern %s: %w", name, ErrUnknownPattern)
	}
	if !sk.started {
		return fmt.Errorf("set pattern %s: %w", name, ErrNotStarted)
	}
	next := sk.anim
	if sk.sched != nil {
		swapInto(next.Patterns[:], name)
		next.Generation.Pattern = next.Patterns[0]
	} else {
		next.Generation.Pattern = name
		next = uniform(next)
	}
	sk.anim = next
	return nil
}

// SetBlendMode selects the blend mode for the cells and re-picks the
// alternate background.
func (sk *Sketch) SetBlendMode(m BlendMode) {
	sk.blend = m
	sk.alt = sk.pickAlt()
}

// Tick advances the sketch to now and draws one frame. It starts the sketch
// on the first call and, for the growth variant, regenerates when the auto
// interval has elapsed.
func (sk *Sketch) Tick(now time.Time) Frame {
	var stats frameStats
	sk.errs = sk.errs[:0]
	regenerated := false

	if !sk.started {
		if err := sk.Start(now); err != nil {
			sk.errs = append(sk.errs, err)
			return Frame{Errors: sk.errs}
		}
		regenerated = true
	} else if sk.sched != nil {
		st, regen, err := sk.sched.Tick(sk.anim, now)
		if err != nil {
			sk.errs = append(sk.errs, fmt.Errorf("tick: %w", err))
		}
		sk.anim = st
		if regen {
			regenerated = true
			sk.emit(CauseAuto, now)
		}
	}

	t0 := time.Now()
	sk.cells = sk.cells[:0]
	if sk.width > 0 && sk.height > 0 {
		sk.cells = append(sk.cells, LayoutCells(sk.cfg.Variant.layout(), sk.width, sk.height, sk.anim.Generation, sk.alt)...)
	}
	stats.layoutTime = time.Since(t0)

	t1 := time.Now()
	sk.rec.Reset()
	if len(sk.cells) > 0 {
		sk.rec.Clear()
		sk.rec.SetStrokeWeight(sk.StrokeWeight())
		sk.rec.SetBlendMode(sk.blend)
		for i := range sk.cells {
			if err := sk.paintCell(sk.rec, sk.cells[i]); err != nil {
				err = fmt.Errorf("cell %d: %w", i, err)
				sk.logger.Debug("cell skipped", "err", err)
				sk.errs = append(sk.errs, err)
			}
		}
	}
	stats.paintTime = time.Since(t1)

	cmds := sk.rec.Commands()
	stats.commandCount = len(cmds)
	stats.drawCount = countDraws(cmds)
	stats.cellCount = len(sk.cells)
	stats.degraded = len(sk.errs)
	sk.debugLog(stats)

	return Frame{
		State:       sk.anim,
		Cells:       sk.cells,
		Commands:    cmds,
		Errors:      sk.errs,
		Regenerated: regenerated,
	}
}

// paintCell draws one cell inside its own transform scope. The scope is
// closed even when the pattern fails.
func (sk *Sketch) paintCell(s Surface, cell CellDescriptor) error {
	s.Push()
	defer s.Pop()

	r := cell.Rect
	s.Translate(r.X, r.Y)
	s.SetFill(cell.Background)
	s.NoStroke()
	s.DrawRect(0, 0, r.Width, r.Height)
	s.NoFill()

	origin := Vec2{r.Width / 2, r.Height / 2}
	size := r.MinSide() * sk.cfg.SizeRatio
	pattern, shape := sk.cellPattern(cell.PatternIndex)

	switch sk.cfg.Variant {
	case VariantComplementary:
		s.SetStroke(NewHSB(cell.StrokeHue, 100, 100))
		return DrawPattern(s, sk.catalog, pattern, shape, origin, size)

	case VariantBlend:
		s.SetFill(NewHSB(cell.StrokeHue, 100, 100).WithAlpha(20))
		s.SetStroke(NewHSB(cell.StrokeHue, 100, 100))
		return DrawPattern(s, sk.catalog, pattern, shape, origin, size)
	}

	// Growth: zero progress is an invisible cell, not a failure.
	size *= sk.anim.Progress
	if size <= 0 {
		return nil
	}
	for _, l := range growthLayers[b2i(cell.Tinted)] {
		s.SetStroke(NewHSB(cell.StrokeHue, l.strokeS, l.strokeB))
		s.SetFill(NewHSB(cell.StrokeHue, l.fillS, l.fillB))
		if err := DrawPattern(s, sk.catalog, pattern, shape, origin, size*l.scale); err != nil {
			return err
		}
	}
	return nil
}

// growthLayer is one pass of a growth cell: stroke and fill
// saturation/brightness, and the fraction of the cell size drawn.
type growthLayer struct {
	strokeS, strokeB float64
	fillS, fillB     float64
	scale            float64
}

// growthLayers is indexed by tinted (0 shaded, 1 tinted): outer layer
// first, then the inner repeat at half size.
var growthLayers = [2][2]growthLayer{
	{
		{strokeS: 100, strokeB: 100, fillS: 100, fillB: 40, scale: 1},
		{strokeS: 100, strokeB: 80, fillS: 40, fillB: 100, scale: 0.5},
	},
	{
		{strokeS: 100, strokeB: 100, fillS: 40, fillB: 100, scale: 1},
		{strokeS: 80, strokeB: 100, fillS: 100, fillB: 40, scale: 0.5},
	},
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (sk *Sketch) cellPattern(i int) (PatternName, ShapeKind) {
	if i < 0 || i >= CellCount {
		i = 0
	}
	return sk.anim.Patterns[i], sk.anim.Shapes[i]
}

// pickAlt returns the blend grid's alternate background: white under
// DARKEST, black under LIGHTEST, a coin flip otherwise.
func (sk *Sketch) pickAlt() HSB {
	switch sk.blend {
	case BlendDarkest:
		return HSBWhite
	case BlendLightest:
		return HSBBlack
	}
	if sk.rng.IntN(2) == 0 {
		return HSBBlack
	}
	return HSBWhite
}

func (sk *Sketch) emit(cause RegenerationCause, now time.Time) {
	g := sk.anim.Generation
	sk.logger.Debug("regenerate",
		"cause", cause.String(),
		"hue", g.BaseHue,
		"pattern", g.Pattern.String(),
		"shape", g.Shape.String(),
	)
	if sk.cfg.Events == nil {
		return
	}
	sk.cfg.Events.EmitRegeneration(RegenerationEvent{
		Cause:      cause,
		At:         now,
		Generation: g,
		Patterns:   sk.anim.Patterns,
		Shapes:     sk.anim.Shapes,
	})
}

// uniform copies the single pattern and shape into every cell slot.
func uniform(st AnimationState) AnimationState {
	for i := range st.Patterns {
		st.Patterns[i] = st.Generation.Pattern
		st.Shapes[i] = st.Generation.Shape
	}
	return st
}

// swapInto puts v at index 0. If v is already present elsewhere, the two
// slots swap.
func swapInto[T comparable](set []T, v T) {
	for i := 1; i < len(set); i++ {
		if set[i] == v {
			set[i] = set[0]
			break
		}
	}
	set[0] = v
}
