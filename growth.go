package sacred

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CellCount is the number of cells in the growth composition.
const CellCount = 4

// Default growth timings.
const (
	DefaultAnimationDuration = 500 * time.Millisecond
	DefaultAutoRegenInterval = 2000 * time.Millisecond
)

// AnimationState is the growth-variant snapshot: the shared hue pair, the
// per-cell pattern and shape sets, and the entry animation progress.
type AnimationState struct {
	Generation     GenerationState
	Progress       float64 // growth progress in [0, 1]
	AnimationStart time.Time
	LastRegen      time.Time
	Patterns       [CellCount]PatternName
	Shapes         [CellCount]ShapeKind
	Regenerations  int // regenerations since Start, the first one excluded
}

// Growing reports whether the entry animation is still running.
func (a AnimationState) Growing() bool {
	return a.Progress < 1
}

// SchedulerConfig configures a Scheduler. Zero values take the defaults.
type SchedulerConfig struct {
	AnimationDuration time.Duration
	AutoRegenInterval time.Duration
	// Ease maps elapsed time to progress. Defaults to ease.Linear.
	Ease ease.TweenFunc
}

func (c SchedulerConfig) withDefaults() SchedulerConfig {
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = DefaultAnimationDuration
	}
	if c.AutoRegenInterval <= 0 {
		c.AutoRegenInterval = DefaultAutoRegenInterval
	}
	if c.Ease == nil {
		c.Ease = ease.Linear
	}
	return c
}

// Scheduler drives the growth state machine:
//
//	Growing(progress<1) -> Settled(progress=1) -> Growing(progress=0)
//
// on every regeneration. It holds no clock; callers pass the current time.
type Scheduler struct {
	cfg   SchedulerConfig
	gen   *Generator
	tween *gween.Tween
}

// NewScheduler returns a scheduler drawing regenerations from gen.
func NewScheduler(gen *Generator, cfg SchedulerConfig) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{
		cfg:   cfg,
		gen:   gen,
		tween: gween.New(0, 1, float32(cfg.AnimationDuration.Seconds()), cfg.Ease),
	}
}

// Config returns the resolved configuration.
func (s *Scheduler) Config() SchedulerConfig {
	return s.cfg
}

// Start returns the first snapshot at now.
func (s *Scheduler) Start(now time.Time) (AnimationState, error) {
	st, err := s.fresh(AnimationState{Generation: s.gen.Initial()}, now)
	st.Regenerations = 0
	return st, err
}

// Regenerate returns a new snapshot at now: a new hue pair, fresh
// duplicate-free pattern and shape sets, and the animation restarted.
func (s *Scheduler) Regenerate(prev AnimationState, now time.Time) (AnimationState, error) {
	prev.Generation = prev.Generation.WithHue(s.gen.Hue())
	return s.fresh(prev, now)
}

func (s *Scheduler) fresh(prev AnimationState, now time.Time) (AnimationState, error) {
	patterns, err := s.gen.PatternSet(CellCount)
	if err != nil {
		return prev, err
	}
	shapes, err := s.gen.ShapeSet(CellCount)
	if err != nil {
		return prev, err
	}
	next := AnimationState{
		Generation:     prev.Generation,
		AnimationStart: now,
		LastRegen:      now,
		Regenerations:  prev.Regenerations + 1,
	}
	copy(next.Patterns[:], patterns)
	copy(next.Shapes[:], shapes)
	// Keep the single-pattern fields in step with cell 0.
	next.Generation.Pattern = next.Patterns[0]
	next.Generation.Shape = next.Shapes[0]
	return next, nil
}

// Tick advances prev to now. When more than AutoRegenInterval has passed
// since the last regeneration it regenerates exactly once and reports true;
// otherwise it only updates Progress.
func (s *Scheduler) Tick(prev AnimationState, now time.Time) (AnimationState, bool, error) {
	if now.Sub(prev.LastRegen) > s.cfg.AutoRegenInterval {
		next, err := s.Regenerate(prev, now)
		if err != nil {
			return prev, false, err
		}
		return next, true, nil
	}
	prev.Progress = s.Progress(prev.AnimationStart, now)
	return prev, false, nil
}

// Progress returns the eased growth progress at now for an animation that
// started at start, clamped to [0, 1].
func (s *Scheduler) Progress(start, now time.Time) float64 {
	v, _ := s.tween.Set(float32(now.Sub(start).Seconds()))
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return float64(v)
}
