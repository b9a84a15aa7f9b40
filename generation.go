package sacred

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// GenerationState is the colour/shape/pattern snapshot shared by every cell.
// It is a value: regeneration returns a new snapshot.
type GenerationState struct {
	BaseHue          float64
	ComplementaryHue float64
	Shape            ShapeKind
	Pattern          PatternName
}

// WithHue returns g with BaseHue set to h and the complement derived from it.
func (g GenerationState) WithHue(h float64) GenerationState {
	g.BaseHue = NormalizeHue(h)
	g.ComplementaryHue = Complement(g.BaseHue)
	return g
}

// Generator produces GenerationState snapshots from a fixed pattern pool and
// shape universe. Pool names without a recipe in the catalog are dropped at
// construction, so a generator never selects an unregistered pattern.
type Generator struct {
	rng      *rand.Rand
	patterns []PatternName
	shapes   []ShapeKind
}

// NewGenerator filters pool against cat and returns a generator drawing from
// rng. Repeated names are kept once. An empty pool means every pattern
// registered in cat.
func NewGenerator(cat *Catalog, pool []PatternName, rng *rand.Rand, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = discardLogger
	}
	if len(pool) == 0 {
		pool = cat.Names()
	}
	patterns := make([]PatternName, 0, len(pool))
	seen := make(map[PatternName]bool, len(pool))
	for _, name := range pool {
		if !cat.Has(name) {
			logger.Warn("pattern pool entry has no recipe, skipping", "pattern", name.String())
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		patterns = append(patterns, name)
	}
	return &Generator{rng: rng, patterns: patterns, shapes: ShapeKinds()}
}

// Patterns returns the effective pattern pool.
func (g *Generator) Patterns() []PatternName {
	out := make([]PatternName, len(g.patterns))
	copy(out, g.patterns)
	return out
}

// Shapes returns the shape universe.
func (g *Generator) Shapes() []ShapeKind {
	out := make([]ShapeKind, len(g.shapes))
	copy(out, g.shapes)
	return out
}

// Hue returns a uniform hue in [0, 360).
func (g *Generator) Hue() float64 {
	return g.rng.Float64() * 360
}

// Initial returns a first snapshot with no exclusions.
func (g *Generator) Initial() GenerationState {
	st := GenerationState{}.WithHue(g.Hue())
	st.Shape = g.shapes[g.rng.IntN(len(g.shapes))]
	if len(g.patterns) > 0 {
		st.Pattern = g.patterns[g.rng.IntN(len(g.patterns))]
	}
	return st
}

// Regenerate returns a new snapshot: a fresh hue pair, and a shape and
// pattern chosen uniformly among those different from prev's. With a
// single-element pool the previous value is kept.
func (g *Generator) Regenerate(prev GenerationState) GenerationState {
	next := GenerationState{}.WithHue(g.Hue())
	next.Shape = pickExcluding(g.rng, g.shapes, prev.Shape)
	next.Pattern = pickExcluding(g.rng, g.patterns, prev.Pattern)
	return next
}

// PatternSet draws k distinct patterns from the pool.
func (g *Generator) PatternSet(k int) ([]PatternName, error) {
	return SampleDistinct(g.rng, g.patterns, k)
}

// ShapeSet draws k distinct shapes from the universe.
func (g *Generator) ShapeSet(k int) ([]ShapeKind, error) {
	return SampleDistinct(g.rng, g.shapes, k)
}

// pickExcluding picks uniformly from universe without current. It returns
// current if nothing else is available.
func pickExcluding[T comparable](rng *rand.Rand, universe []T, current T) T {
	n := 0
	for _, v := range universe {
		if v != current {
			n++
		}
	}
	if n == 0 {
		return current
	}
	idx := rng.IntN(n)
	for _, v := range universe {
		if v == current {
			continue
		}
		if idx == 0 {
			return v
		}
		idx--
	}
	return current
}

// SampleDistinct returns k distinct elements of universe in random order
// using a Fisher-Yates shuffle of a copy. universe itself is not modified.
// Elements are distinct by position; callers pass duplicate-free universes.
func SampleDistinct[T any](rng *rand.Rand, universe []T, k int) ([]T, error) {
	if k < 0 || k > len(universe) {
		return nil, fmt.Errorf("sample %d of %d: %w", k, len(universe), ErrInsufficientUniverse)
	}
	buf := make([]T, len(universe))
	copy(buf, universe)
	rng.Shuffle(len(buf), func(i, j int) { buf[i], buf[j] = buf[j], buf[i] })
	return buf[:k], nil
}

// SeedFromString hashes s into a deterministic seed (31-multiplier string
// hash over UTF-16 code units, absolute value of the 32-bit result), so the
// same token always produces the same artwork.
func SeedFromString(s string) uint64 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16Pair(r)
			h = 31*h + int32(hi)
			h = 31*h + int32(lo)
			continue
		}
		h = 31*h + int32(r)
	}
	if h < 0 {
		return uint64(-int64(h))
	}
	return uint64(h)
}

func utf16Pair(r rune) (uint16, uint16) {
	r -= 0x10000
	return uint16(0xD800 + (r>>10)&0x3FF), uint16(0xDC00 + r&0x3FF)
}

// NewRand returns a PCG-backed generator seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
