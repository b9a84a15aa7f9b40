package sacred

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
)

// Variant selects one of the built-in compositions.
type Variant uint8

const (
	// VariantGrowth draws four cells with distinct patterns and shapes,
	// grows them in, and regenerates on a fixed interval.
	VariantGrowth Variant = iota
	// VariantComplementary draws one pattern on two complementary cells.
	VariantComplementary
	// VariantBlend draws one translucent pattern on a 2x2 grid under a
	// selectable blend mode.
	VariantBlend
)

var variantNames = [...]string{
	VariantGrowth:        "growth",
	VariantComplementary: "complementary",
	VariantBlend:         "blend",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant resolves "growth", "complementary" or "blend".
func ParseVariant(s string) (Variant, error) {
	for i, name := range variantNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("parse variant %q: unknown variant", s)
}

// layout returns the cell arrangement used by the variant.
func (v Variant) layout() LayoutMode {
	switch v {
	case VariantComplementary:
		return LayoutPair
	case VariantBlend:
		return LayoutGrid
	}
	return LayoutQuad
}

// DefaultPool returns the pattern pool the variant selects from. The growth
// pool lists TreeOfLife, which has no recipe and is filtered out against
// the catalog.
func (v Variant) DefaultPool() []PatternName {
	switch v {
	case VariantComplementary:
		return []PatternName{VesicaPiscis, SeedOfLife, EggOfLife, FlowerOfLife}
	case VariantBlend:
		return []PatternName{VesicaPiscis, SeedOfLife, EggOfLife, FlowerOfLife, FruitOfLife, MetatronsCube}
	}
	return []PatternName{VesicaPiscis, SeedOfLife, EggOfLife, FlowerOfLife, FruitOfLife, MetatronsCube, TreeOfLife}
}

func (v Variant) defaultSizeRatio() float64 {
	if v == VariantComplementary {
		return 0.4
	}
	return 0.35
}

// Config configures a Sketch. Zero values take variant defaults.
type Config struct {
	Variant Variant

	// Seed makes the artwork deterministic; it is hashed with
	// SeedFromString. Empty means a random seed. Rand, when set, wins.
	Seed string
	Rand *rand.Rand

	// Growth timings (VariantGrowth only).
	AnimationDuration time.Duration
	AutoRegenInterval time.Duration
	GrowthEase        ease.TweenFunc

	// SizeRatio is the pattern base size as a fraction of the cell's
	// shorter side. StrokeRatio is the stroke weight as a fraction of the
	// canvas' shorter side.
	SizeRatio   float64
	StrokeRatio float64

	// Pool overrides the variant's pattern pool.
	Pool []PatternName
	// Catalog overrides DefaultCatalog.
	Catalog *Catalog

	// Debug logs per-frame stats at debug level.
	Debug  bool
	Logger *slog.Logger
	// Events receives a RegenerationEvent after every regeneration.
	Events EventSink
}

func (c Config) withDefaults() Config {
	if c.SizeRatio <= 0 {
		c.SizeRatio = c.Variant.defaultSizeRatio()
	}
	if c.StrokeRatio <= 0 {
		c.StrokeRatio = 0.01
	}
	if len(c.Pool) == 0 {
		c.Pool = c.Variant.DefaultPool()
	}
	if c.Catalog == nil {
		c.Catalog = DefaultCatalog()
	}
	if c.Logger == nil {
		c.Logger = discardLogger
	}
	if c.Rand == nil {
		seed := rand.Uint64()
		if c.Seed != "" {
			seed = SeedFromString(c.Seed)
		}
		c.Rand = NewRand(seed)
	}
	return c
}
