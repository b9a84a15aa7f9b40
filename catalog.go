package sacred

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternName identifies a sacred-geometry pattern. The set is closed;
// recipes are looked up by value, never by building strings.
type PatternName uint8

const (
	VesicaPiscis  PatternName = iota // two overlapping circles
	SeedOfLife                       // seven circles, ring at one radius
	EggOfLife                        // seven circles, ring at two radii
	FlowerOfLife                     // nested rings of 6 and 12
	FruitOfLife                      // thirteen circles on two rings
	MetatronsCube                    // Fruit of Life joined by every connecting line
	TreeOfLife                       // declared, no recipe registered
)

var patternIdents = [...]string{
	VesicaPiscis:  "VesicaPiscis",
	SeedOfLife:    "SeedOfLife",
	EggOfLife:     "EggOfLife",
	FlowerOfLife:  "FlowerOfLife",
	FruitOfLife:   "FruitOfLife",
	MetatronsCube: "MetatronsCube",
	TreeOfLife:    "TreeOfLife",
}

// PatternNames returns every declared name, registered or not.
func PatternNames() []PatternName {
	names := make([]PatternName, len(patternIdents))
	for i := range patternIdents {
		names[i] = PatternName(i)
	}
	return names
}

// String returns the identifier form, e.g. "SeedOfLife".
func (p PatternName) String() string {
	if int(p) < len(patternIdents) {
		return patternIdents[p]
	}
	return fmt.Sprintf("PatternName(%d)", uint8(p))
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// DisplayName returns the human-readable label, e.g. "Seed Of Life".
func (p PatternName) DisplayName() string {
	return camelBoundary.ReplaceAllString(p.String(), "$1 $2")
}

// ParsePatternName accepts the identifier ("SeedOfLife"), the display name
// ("Seed Of Life") or the legacy draw-prefixed form ("drawSeedOfLife"),
// case-insensitively.
func ParsePatternName(s string) (PatternName, error) {
	key := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(key) > 4 && strings.EqualFold(key[:4], "draw") {
		key = key[4:]
	}
	for i, ident := range patternIdents {
		if strings.EqualFold(ident, key) {
			return PatternName(i), nil
		}
	}
	return 0, fmt.Errorf("parse pattern %q: %w", s, ErrUnknownPattern)
}

// Decoration is an optional post-placement hook drawn after a recipe's
// shapes, in the same coordinate space.
type Decoration func(s Surface, origin Vec2, baseSize float64)

// Recipe is the fixed list of placements that defines one pattern.
type Recipe struct {
	Name       PatternName
	Placements []PlacementSpec
	Decoration Decoration
}

// Catalog maps pattern names to recipes. It is read-only once built.
type Catalog struct {
	recipes map[PatternName]Recipe
	order   []PatternName
}

// NewCatalog builds a catalog from recipes. Later recipes with the same name
// replace earlier ones but keep the original position.
func NewCatalog(recipes ...Recipe) *Catalog {
	c := &Catalog{recipes: make(map[PatternName]Recipe, len(recipes))}
	for _, r := range recipes {
		if _, dup := c.recipes[r.Name]; !dup {
			c.order = append(c.order, r.Name)
		}
		c.recipes[r.Name] = r
	}
	return c
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []PatternName {
	out := make([]PatternName, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether name has a recipe.
func (c *Catalog) Has(name PatternName) bool {
	_, ok := c.recipes[name]
	return ok
}

// Lookup returns the recipe for name, or ErrUnknownPattern.
func (c *Catalog) Lookup(name PatternName) (Recipe, error) {
	r, ok := c.recipes[name]
	if !ok {
		return Recipe{}, fmt.Errorf("lookup %s: %w", name, ErrUnknownPattern)
	}
	return r, nil
}

// Resolve binds the recipe for name to shape and baseSize.
func (c *Catalog) Resolve(name PatternName, shape ShapeKind, baseSize float64) ([]Placement, Decoration, error) {
	r, err := c.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	out := make([]Placement, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = p.Scale(shape, baseSize)
	}
	return out, r.Decoration, nil
}

// DrawPattern draws the named pattern with the given shape, centered at
// origin. It stops at the first shape that fails to draw.
func DrawPattern(s Surface, c *Catalog, name PatternName, shape ShapeKind, origin Vec2, baseSize float64) error {
	placements, deco, err := c.Resolve(name, shape, baseSize)
	if err != nil {
		return err
	}
	var buf []Instance
	for _, p := range placements {
		buf = p.appendInstances(buf[:0], origin)
		for _, inst := range buf {
			if err := DrawShape(s, p.Shape, inst); err != nil {
				return fmt.Errorf("draw %s: %w", name, err)
			}
		}
	}
	if deco != nil {
		deco(s, origin, baseSize)
	}
	return nil
}

func single(radius, size float64) PlacementSpec {
	return PlacementSpec{Count: 1, RadiusFraction: radius, SizeFraction: size}
}

func ring(count int, radius, size float64) PlacementSpec {
	return PlacementSpec{Count: count, RadiusFraction: radius, SizeFraction: size}
}

func fruitOfLifePlacements() []PlacementSpec {
	return []PlacementSpec{
		single(0, 1.0/5),
		ring(6, 2.0/5, 1.0/5),
		ring(6, 4.0/5, 1.0/5),
	}
}

// DefaultCatalog returns the built-in recipes. TreeOfLife is deliberately
// absent and resolves to ErrUnknownPattern.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Recipe{Name: VesicaPiscis, Placements: []PlacementSpec{
			single(0, 1),
			single(0, 1.0/2),
			{Count: 1, RadiusFraction: -1.0 / 4, SizeFraction: 3.0 / 4, HeightFraction: 3.0 / 4, AngleOffsetDeg: 0},
			{Count: 1, RadiusFraction: -1.0 / 4, SizeFraction: 3.0 / 4, HeightFraction: 3.0 / 4, AngleOffsetDeg: 180},
		}},
		Recipe{Name: SeedOfLife, Placements: []PlacementSpec{
			single(0, 1.0/2),
			ring(6, 1.0/2, 1.0/2),
		}},
		Recipe{Name: EggOfLife, Placements: []PlacementSpec{
			single(0, 1.0/3),
			ring(6, 2.0/3, 1.0/3),
		}},
		Recipe{Name: FlowerOfLife, Placements: []PlacementSpec{
			single(0, 1),
			single(0, 1.0/3),
			ring(6, 1.0/3, 1.0/3),
			ring(12, 2.0/3, 1.0/3),
		}},
		Recipe{Name: FruitOfLife, Placements: fruitOfLifePlacements()},
		Recipe{
			Name:       MetatronsCube,
			Placements: fruitOfLifePlacements(),
			Decoration: drawMetatronLattice,
		},
	)
}
