package sacred

import (
	"fmt"
	"math"
	"strings"
)

// ShapeKind selects what a placement draws: an ellipse or a regular polygon.
// The zero value is Ellipse. ShapeKind is comparable.
type ShapeKind struct {
	polygon bool
	sides   int
}

// Ellipse is the circle/ellipse shape kind.
var Ellipse = ShapeKind{}

// Polygon returns the regular polygon shape kind with the given number of
// sides. Fewer than three sides yields a kind that fails to draw.
func Polygon(sides int) ShapeKind {
	return ShapeKind{polygon: true, sides: sides}
}

// Named polygon kinds, in selector order.
var (
	Triangle = Polygon(3)
	Square   = Polygon(4)
	Pentagon = Polygon(5)
	Hexagon  = Polygon(6)
	Heptagon = Polygon(7)
	Octagon  = Polygon(8)
)

// ShapeKinds returns the fixed shape universe in selector order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{Ellipse, Triangle, Square, Pentagon, Hexagon, Heptagon, Octagon}
}

// IsEllipse reports whether k draws ellipses.
func (k ShapeKind) IsEllipse() bool { return !k.polygon }

// Sides returns the polygon side count, or 0 for Ellipse.
func (k ShapeKind) Sides() int { return k.sides }

// Valid reports whether k can be drawn.
func (k ShapeKind) Valid() bool { return !k.polygon || k.sides >= 3 }

var polygonNames = map[int]string{
	3: "Triangle",
	4: "Square",
	5: "Pentagon",
	6: "Hexagon",
	7: "Heptagon",
	8: "Octagon",
}

// String returns the selector name ("Circle", "Hexagon", ...).
func (k ShapeKind) String() string {
	if !k.polygon {
		return "Circle"
	}
	if name, ok := polygonNames[k.sides]; ok {
		return name
	}
	return fmt.Sprintf("Polygon(%d)", k.sides)
}

// ParseShapeKind resolves a selector name case-insensitively. "ellipse" is
// accepted as an alias for "Circle".
func ParseShapeKind(s string) (ShapeKind, error) {
	name := strings.TrimSpace(s)
	if strings.EqualFold(name, "ellipse") {
		return Ellipse, nil
	}
	for _, k := range ShapeKinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return Ellipse, fmt.Errorf("parse shape %q: unknown shape", s)
}

// intrinsicRotation aligns hexagon and octagon silhouettes with the
// ellipse-based rings.
func (k ShapeKind) intrinsicRotation() float64 {
	switch {
	case !k.polygon:
		return 0
	case k.sides == 6:
		return 30
	case k.sides == 8:
		return 22.5
	}
	return 0
}

// Instance is one concrete shape to draw: a center, a size (the radius, or
// the horizontal radius of an ellipse), an optional vertical radius (0 means
// equal to Size) and a rotation in degrees.
type Instance struct {
	Center   Vec2
	Size     float64
	Height   float64
	Rotation float64
}

// PolygonVertices returns the n vertices of a regular polygon of the given
// radius centered at center. Vertex i sits at screen angle
// i*360/n - 90 + rotation, so vertex 0 points up when rotation is 0.
func PolygonVertices(center Vec2, n int, radius, rotation float64) []Vec2 {
	return appendPolygonVertices(make([]Vec2, 0, n), center, n, radius, rotation)
}

func appendPolygonVertices(dst []Vec2, center Vec2, n int, radius, rotation float64) []Vec2 {
	for i := 0; i < n; i++ {
		a := (float64(i)*360/float64(n) - 90 + rotation) * math.Pi / 180
		dst = append(dst, Vec2{
			X: center.X + math.Cos(a)*radius,
			Y: center.Y + math.Sin(a)*radius,
		})
	}
	return dst
}

// DrawShape draws one instance of kind on s. Degenerate input fails with
// ErrInvalidShapeParameter and issues no draw call.
func DrawShape(s Surface, kind ShapeKind, inst Instance) error {
	if inst.Size <= 0 || math.IsNaN(inst.Size) {
		return fmt.Errorf("draw %s: size %v: %w", kind, inst.Size, ErrInvalidShapeParameter)
	}
	if inst.Height < 0 {
		return fmt.Errorf("draw %s: height %v: %w", kind, inst.Height, ErrInvalidShapeParameter)
	}
	if !kind.Valid() {
		return fmt.Errorf("draw %s: %d sides: %w", kind, kind.sides, ErrInvalidShapeParameter)
	}

	if kind.IsEllipse() {
		h := inst.Height
		if h == 0 {
			h = inst.Size
		}
		s.DrawEllipse(inst.Center.X, inst.Center.Y, inst.Size*2, h*2)
		return nil
	}

	rot := inst.Rotation + kind.intrinsicRotation()
	s.DrawPolygon(PolygonVertices(inst.Center, kind.sides, inst.Size, rot))
	return nil
}
