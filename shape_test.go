package sacred

import (
	"errors"
	"math"
	"testing"
)

func TestDrawShapeEllipse(t *testing.T) {
	rec := NewRecorder()
	if err := DrawShape(rec, Ellipse, Instance{Center: Vec2{10, 20}, Size: 5}); err != nil {
		t.Fatal(err)
	}
	cmds := rec.Commands()
	if len(cmds) != 1 || cmds[0].Type != CommandEllipse {
		t.Fatalf("commands = %+v, want one ellipse", cmds)
	}
	c := cmds[0]
	assertVec(t, "center", Vec2{c.X1, c.Y1}, Vec2{10, 20})
	assertNear(t, "width", c.X2, 10)
	assertNear(t, "height", c.Y2, 10)
}

func TestDrawShapeEllipseHeight(t *testing.T) {
	rec := NewRecorder()
	if err := DrawShape(rec, Ellipse, Instance{Size: 5, Height: 3}); err != nil {
		t.Fatal(err)
	}
	c := rec.Commands()[0]
	assertNear(t, "width", c.X2, 10)
	assertNear(t, "height", c.Y2, 6)
}

func TestDrawShapePolygonVertices(t *testing.T) {
	center := Vec2{50, 50}
	for sides := 3; sides <= 8; sides++ {
		rec := NewRecorder()
		if err := DrawShape(rec, Polygon(sides), Instance{Center: center, Size: 20, Rotation: 17}); err != nil {
			t.Fatalf("sides %d: %v", sides, err)
		}
		cmds := rec.Commands()
		if len(cmds) != 1 || cmds[0].Type != CommandPolygon {
			t.Fatalf("sides %d: commands = %+v, want one polygon", sides, cmds)
		}
		pts := cmds[0].Points
		if len(pts) != sides {
			t.Fatalf("sides %d: got %d points", sides, len(pts))
		}
		for i, p := range pts {
			if d := p.Sub(center).Len(); !approxEqual(d, 20, 1e-9) {
				t.Errorf("sides %d vertex %d: distance %v, want 20", sides, i, d)
			}
		}
	}
}

func TestPolygonVertexZeroPointsUp(t *testing.T) {
	v := PolygonVertices(Vec2{}, 4, 10, 0)
	assertVec(t, "vertex 0", v[0], Vec2{0, -10})
	assertVec(t, "vertex 1", v[1], Vec2{10, 0})
}

func TestHexagonIntrinsicRotation(t *testing.T) {
	rec := NewRecorder()
	if err := DrawShape(rec, Hexagon, Instance{Size: 10}); err != nil {
		t.Fatal(err)
	}
	// -90 + 30 degrees: first vertex up and to the right, flat top.
	a := -60 * math.Pi / 180
	assertVec(t, "vertex 0", rec.Commands()[0].Points[0], Vec2{10 * math.Cos(a), 10 * math.Sin(a)})
}

func TestDrawShapeInvalid(t *testing.T) {
	tests := []struct {
		name string
		kind ShapeKind
		inst Instance
	}{
		{"zero size", Ellipse, Instance{Size: 0}},
		{"negative size", Hexagon, Instance{Size: -1}},
		{"NaN size", Square, Instance{Size: math.NaN()}},
		{"negative height", Ellipse, Instance{Size: 5, Height: -1}},
		{"two sides", Polygon(2), Instance{Size: 5}},
		{"zero sides", Polygon(0), Instance{Size: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecorder()
			err := DrawShape(rec, tt.kind, tt.inst)
			if !errors.Is(err, ErrInvalidShapeParameter) {
				t.Fatalf("err = %v, want ErrInvalidShapeParameter", err)
			}
			if n := len(rec.Commands()); n != 0 {
				t.Errorf("issued %d commands on failure", n)
			}
		})
	}
}

func TestShapeKinds(t *testing.T) {
	kinds := ShapeKinds()
	if len(kinds) != 7 {
		t.Fatalf("len = %d, want 7", len(kinds))
	}
	if !kinds[0].IsEllipse() {
		t.Error("first kind should be the ellipse")
	}
	for i, k := range kinds[1:] {
		if k.Sides() != i+3 {
			t.Errorf("kind %d has %d sides, want %d", i+1, k.Sides(), i+3)
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	for _, k := range ShapeKinds() {
		got, err := ParseShapeKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseShapeKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got, _ := ParseShapeKind("ellipse"); got != Ellipse {
		t.Errorf("ellipse alias = %v", got)
	}
	if got, _ := ParseShapeKind(" HEXAGON "); got != Hexagon {
		t.Errorf("HEXAGON = %v", got)
	}
	if _, err := ParseShapeKind("blob"); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestShapeKindString(t *testing.T) {
	if Ellipse.String() != "Circle" {
		t.Errorf("Ellipse = %q", Ellipse.String())
	}
	if Polygon(12).String() != "Polygon(12)" {
		t.Errorf("Polygon(12) = %q", Polygon(12).String())
	}
}
