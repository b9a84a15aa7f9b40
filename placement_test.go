package sacred

import (
	"math"
	"testing"
)

func TestPolarOffset(t *testing.T) {
	assertVec(t, "up", PolarOffset(0, 10), Vec2{0, -10})
	assertVec(t, "right", PolarOffset(90, 10), Vec2{10, 0})
	assertVec(t, "down", PolarOffset(180, 10), Vec2{0, 10})
	assertVec(t, "left", PolarOffset(270, 10), Vec2{-10, 0})
}

func TestExpandRing(t *testing.T) {
	origin := Vec2{50, 50}
	for k := 2; k <= 12; k++ {
		got := Expand(ring(k, 0.5, 0.25), 100, origin)
		if len(got) != k {
			t.Fatalf("k=%d: %d instances", k, len(got))
		}
		step := 360 / float64(k)
		chord := 2 * 50 * math.Sin(math.Pi/float64(k))
		for i, inst := range got {
			if d := inst.Center.Sub(origin).Len(); !approxEqual(d, 50, 1e-9) {
				t.Errorf("k=%d i=%d: radius %v, want 50", k, i, d)
			}
			assertNear(t, "rotation", inst.Rotation, float64(i)*step)
			assertNear(t, "size", inst.Size, 25)
			assertVec(t, "center", inst.Center, origin.Add(PolarOffset(float64(i)*step, 50)))

			next := got[(i+1)%k]
			if d := next.Center.Sub(inst.Center).Len(); !approxEqual(d, chord, 1e-9) {
				t.Errorf("k=%d i=%d: spacing %v, want %v", k, i, d, chord)
			}
		}
	}
}

func TestExpandStartAngle(t *testing.T) {
	spec := PlacementSpec{Count: 4, RadiusFraction: 1, SizeFraction: 0.1, StartAngleDeg: 45}
	got := Expand(spec, 10, Vec2{})
	assertNear(t, "first rotation", got[0].Rotation, 45)
	assertVec(t, "first center", got[0].Center, PolarOffset(45, 10))
}

func TestExpandSingle(t *testing.T) {
	spec := PlacementSpec{Count: 1, RadiusFraction: -0.25, SizeFraction: 0.75, HeightFraction: 0.75, AngleOffsetDeg: 180}
	got := Expand(spec, 100, Vec2{0, 0})
	if len(got) != 1 {
		t.Fatalf("%d instances, want 1", len(got))
	}
	// A negative radius mirrors the offset through the origin.
	assertVec(t, "center", got[0].Center, Vec2{0, -25})
	assertNear(t, "size", got[0].Size, 75)
	assertNear(t, "height", got[0].Height, 75)
	assertNear(t, "rotation", got[0].Rotation, 180)
}

func TestExpandEmpty(t *testing.T) {
	for _, n := range []int{0, -1} {
		if got := Expand(PlacementSpec{Count: n, SizeFraction: 1}, 100, Vec2{}); len(got) != 0 {
			t.Errorf("count %d: %d instances, want 0", n, len(got))
		}
	}
}

func TestPlacementScale(t *testing.T) {
	p := ring(6, 2.0/3, 1.0/3).Scale(Hexagon, 90)
	if p.Shape != Hexagon || p.Count != 6 {
		t.Fatalf("scaled = %+v", p)
	}
	assertNear(t, "radius", p.Radius, 60)
	assertNear(t, "size", p.Size, 30)
	assertNear(t, "height", p.Height, 0)
}
