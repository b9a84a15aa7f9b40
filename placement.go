package sacred

import "math"

// PlacementSpec is one line of a recipe: Count shapes on a polar ring, with
// every length expressed as a fraction of the pattern's base size.
//
// Polar angles use the compass convention: 0 degrees points up and angles
// grow clockwise.
type PlacementSpec struct {
	Count          int
	RadiusFraction float64 // ring radius (distance from origin)
	SizeFraction   float64 // shape radius
	HeightFraction float64 // ellipse vertical radius; 0 = same as SizeFraction
	AngleOffsetDeg float64 // direction of a single placement (Count == 1)
	StartAngleDeg  float64 // angle of the first ring member (Count > 1)
}

// Scale binds the spec to a shape and base size.
func (p PlacementSpec) Scale(shape ShapeKind, baseSize float64) Placement {
	return Placement{
		Shape:          shape,
		Count:          p.Count,
		Radius:         p.RadiusFraction * baseSize,
		Size:           p.SizeFraction * baseSize,
		Height:         p.HeightFraction * baseSize,
		AngleOffsetDeg: p.AngleOffsetDeg,
		StartAngleDeg:  p.StartAngleDeg,
	}
}

// Placement is a PlacementSpec resolved to absolute lengths and a shape.
type Placement struct {
	Shape          ShapeKind
	Count          int
	Radius         float64
	Size           float64
	Height         float64
	AngleOffsetDeg float64
	StartAngleDeg  float64
}

// PolarOffset returns the screen offset of a point at distance r along the
// compass angle deg.
func PolarOffset(deg, r float64) Vec2 {
	a := deg * math.Pi / 180
	return Vec2{X: math.Sin(a) * r, Y: -math.Cos(a) * r}
}

// Expand turns the placement into concrete instances around origin.
// Count == 1 yields one instance along AngleOffsetDeg; Count > 1 yields a
// ring spaced every 360/Count degrees from StartAngleDeg, each member
// rotated by its ring angle. Count < 1 yields nothing.
func (p Placement) Expand(origin Vec2) []Instance {
	return p.appendInstances(nil, origin)
}

func (p Placement) appendInstances(dst []Instance, origin Vec2) []Instance {
	switch {
	case p.Count < 1:
		return dst
	case p.Count == 1:
		return append(dst, Instance{
			Center:   origin.Add(PolarOffset(p.AngleOffsetDeg, p.Radius)),
			Size:     p.Size,
			Height:   p.Height,
			Rotation: p.AngleOffsetDeg,
		})
	}
	step := 360 / float64(p.Count)
	for i := 0; i < p.Count; i++ {
		deg := p.StartAngleDeg + float64(i)*step
		dst = append(dst, Instance{
			Center:   origin.Add(PolarOffset(deg, p.Radius)),
			Size:     p.Size,
			Height:   p.Height,
			Rotation: deg,
		})
	}
	return dst
}

// Expand scales spec by baseSize and expands it around origin. The shape is
// left as Ellipse; callers drawing polygons use Scale + Placement.Expand.
func Expand(spec PlacementSpec, baseSize float64, origin Vec2) []Instance {
	return spec.Scale(Ellipse, baseSize).Expand(origin)
}
