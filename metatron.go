package sacred

import "math"

// Segment is a line between two points. I and J index the vertex slice the
// segment was generated from, with I < J.
type Segment struct {
	I, J int
	A, B Vec2
}

// metatronUnit is the Fruit of Life circle size as a fraction of base size.
const metatronUnit = 1.0 / 5

// MetatronVertices returns the twelve lattice vertices of Metatron's Cube
// for a circle size of unit: six directions at screen angles i*60+30, each
// at 2*unit and 4*unit from origin. They coincide with the centers of the
// Fruit of Life rings.
func MetatronVertices(origin Vec2, unit float64) [12]Vec2 {
	var v [12]Vec2
	for i := 0; i < 6; i++ {
		a := (float64(i)*60 + 30) * math.Pi / 180
		dx, dy := math.Cos(a), math.Sin(a)
		v[i*2] = Vec2{origin.X + dx*2*unit, origin.Y + dy*2*unit}
		v[i*2+1] = Vec2{origin.X + dx*4*unit, origin.Y + dy*4*unit}
	}
	return v
}

// MetatronEdges returns one segment for every unordered pair of vertices,
// in lexicographic (i, j) order with i < j. n vertices give n(n-1)/2
// segments; no pair appears twice in either direction.
func MetatronEdges(vertices []Vec2) []Segment {
	n := len(vertices)
	if n < 2 {
		return nil
	}
	out := make([]Segment, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Segment{I: i, J: j, A: vertices[i], B: vertices[j]})
		}
	}
	return out
}

// drawMetatronLattice strokes the complete graph over the lattice vertices
// at a quarter of the ambient stroke weight, then restores the weight.
func drawMetatronLattice(s Surface, origin Vec2, baseSize float64) {
	verts := MetatronVertices(origin, baseSize*metatronUnit)
	ambient := s.StrokeWeight()
	s.SetStrokeWeight(ambient / 4)
	for _, seg := range MetatronEdges(verts[:]) {
		s.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
	}
	s.SetStrokeWeight(ambient)
}
