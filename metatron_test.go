package sacred

import "testing"

func TestMetatronEdgesCompleteGraph(t *testing.T) {
	verts := MetatronVertices(Vec2{100, 100}, 20)
	edges := MetatronEdges(verts[:])
	if len(edges) != 66 {
		t.Fatalf("edges = %d, want 66", len(edges))
	}
	seen := make(map[[2]int]bool)
	degree := make([]int, len(verts))
	for _, e := range edges {
		if e.I >= e.J {
			t.Errorf("edge (%d, %d) not ordered", e.I, e.J)
		}
		if seen[[2]int{e.I, e.J}] || seen[[2]int{e.J, e.I}] {
			t.Errorf("edge (%d, %d) repeated", e.I, e.J)
		}
		seen[[2]int{e.I, e.J}] = true
		if e.A != verts[e.I] || e.B != verts[e.J] {
			t.Errorf("edge (%d, %d) endpoints do not match vertices", e.I, e.J)
		}
		degree[e.I]++
		degree[e.J]++
	}
	for i, d := range degree {
		if d != 11 {
			t.Errorf("vertex %d degree = %d, want 11", i, d)
		}
	}
}

func TestMetatronEdgesSmall(t *testing.T) {
	if got := MetatronEdges(nil); got != nil {
		t.Errorf("nil vertices: %v", got)
	}
	if got := MetatronEdges([]Vec2{{}}); got != nil {
		t.Errorf("one vertex: %v", got)
	}
	if got := MetatronEdges([]Vec2{{0, 0}, {1, 0}, {0, 1}}); len(got) != 3 {
		t.Errorf("three vertices: %d edges, want 3", len(got))
	}
}

func TestMetatronVertexRadii(t *testing.T) {
	origin := Vec2{10, -5}
	verts := MetatronVertices(origin, 20)
	for i, v := range verts {
		want := 40.0
		if i%2 == 1 {
			want = 80
		}
		if d := v.Sub(origin).Len(); !approxEqual(d, want, 1e-9) {
			t.Errorf("vertex %d at %v, want %v", i, d, want)
		}
	}
}

func TestMetatronVerticesOnFruitRings(t *testing.T) {
	origin := Vec2{300, 200}
	placements, _, err := DefaultCatalog().Resolve(MetatronsCube, Ellipse, 100)
	if err != nil {
		t.Fatal(err)
	}
	var centers []Vec2
	for _, p := range placements[1:] {
		for _, inst := range p.Expand(origin) {
			centers = append(centers, inst.Center)
		}
	}
	if len(centers) != 12 {
		t.Fatalf("ring centers = %d, want 12", len(centers))
	}
	for i, v := range MetatronVertices(origin, 100*metatronUnit) {
		found := false
		for _, c := range centers {
			if approxEqual(c.X, v.X, 1e-9) && approxEqual(c.Y, v.Y, 1e-9) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %d %v is not a ring center", i, v)
		}
	}
}
