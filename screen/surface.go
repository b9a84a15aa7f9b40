package screen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/sacred"
)

var _ sacred.Surface = (*Surface)(nil)

// paint is a premultiplied vertex colour. A zero paint with on == false
// disables fill or stroke.
type paint struct {
	r, g, b, a float32
	on         bool
}

// premultiply converts c to a premultiplied paint.
func premultiply(c sacred.HSB) paint {
	col := c.Colorful().Clamped()
	a := float32(c.Opacity())
	return paint{
		r:  float32(col.R) * a,
		g:  float32(col.G) * a,
		b:  float32(col.B) * a,
		a:  a,
		on: true,
	}
}

type surfaceState struct {
	fill   paint
	stroke paint
	weight float64
	blend  sacred.BlendMode
	offset sacred.Vec2
}

func defaultState() surfaceState {
	return surfaceState{
		fill:   premultiply(sacred.HSBWhite),
		stroke: premultiply(sacred.HSBBlack),
		weight: 1,
	}
}

// Surface draws sacred commands onto an *ebiten.Image. Fills are fan
// triangulated onto a shared white pixel; strokes are tessellated with
// vector.Path. Ellipses are approximated by polygons whose segment count
// grows with the radius.
//
// A Surface is reused across frames: call SetTarget, then Reset, each Draw.
type Surface struct {
	dst   *ebiten.Image
	st    surfaceState
	stack []surfaceState

	// AntiAlias is passed through to DrawTriangles.
	AntiAlias bool

	// scratch buffers (high-water mark, never shrink)
	pts   []sacred.Vec2
	verts []ebiten.Vertex
	inds  []uint16
}

// NewSurface returns a surface drawing onto dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, st: defaultState(), AntiAlias: true}
}

// SetTarget changes the destination image.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Reset restores the default style (white fill, black stroke, weight 1,
// normal blending) and drops any unbalanced pushes.
func (s *Surface) Reset() {
	s.st = defaultState()
	s.stack = s.stack[:0]
}

func (s *Surface) Push() {
	s.stack = append(s.stack, s.st)
}

func (s *Surface) Pop() {
	if n := len(s.stack); n > 0 {
		s.st = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) Translate(dx, dy float64) {
	s.st.offset = s.st.offset.Add(sacred.Vec2{X: dx, Y: dy})
}

func (s *Surface) SetFill(c sacred.HSB)       { s.st.fill = premultiply(c) }
func (s *Surface) NoFill()                    { s.st.fill.on = false }
func (s *Surface) SetStroke(c sacred.HSB)     { s.st.stroke = premultiply(c) }
func (s *Surface) NoStroke()                  { s.st.stroke.on = false }
func (s *Surface) SetStrokeWeight(px float64) { s.st.weight = px }
func (s *Surface) StrokeWeight() float64      { return s.st.weight }
func (s *Surface) SetBlendMode(m sacred.BlendMode) {
	s.st.blend = m
}

func (s *Surface) Clear() {
	if s.dst != nil {
		s.dst.Clear()
	}
}

func (s *Surface) DrawRect(x, y, w, h float64) {
	o := s.st.offset
	x, y = x+o.X, y+o.Y
	s.pts = append(s.pts[:0],
		sacred.Vec2{X: x, Y: y},
		sacred.Vec2{X: x + w, Y: y},
		sacred.Vec2{X: x + w, Y: y + h},
		sacred.Vec2{X: x, Y: y + h},
	)
	s.fillPoints(s.pts)
	s.strokePoints(s.pts, true)
}

func (s *Surface) DrawEllipse(cx, cy, w, h float64) {
	o := s.st.offset
	rx, ry := w/2, h/2
	s.pts = appendEllipsePoints(s.pts[:0], cx+o.X, cy+o.Y, rx, ry, ellipseSegments(max(rx, ry)))
	s.fillPoints(s.pts)
	s.strokePoints(s.pts, true)
}

func (s *Surface) DrawPolygon(points []sacred.Vec2) {
	s.pts = s.pts[:0]
	for _, p := range points {
		s.pts = append(s.pts, p.Add(s.st.offset))
	}
	s.fillPoints(s.pts)
	s.strokePoints(s.pts, true)
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64) {
	o := s.st.offset
	s.pts = append(s.pts[:0],
		sacred.Vec2{X: x1 + o.X, Y: y1 + o.Y},
		sacred.Vec2{X: x2 + o.X, Y: y2 + o.Y},
	)
	s.strokePoints(s.pts, false)
}

func (s *Surface) fillPoints(pts []sacred.Vec2) {
	if !s.st.fill.on || len(pts) < 3 || s.dst == nil {
		return
	}
	s.verts, s.inds = appendFan(s.verts[:0], s.inds[:0], pts, s.st.fill)
	s.submit()
}

func (s *Surface) strokePoints(pts []sacred.Vec2, closed bool) {
	if !s.st.stroke.on || s.st.weight <= 0 || len(pts) < 2 || s.dst == nil {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		path.Close()
	}
	s.verts, s.inds = path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], &vector.StrokeOptions{
		Width:      float32(s.st.weight),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 4,
	})
	paintVertices(s.verts, s.st.stroke)
	s.submit()
}

func (s *Surface) submit() {
	if len(s.verts) == 0 || len(s.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = EbitenBlend(s.st.blend)
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = s.AntiAlias
	s.dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &op)
}

// appendFan appends a fan triangulation of a convex polygon: len(pts)
// vertices and 3*(len(pts)-2) indices, hub at vertex 0.
func appendFan(verts []ebiten.Vertex, inds []uint16, pts []sacred.Vec2, p paint) ([]ebiten.Vertex, []uint16) {
	n := len(pts)
	if n < 3 {
		return verts, inds
	}
	base := uint16(len(verts))
	for _, pt := range pts {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: p.r,
			ColorG: p.g,
			ColorB: p.b,
			ColorA: p.a,
		})
	}
	for i := 0; i < n-2; i++ {
		inds = append(inds, base, base+uint16(i+1), base+uint16(i+2))
	}
	return verts, inds
}

// paintVertices maps tessellated vertices onto the white pixel with colour p.
func paintVertices(verts []ebiten.Vertex, p paint) {
	for i := range verts {
		v := &verts[i]
		v.SrcX, v.SrcY = 0.5, 0.5
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = p.r, p.g, p.b, p.a
	}
}

// Ellipse tessellation bounds.
const (
	minEllipseSegments = 24
	maxEllipseSegments = 180
)

// ellipseSegments returns the polygon segment count for an ellipse whose
// larger radius is r: about one segment per 4 px of circumference.
func ellipseSegments(r float64) int {
	n := int(math.Ceil(2 * math.Pi * r / 4))
	return min(max(n, minEllipseSegments), maxEllipseSegments)
}

// appendEllipsePoints appends n points on the ellipse centered at (cx, cy)
// with radii rx and ry, starting at the top and going clockwise.
func appendEllipsePoints(dst []sacred.Vec2, cx, cy, rx, ry float64, n int) []sacred.Vec2 {
	for i := 0; i < n; i++ {
		a := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		dst = append(dst, sacred.Vec2{X: cx + math.Cos(a)*rx, Y: cy + math.Sin(a)*ry})
	}
	return dst
}

// --- White pixel singleton (no sync.Once, the host is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
