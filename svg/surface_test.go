package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/sacred"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, draw func(s *Surface)) string {
	t.Helper()
	var buf bytes.Buffer
	s := NewSurface(&buf)
	s.Begin(100, 100)
	draw(s)
	s.End()
	return buf.String()
}

func TestSurfaceDocument(t *testing.T) {
	out := render(t, func(s *Surface) {})
	assert.Contains(t, out, `<svg width="100" height="100"`)
	assert.Contains(t, out, `<g transform="scale(0.1)">`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSurfaceRectTranslated(t *testing.T) {
	out := render(t, func(s *Surface) {
		s.Push()
		s.Translate(10, 20)
		s.SetFill(sacred.NewHSB(0, 100, 100))
		s.NoStroke()
		s.DrawRect(0, 0, 5.25, 5)
		s.Pop()
		s.DrawRect(0, 0, 1, 1)
	})
	assert.Contains(t, out, `x="100" y="200" width="53" height="50"`)
	assert.Contains(t, out, `style="fill:#ff0000;stroke:none"`)
	// Pop restores the default style and origin.
	assert.Contains(t, out, `x="0" y="0" width="10" height="10"`)
	assert.Contains(t, out, `fill:#ffffff;stroke:#000000;stroke-width:10`)
}

func TestSurfaceEllipseRadii(t *testing.T) {
	out := render(t, func(s *Surface) {
		s.DrawEllipse(50, 50, 40, 20)
	})
	assert.Contains(t, out, `cx="500" cy="500" rx="200" ry="100"`)
}

func TestSurfacePolygonAndLine(t *testing.T) {
	out := render(t, func(s *Surface) {
		s.Translate(1, 1)
		s.DrawPolygon([]sacred.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}})
		s.DrawLine(0, 0, 2, 2)
	})
	assert.Contains(t, out, `10,10 110,10 10,110`)
	assert.Contains(t, out, `x1="10" y1="10" x2="30" y2="30"`)
	assert.Contains(t, out, `fill:none;stroke:#000000`)
}

func TestSurfaceOpacityAndBlend(t *testing.T) {
	out := render(t, func(s *Surface) {
		s.SetBlendMode(sacred.BlendMultiply)
		s.SetFill(sacred.NewHSB(240, 100, 100).WithAlpha(20))
		s.SetStrokeWeight(6)
		s.DrawRect(0, 0, 10, 10)
	})
	assert.Contains(t, out, `fill:#0000ff;fill-opacity:0.200`)
	assert.Contains(t, out, `stroke-width:60`)
	assert.Contains(t, out, `mix-blend-mode:multiply`)
}

func TestBlendCSS(t *testing.T) {
	for _, m := range sacred.BlendModes() {
		assert.NotEmpty(t, BlendCSS(m), m.String())
	}
	assert.Equal(t, "plus-lighter", BlendCSS(sacred.BlendAdd))
	assert.Equal(t, "darken", BlendCSS(sacred.BlendDarkest))
	assert.Equal(t, "exclusion", BlendCSS(sacred.BlendExclusion))
	assert.Equal(t, "difference", BlendCSS(sacred.BlendDifference))
	assert.Equal(t, "overlay", BlendCSS(sacred.BlendOverlay))
	assert.Equal(t, "hard-light", BlendCSS(sacred.BlendHardLight))
	assert.Equal(t, "soft-light", BlendCSS(sacred.BlendSoftLight))
	assert.Equal(t, "color-dodge", BlendCSS(sacred.BlendDodge))
	assert.Equal(t, "color-burn", BlendCSS(sacred.BlendBurn))
	assert.Equal(t, "normal", BlendCSS(sacred.BlendMode(200)))
}

func TestRenderSketchFrame(t *testing.T) {
	sk, err := sacred.NewSketch(sacred.Config{Variant: sacred.VariantComplementary, Seed: "svg"})
	require.NoError(t, err)
	sk.OnResize(400, 400)
	frame := sk.Tick(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Empty(t, frame.Errors)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, 400, 400, frame.Commands))
	out := buf.String()
	// Two cell backgrounds.
	assert.Equal(t, 2, strings.Count(out, "<rect"))
	assert.Contains(t, out, "</svg>")
}

func TestRenderInvalidSize(t *testing.T) {
	err := Render(&bytes.Buffer{}, 0, 10, nil)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	err := Render(failingWriter{}, 10, 10, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
