package sacred

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderTranslateStack(t *testing.T) {
	rec := NewRecorder()
	rec.Translate(10, 20)
	rec.Push()
	rec.Translate(5, 5)
	assertVec(t, "inner offset", rec.Offset(), Vec2{15, 25})
	rec.SetStrokeWeight(3)
	rec.Pop()
	assertVec(t, "restored offset", rec.Offset(), Vec2{10, 20})
	assertNear(t, "restored weight", rec.StrokeWeight(), 1)
}

func TestRecorderUnbalancedPop(t *testing.T) {
	rec := NewRecorder()
	rec.Translate(1, 1)
	rec.Pop()
	assertVec(t, "offset", rec.Offset(), Vec2{1, 1})
	if rec.Count(CommandPop) != 1 {
		t.Error("pop should still be recorded")
	}
}

func TestRecorderPolygonCopies(t *testing.T) {
	rec := NewRecorder()
	pts := []Vec2{{0, 0}, {1, 0}, {0, 1}}
	rec.DrawPolygon(pts)
	pts[0] = Vec2{9, 9}
	if got := rec.Commands()[0].Points[0]; got != (Vec2{}) {
		t.Errorf("recorded point changed to %v", got)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.Push()
	rec.SetStrokeWeight(5)
	rec.DrawRect(0, 0, 1, 1)
	rec.Reset()
	if len(rec.Commands()) != 0 {
		t.Error("commands not cleared")
	}
	assertNear(t, "weight", rec.StrokeWeight(), 1)
}

func TestReplay(t *testing.T) {
	src := NewRecorder()
	src.Clear()
	src.SetBlendMode(BlendScreen)
	src.Push()
	src.Translate(10, 10)
	src.SetFill(NewHSB(10, 20, 30))
	src.NoStroke()
	src.DrawRect(0, 0, 5, 5)
	src.NoFill()
	src.SetStroke(NewHSB(40, 50, 60))
	src.SetStrokeWeight(2)
	src.DrawEllipse(1, 2, 3, 4)
	src.DrawPolygon([]Vec2{{0, 0}, {1, 1}, {2, 0}})
	src.DrawLine(0, 0, 7, 7)
	src.Pop()

	dst := NewRecorder()
	Replay(src.Commands(), dst)
	assert.Equal(t, src.Commands(), dst.Commands())
	assert.Equal(t, 4, countDraws(dst.Commands()))
}
