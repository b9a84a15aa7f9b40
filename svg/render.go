package svg

import (
	"fmt"
	"io"

	"github.com/phanxgames/sacred"
)

// errWriter remembers the first write error so the document can be
// written without checking every element.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render writes cmds as a complete width x height SVG document to w.
func Render(w io.Writer, width, height int, cmds []sacred.DrawCommand) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg render: invalid size %dx%d", width, height)
	}
	ew := &errWriter{w: w}
	s := NewSurface(ew)
	s.Begin(width, height)
	sacred.Replay(cmds, s)
	s.End()
	if ew.err != nil {
		return fmt.Errorf("svg render: %w", ew.err)
	}
	return nil
}
