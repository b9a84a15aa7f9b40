package sacred

// Surface is the rendering capability the engine draws through. It mirrors
// an immediate-mode 2D canvas: style state (fill, stroke, weight, blend) and
// a translation offset that Push/Pop save and restore.
//
// Implementations: Recorder (this package), screen.Surface (Ebitengine) and
// svg.Surface (SVG documents).
type Surface interface {
	Push()
	Pop()
	Translate(dx, dy float64)

	SetFill(c HSB)
	NoFill()
	SetStroke(c HSB)
	NoStroke()
	SetStrokeWeight(px float64)
	StrokeWeight() float64
	SetBlendMode(m BlendMode)

	// Clear erases the whole target to transparent.
	Clear()
	DrawRect(x, y, w, h float64)
	// DrawEllipse draws an ellipse centered at (cx, cy) with full width w and
	// height h.
	DrawEllipse(cx, cy, w, h float64)
	// DrawPolygon draws the closed contour through points.
	DrawPolygon(points []Vec2)
	DrawLine(x1, y1, x2, y2 float64)
}

// CommandType identifies a recorded surface operation.
type CommandType uint8

const (
	CommandPush           CommandType = iota // save style and transform
	CommandPop                               // restore style and transform
	CommandTranslate                         // move the origin by (X1, Y1)
	CommandFill                              // set fill colour
	CommandNoFill                            // disable fill
	CommandStroke                            // set stroke colour
	CommandNoStroke                          // disable stroke
	CommandStrokeWeight                      // set stroke weight to Weight
	CommandBlend                             // set blend mode
	CommandClear                             // clear the target
	CommandRect                              // rect at (X1, Y1) size (X2, Y2)
	CommandEllipse                           // ellipse at (X1, Y1) size (X2, Y2)
	CommandPolygon                           // closed polygon through Points
	CommandLine                              // line (X1, Y1) to (X2, Y2)
)

// IsDraw reports whether the command produces pixels.
func (t CommandType) IsDraw() bool {
	switch t {
	case CommandRect, CommandEllipse, CommandPolygon, CommandLine:
		return true
	}
	return false
}

// DrawCommand is one recorded surface call. Field meaning depends on Type.
// Coordinates are local to the translation in effect when the call was made.
type DrawCommand struct {
	Type   CommandType
	X1, Y1 float64
	X2, Y2 float64
	Weight float64
	Color  HSB
	Blend  BlendMode
	Points []Vec2
}

type recorderState struct {
	weight float64
	offset Vec2
}

// Recorder is a Surface that records every call as a DrawCommand. It tracks
// stroke weight and translation so decorations can query the ambient weight
// and tests can inspect absolute positions.
type Recorder struct {
	commands []DrawCommand
	state    recorderState
	stack    []recorderState
}

// NewRecorder returns an empty recorder with a stroke weight of 1.
func NewRecorder() *Recorder {
	return &Recorder{state: recorderState{weight: 1}}
}

// Commands returns the recorded commands. The returned slice MUST NOT be
// mutated by the caller.
func (r *Recorder) Commands() []DrawCommand {
	return r.commands
}

// Reset drops recorded commands and restores the initial state. The command
// buffer is reused (high-water mark, never shrinks).
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stack = r.stack[:0]
	r.state = recorderState{weight: 1}
}

// Offset returns the current accumulated translation.
func (r *Recorder) Offset() Vec2 {
	return r.state.offset
}

// Count returns how many recorded commands have the given type.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for i := range r.commands {
		if r.commands[i].Type == t {
			n++
		}
	}
	return n
}

func (r *Recorder) emit(cmd DrawCommand) {
	r.commands = append(r.commands, cmd)
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.state)
	r.emit(DrawCommand{Type: CommandPush})
}

// Pop restores the last pushed state. Unbalanced pops are recorded but leave
// the state untouched.
func (r *Recorder) Pop() {
	if n := len(r.stack); n > 0 {
		r.state = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.emit(DrawCommand{Type: CommandPop})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.state.offset = r.state.offset.Add(Vec2{dx, dy})
	r.emit(DrawCommand{Type: CommandTranslate, X1: dx, Y1: dy})
}

func (r *Recorder) SetFill(c HSB) { r.emit(DrawCommand{Type: CommandFill, Color: c}) }
func (r *Recorder) NoFill()       { r.emit(DrawCommand{Type: CommandNoFill}) }
func (r *Recorder) SetStroke(c HSB) {
	r.emit(DrawCommand{Type: CommandStroke, Color: c})
}
func (r *Recorder) NoStroke() { r.emit(DrawCommand{Type: CommandNoStroke}) }

func (r *Recorder) SetStrokeWeight(px float64) {
	r.state.weight = px
	r.emit(DrawCommand{Type: CommandStrokeWeight, Weight: px})
}

func (r *Recorder) StrokeWeight() float64 { return r.state.weight }

func (r *Recorder) SetBlendMode(m BlendMode) {
	r.emit(DrawCommand{Type: CommandBlend, Blend: m})
}

func (r *Recorder) Clear() { r.emit(DrawCommand{Type: CommandClear}) }

func (r *Recorder) DrawRect(x, y, w, h float64) {
	r.emit(DrawCommand{Type: CommandRect, X1: x, Y1: y, X2: w, Y2: h})
}

func (r *Recorder) DrawEllipse(cx, cy, w, h float64) {
	r.emit(DrawCommand{Type: CommandEllipse, X1: cx, Y1: cy, X2: w, Y2: h})
}

// DrawPolygon records a copy of points; callers may reuse their buffer.
func (r *Recorder) DrawPolygon(points []Vec2) {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	r.emit(DrawCommand{Type: CommandPolygon, Points: pts})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.emit(DrawCommand{Type: CommandLine, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// Replay issues cmds against s in order.
func Replay(cmds []DrawCommand, s Surface) {
	for i := range cmds {
		c := &cmds[i]
		switch c.Type {
		case CommandPush:
			s.Push()
		case CommandPop:
			s.Pop()
		case CommandTranslate:
			s.Translate(c.X1, c.Y1)
		case CommandFill:
			s.SetFill(c.Color)
		case CommandNoFill:
			s.NoFill()
		case CommandStroke:
			s.SetStroke(c.Color)
		case CommandNoStroke:
			s.NoStroke()
		case CommandStrokeWeight:
			s.SetStrokeWeight(c.Weight)
		case CommandBlend:
			s.SetBlendMode(c.Blend)
		case CommandClear:
			s.Clear()
		case CommandRect:
			s.DrawRect(c.X1, c.Y1, c.X2, c.Y2)
		case CommandEllipse:
			s.DrawEllipse(c.X1, c.Y1, c.X2, c.Y2)
		case CommandPolygon:
			s.DrawPolygon(c.Points)
		case CommandLine:
			s.DrawLine(c.X1, c.Y1, c.X2, c.Y2)
		}
	}
}
