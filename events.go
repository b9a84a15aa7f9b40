package sacred

import "time"

// RegenerationCause records what triggered a regeneration.
type RegenerationCause uint8

const (
	CauseStart  RegenerationCause = iota // first frame
	CauseClick                           // pointer press outside any overlay
	CauseAuto                            // growth interval elapsed
	CauseManual                          // host called Regenerate
)

func (c RegenerationCause) String() string {
	switch c {
	case CauseStart:
		return "start"
	case CauseClick:
		return "click"
	case CauseAuto:
		return "auto"
	case CauseManual:
		return "manual"
	}
	return "unknown"
}

// RegenerationEvent describes the snapshot produced by a regeneration.
type RegenerationEvent struct {
	Cause      RegenerationCause
	At         time.Time
	Generation GenerationState
	Patterns   [CellCount]PatternName
	Shapes     [CellCount]ShapeKind
}

// EventSink is the optional bridge for regeneration events. When set on a
// Config, every regeneration is forwarded to it after the new snapshot is
// installed.
type EventSink interface {
	EmitRegeneration(event RegenerationEvent)
}
