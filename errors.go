package sacred

import "errors"

// Sentinel errors. Call sites wrap them with detail; branch with errors.Is.
var (
	// ErrInvalidShapeParameter reports a degenerate shape: non-positive size,
	// negative height, or a polygon with fewer than three sides.
	ErrInvalidShapeParameter = errors.New("sacred: invalid shape parameter")

	// ErrUnknownPattern reports a pattern name with no registered recipe.
	ErrUnknownPattern = errors.New("sacred: unknown pattern")

	// ErrInsufficientUniverse reports a distinct draw larger than its source.
	ErrInsufficientUniverse = errors.New("sacred: universe smaller than sample")

	// ErrNotStarted reports a Sketch mutation before its first Tick.
	ErrNotStarted = errors.New("sacred: sketch not started")
)
