package sacred

import (
	"log/slog"
	"time"
)

var discardLogger = slog.New(slog.DiscardHandler)

// frameStats holds per-frame timing and command metrics.
// Only populated when Config.Debug is true.
type frameStats struct {
	layoutTime   time.Duration
	paintTime    time.Duration
	commandCount int
	drawCount    int
	cellCount    int
	degraded     int
}

// debugLog reports frame stats at debug level.
func (sk *Sketch) debugLog(stats frameStats) {
	if !sk.cfg.Debug {
		return
	}
	sk.logger.Debug("frame",
		"layout", stats.layoutTime,
		"paint", stats.paintTime,
		"total", stats.layoutTime+stats.paintTime,
		"commands", stats.commandCount,
		"draws", stats.drawCount,
		"cells", stats.cellCount,
		"degraded", stats.degraded,
	)
}

// countDraws counts commands that produce pixels.
func countDraws(cmds []DrawCommand) int {
	n := 0
	for i := range cmds {
		if cmds[i].Type.IsDraw() {
			n++
		}
	}
	return n
}
