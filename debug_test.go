package sacred

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestCountDraws(t *testing.T) {
	cmds := []DrawCommand{
		{Type: CommandPush},
		{Type: CommandFill},
		{Type: CommandRect},
		{Type: CommandEllipse},
		{Type: CommandPolygon},
		{Type: CommandLine},
		{Type: CommandClear},
		{Type: CommandPop},
	}
	if got := countDraws(cmds); got != 4 {
		t.Errorf("countDraws = %d, want 4", got)
	}
	if got := countDraws(nil); got != 0 {
		t.Errorf("countDraws(nil) = %d, want 0", got)
	}
}

func TestDebugOff_NoFrameLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sk, err := NewSketch(Config{Variant: VariantBlend, Rand: NewRand(1), Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	sk.OnResize(400, 400)
	sk.Tick(t0)
	if strings.Contains(buf.String(), "msg=frame") {
		t.Errorf("frame stats logged with Debug off:\n%s", buf.String())
	}
}
