package controls

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !Verbose() || LogLevel().Level() != slog.LevelDebug {
		t.Errorf("SetVerbose(true): level = %v", LogLevel().Level())
	}
	SetVerbose(false)
	if Verbose() {
		t.Error("SetVerbose(false): still verbose")
	}
}

func TestPanelLoggerReachesGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewPanel(WithLogger(logger))
	p.Group("lighting", func(g *Group) {
		g.Float("intensity", 1, Range{Min: 0, Max: 10}, nil)
	})
	p.Get("lighting").Bytes()

	out := buf.String()
	for _, msg := range []string{"group registered", "control registered", "group repacked"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}
