package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: LogLevelDebug, Format: "json", Output: &buf})

	logger.Info("session created", "session_id", "brave-falcon-42")

	out := buf.String()
	if !strings.Contains(out, `"msg":"session created"`) {
		t.Fatalf("expected message in output, got %s", out)
	}
	if !strings.Contains(out, `"session_id":"brave-falcon-42"`) {
		t.Fatalf("expected attribute in output, got %s", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: LogLevelWarn, Format: "text", Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Error("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info suppressed, got %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("expected error emitted, got %s", out)
	}
}

func TestWith_AttachesAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := New(&Config{Level: LogLevelInfo, Format: "json", Output: &buf})

	scoped := With(base, "component", "hub")
	scoped.Info("agent registered", "agent_id", "a1")

	out := buf.String()
	if !strings.Contains(out, `"component":"hub"`) || !strings.Contains(out, `"agent_id":"a1"`) {
		t.Fatalf("expected both fixed and call attrs, got %s", out)
	}
}

func TestLogLevel_String(t *testing.T) {
	cases := map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
		LogLevel(99):  "UNKNOWN",
	}
	for level, want := range cases {
		if level.String() != want {
			t.Errorf("String() for %d: expected %s, got %s", level, want, level.String())
		}
	}
}
