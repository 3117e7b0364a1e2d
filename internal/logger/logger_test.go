package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf strings.Builder
	l := New(&buf)
	l.Infof("read %d bytes", 12)
	l.Errorf("failed: %s", "boom")

	out := buf.String()
	if !strings.Contains(out, "[INFO] read 12 bytes\n") {
		t.Errorf("missing info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed: boom\n") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestDiscard(t *testing.T) {
	var buf strings.Builder
	l := Discard(&buf)
	l.Infof("hidden")
	l.Errorf("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("unexpected info line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] shown\n") {
		t.Errorf("missing error line in %q", out)
	}
}
