package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWithWriters(&out, &errOut, false)

	l.Info("found %d files", 3)
	l.Warn("careful")
	l.Error("broken %s", "pipe")
	l.Debug("hidden")

	if !strings.Contains(out.String(), "[INFO]") || !strings.Contains(out.String(), "found 3 files") {
		t.Errorf("stdout missing info line: %q", out.String())
	}
	if !strings.Contains(out.String(), "[WARN]") {
		t.Errorf("stdout missing warn line: %q", out.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Errorf("error line leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR]") || !strings.Contains(errOut.String(), "broken pipe") {
		t.Errorf("stderr missing error line: %q", errOut.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug line written without verbose: %q", out.String())
	}
}

func TestLogger_DebugVerbose(t *testing.T) {
	var out bytes.Buffer
	l := NewWithWriters(&out, &out, true)
	l.Debug("visible")
	if !strings.Contains(out.String(), "[DEBUG]") || !strings.Contains(out.String(), "visible") {
		t.Errorf("debug line missing: %q", out.String())
	}
}
