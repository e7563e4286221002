// ABOUTME: Tests for leveled logging output and level gating
// ABOUTME: Captures output via SetOutput to verify emission

package log

import (
	"strings"
	"testing"
)

func TestWarn_Emitted(t *testing.T) {
	var buf strings.Builder
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Warn("something %s", "odd")
	if got := buf.String(); !strings.Contains(got, "[WARN] something odd") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_GatedByLevel(t *testing.T) {
	var buf strings.Builder
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	old := GetLevel()
	defer SetLevel(old)

	SetLevel(LevelWarn)
	Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug emitted at warn level: %q", buf.String())
	}

	SetLevel(LevelDebug)
	Debug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Errorf("debug not emitted at debug level: %q", buf.String())
	}
}

func TestError_AlwaysEmitted(t *testing.T) {
	var buf strings.Builder
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	old := GetLevel()
	defer SetLevel(old)

	SetLevel(LevelError + 4)
	Error("boom")
	if !strings.Contains(buf.String(), "[ERROR] boom") {
		t.Errorf("error not emitted: %q", buf.String())
	}
}
