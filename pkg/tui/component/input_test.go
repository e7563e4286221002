// ABOUTME: Tests for the single-line inline editor
// ABOUTME: Covers insertion, deletion, cursor movement, kill ring, and undo

package component

import (
	"strings"
	"testing"

	"github.com/mauromedda/typeset/pkg/tui"
)

func TestInput_TypeAndBackspace(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.HandleInput("h")
	inp.HandleInput("i")
	if inp.Text() != "hi" {
		t.Fatalf("expected %q, got %q", "hi", inp.Text())
	}

	inp.HandleInput("\x7f")
	if inp.Text() != "h" {
		t.Errorf("expected %q after backspace, got %q", "h", inp.Text())
	}
}

func TestInput_InsertAtCursor(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("ac")
	inp.HandleInput("\x1b[D") // left
	inp.HandleInput("b")
	if inp.Text() != "abc" {
		t.Errorf("expected mid-insertion, got %q", inp.Text())
	}
}

func TestInput_HomeEndAndDelete(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("abc")
	inp.HandleInput("\x01") // Ctrl+A = home
	if inp.CursorPos() != 0 {
		t.Fatalf("expected cursor at 0, got %d", inp.CursorPos())
	}
	inp.HandleInput("\x1b[3~") // delete forward
	if inp.Text() != "bc" {
		t.Errorf("expected forward delete, got %q", inp.Text())
	}
	inp.HandleInput("\x05") // Ctrl+E = end
	if inp.CursorPos() != len("bc") {
		t.Errorf("expected cursor at end, got %d", inp.CursorPos())
	}
}

func TestInput_KillAndYank(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("hello world")
	inp.HandleInput("\x01") // home
	inp.HandleInput("\x0b") // kill to end
	if inp.Text() != "" {
		t.Fatalf("expected empty after kill, got %q", inp.Text())
	}
	inp.HandleInput("\x19") // yank
	if inp.Text() != "hello world" {
		t.Errorf("expected yank to restore, got %q", inp.Text())
	}
}

func TestInput_DeleteWordBackward(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("one two three")
	inp.HandleInput("\x17") // Ctrl+W
	if inp.Text() != "one two " {
		t.Errorf("expected last word gone, got %q", inp.Text())
	}
	inp.HandleInput("\x17")
	if inp.Text() != "one " {
		t.Errorf("expected second word gone, got %q", inp.Text())
	}
}

func TestInput_Undo(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("base")
	inp.HandleInput("x")
	if inp.Text() != "basex" {
		t.Fatalf("setup failed, got %q", inp.Text())
	}
	inp.HandleInput("\x1a") // Ctrl+Z
	if inp.Text() != "base" {
		t.Errorf("expected undo to revert insertion, got %q", inp.Text())
	}
}

func TestInput_RenderFocusedShowsCursorMarker(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("abc")
	inp.SetFocused(true)

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	inp.Render(buf, 40)

	if len(buf.Lines) != 1 || !strings.Contains(buf.Lines[0], tui.CursorMarker) {
		t.Errorf("expected cursor marker in focused render, got %q", buf.Lines)
	}
}

func TestInput_RenderUnfocusedTruncates(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText("a very long line of text that exceeds the width")
	inp.SetFocused(false)

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	inp.Render(buf, 10)

	if len(buf.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(buf.Lines))
	}
	if strings.Contains(buf.Lines[0], tui.CursorMarker) {
		t.Error("unfocused render must not place a cursor")
	}
	if !strings.HasSuffix(buf.Lines[0], "…") {
		t.Errorf("expected truncation ellipsis, got %q", buf.Lines[0])
	}
}

func TestInput_Placeholder(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetPlaceholder("type here")
	inp.SetFocused(true)

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	inp.Render(buf, 40)

	if !strings.Contains(buf.Lines[0], "type here") {
		t.Errorf("expected placeholder, got %q", buf.Lines[0])
	}
}

func TestInput_ScrollKeepsCursorVisible(t *testing.T) {
	t.Parallel()

	inp := NewInput()
	inp.SetText(strings.Repeat("x", 30))
	inp.SetFocused(true)

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	inp.Render(buf, 10)

	line := buf.Lines[0]
	if !strings.HasSuffix(line, tui.CursorMarker) {
		t.Errorf("cursor at end should stay visible, got %q", line)
	}
	visible := strings.ReplaceAll(line, tui.CursorMarker, "")
	if len(visible) > 10 {
		t.Errorf("visible text exceeds width: %d runes", len(visible))
	}
}
