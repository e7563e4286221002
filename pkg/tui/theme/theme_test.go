// ABOUTME: Tests for Color application and YAML theme loading
// ABOUTME: Verifies ANSI wrapping, modifier composition, and default merging

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColor_Apply(t *testing.T) {
	t.Parallel()

	c := NewColor("\x1b[31m")
	if got := c.Apply("x"); got != "\x1b[31mx\x1b[0m" {
		t.Errorf("unexpected styled text: %q", got)
	}
	if got := (Color{}).Apply("x"); got != "x" {
		t.Errorf("empty color should pass text through, got %q", got)
	}
}

func TestColor_Modifiers(t *testing.T) {
	t.Parallel()

	c := NewColor("\x1b[31m")
	if got := c.Bold().Code(); got != "\x1b[1m\x1b[31m" {
		t.Errorf("unexpected bold code: %q", got)
	}
	if got := c.Dim().Code(); got != "\x1b[2m\x1b[31m" {
		t.Errorf("unexpected dim code: %q", got)
	}
}

func TestParse_MergesDefaults(t *testing.T) {
	t.Parallel()

	th, err := Parse([]byte("name: custom\npalette:\n  danger: \"\\e[91m\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("unexpected name: %q", th.Name)
	}
	if th.Palette.Danger.Code() != "\x1b[91m" {
		t.Errorf("danger not overridden: %q", th.Palette.Danger.Code())
	}
	// Unset fields inherit defaults.
	if th.Palette.Secondary.Code() != DefaultPalette().Secondary.Code() {
		t.Errorf("secondary should fall back to default, got %q", th.Palette.Secondary.Code())
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("palette: [not, a, map]")); err == nil {
		t.Error("expected error for malformed theme")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	data := "name: filetheme\npalette:\n  warning: \"\\e[93m\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "filetheme" {
		t.Errorf("unexpected name: %q", th.Name)
	}
	if th.Palette.Warning.Code() != "\x1b[93m" {
		t.Errorf("warning not loaded: %q", th.Palette.Warning.Code())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
