// ABOUTME: Tests for terminal key parsing
// ABOUTME: Covers runes, control bytes, UTF-8, and escape sequences

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"empty", "", Key{Type: KeyUnknown}},
		{"rune", "a", Key{Type: KeyRune, Rune: 'a'}},
		{"enter", "\r", Key{Type: KeyEnter}},
		{"tab", "\t", Key{Type: KeyTab}},
		{"backspace", "\x7f", Key{Type: KeyBackspace}},
		{"escape", "\x1b", Key{Type: KeyEscape}},
		{"ctrl-c", "\x03", Key{Type: KeyCtrlC, Ctrl: true}},
		{"utf8 rune", "é", Key{Type: KeyRune, Rune: 'é'}},
		{"arrow up", "\x1b[A", Key{Type: KeyUp}},
		{"arrow left ss3", "\x1bOD", Key{Type: KeyLeft}},
		{"delete", "\x1b[3~", Key{Type: KeyDelete}},
		{"backtab", "\x1b[Z", Key{Type: KeyBackTab, Shift: true}},
		{"alt letter", "\x1bx", Key{Type: KeyRune, Rune: 'x', Alt: true}},
		{"garbage csi", "\x1b[99z", Key{Type: KeyUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseKey(tt.in); got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	if got := (Key{Type: KeyRune, Rune: 'q'}).String(); got != "q" {
		t.Errorf("expected q, got %q", got)
	}
	if got := (Key{Type: KeyRune, Rune: 'q', Alt: true}).String(); got != "Alt+q" {
		t.Errorf("expected Alt+q, got %q", got)
	}
	if got := (Key{Type: KeyEnter}).String(); got != "Enter" {
		t.Errorf("expected Enter, got %q", got)
	}
}
