// ABOUTME: Tests for VisibleWidth measurement and ANSI stripping
// ABOUTME: Covers ASCII fast path, escape sequences, wide runes, and emoji

package width

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"ansi only", "\x1b[31m", 0},
		{"ansi wrapped", "\x1b[31mred\x1b[0m", 3},
		{"wide cjk", "日本", 4},
		{"mixed", "a日b", 4},
		{"emoji", "🙂", 2},
		{"osc sequence", "\x1b]0;title\x07text", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := VisibleWidth(tt.in); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVisibleWidth_CacheStable(t *testing.T) {
	t.Parallel()

	s := "日本語テキスト"
	first := VisibleWidth(s)
	second := VisibleWidth(s)
	if first != second {
		t.Errorf("cached width %d differs from first measurement %d", second, first)
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "plain", "plain"},
		{"sgr", "\x1b[1mbold\x1b[0m", "bold"},
		{"nested", "a\x1b[31mb\x1b[32mc\x1b[0md", "abcd"},
		{"osc bel", "\x1b]8;;http://x\x07link", "link"},
		{"apc", "\x1b_marker\x1b\\after", "after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestActiveSGR(t *testing.T) {
	t.Parallel()

	var sgr ActiveSGR
	sgr.Apply("\x1b[1m")
	sgr.Apply("\x1b[31m")
	if got := sgr.String(); got != "\x1b[1m\x1b[31m" {
		t.Errorf("unexpected SGR state: %q", got)
	}
	sgr.Apply("\x1b[0m")
	if got := sgr.String(); got != "" {
		t.Errorf("expected reset to clear state, got %q", got)
	}
}
