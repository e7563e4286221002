// ABOUTME: Tests for multi-line ellipsis truncation
// ABOUTME: Verifies line budgets, trailing ellipsis, and passthrough behavior

package width

import (
	"strings"
	"testing"
)

func TestTruncateLines_NoTruncation(t *testing.T) {
	t.Parallel()

	lines, cut := TruncateLines("short text", 3, 20)
	if cut {
		t.Error("expected no truncation")
	}
	if len(lines) != 1 || lines[0] != "short text" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestTruncateLines_CutsToBudget(t *testing.T) {
	t.Parallel()

	lines, cut := TruncateLines(strings.Repeat("abcde ", 20), 2, 10)
	if !cut {
		t.Fatal("expected truncation")
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Errorf("expected trailing ellipsis on last line, got %q", lines[1])
	}
	for i, line := range lines {
		if w := VisibleWidth(line); w > 10 {
			t.Errorf("line %d width %d exceeds budget 10 (%q)", i, w, line)
		}
	}
}

func TestTruncateLines_ExactFit(t *testing.T) {
	t.Parallel()

	// Exactly two wrapped lines with a budget of two: no cut, no ellipsis.
	lines, cut := TruncateLines("aaaabbbb", 2, 4)
	if cut {
		t.Errorf("expected no truncation for exact fit, got %v", lines)
	}
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %v", lines)
	}
}

func TestTruncateLines_ZeroBudgetMeansUnlimited(t *testing.T) {
	t.Parallel()

	lines, cut := TruncateLines("aaaabbbbcccc", 0, 4)
	if cut {
		t.Error("expected no truncation with zero line budget")
	}
	if len(lines) != 3 {
		t.Errorf("expected 3 wrapped lines, got %v", lines)
	}
}

func TestTruncateLines_DegenerateWidth(t *testing.T) {
	t.Parallel()

	lines, cut := TruncateLines("anything", 2, 0)
	if cut || len(lines) != 1 || lines[0] != "" {
		t.Errorf("expected single empty line for zero width, got %v (cut=%v)", lines, cut)
	}
}
