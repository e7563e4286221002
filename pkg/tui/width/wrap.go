// ABOUTME: ANSI-aware wrapping and single-line truncation
// ABOUTME: Wrap breaks at column boundaries carrying SGR state; TruncateToWidth ellipsizes

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks s into lines of at most maxWidth visible columns. ANSI escape
// sequences are preserved and do not count toward width; active SGR styling
// carries over to continuation lines. Words are broken if they exceed maxWidth.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	col := 0
	var sgr ActiveSGR

	breakLine := func() {
		lines = append(lines, line.String())
		line.Reset()
		col = 0
		if prefix := sgr.String(); prefix != "" {
			line.WriteString(prefix)
		}
	}

	i := 0
	for i < len(s) {
		if s[i] == '\n' {
			breakLine()
			i++
			continue
		}
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			seq := s[i:end]
			sgr.Apply(seq)
			line.WriteString(seq)
			i = end
			continue
		}

		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		w := graphemeWidth(cluster)
		if col+w > maxWidth {
			breakLine()
		}
		line.WriteString(cluster)
		col += w
		i += len(s[i:]) - len(rest)
	}

	lines = append(lines, line.String())
	return lines
}

// TruncateToWidth truncates s to at most maxWidth visible columns. When
// truncation occurs the last visible cell is replaced with an ellipsis.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1 // room for the ellipsis
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m") // reset before the ellipsis
	b.WriteRune('…')
	return b.String()
}
