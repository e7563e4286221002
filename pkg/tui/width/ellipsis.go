// ABOUTME: Multi-line ellipsis truncation for paragraph content
// ABOUTME: TruncateLines wraps text and cuts it to a fixed line count with a trailing ellipsis

package width

// TruncateLines wraps s to maxWidth columns and cuts the result to at most
// maxLines lines. When content is cut, the tail of the last kept line is
// replaced with an ellipsis. The second return value reports whether
// truncation occurred. The returned slice always has at least one line.
func TruncateLines(s string, maxLines, maxWidth int) ([]string, bool) {
	if maxWidth <= 0 {
		return []string{""}, false
	}
	lines := Wrap(s, maxWidth)
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines, false
	}

	kept := make([]string, maxLines)
	copy(kept, lines[:maxLines])

	// Appending the ellipsis may overflow the column budget; TruncateToWidth
	// then trims back one cell. If it fits, the line passes through intact.
	last := kept[maxLines-1]
	kept[maxLines-1] = TruncateToWidth(last+"…", maxWidth)
	return kept, true
}
