// ABOUTME: ANSI escape sequence stripping and SGR state tracking
// ABOUTME: Handles CSI, OSC, APC/DCS/PM, and simple two-byte ESC sequences

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence advances past an ANSI escape sequence starting at s[i]
// and returns the index of the first byte after it.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		// CSI: ESC [ ... <final 0x40-0x7E>
		i++
		for i < len(s) {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
			i++
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST
		i++
		for i < len(s) {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	case '(':
		// Designate character set: ESC ( <char>
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST
		i++
		for i < len(s) {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}

// ActiveSGR tracks the current SGR (Select Graphic Rendition) state so that
// styling can be re-applied after a forced line break.
type ActiveSGR struct {
	codes []string
}

// Reset clears all tracked SGR state.
func (a *ActiveSGR) Reset() {
	a.codes = a.codes[:0]
}

// Apply processes one SGR sequence. A reset sequence clears the state.
func (a *ActiveSGR) Apply(seq string) {
	if seq == "\x1b[0m" || seq == "\x1b[m" {
		a.Reset()
		return
	}
	a.codes = append(a.codes, seq)
}

// String returns the combined sequence that restores the current state.
func (a *ActiveSGR) String() string {
	if len(a.codes) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range a.codes {
		b.WriteString(c)
	}
	return b.String()
}
