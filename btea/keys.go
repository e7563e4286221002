// ABOUTME: Translates bubbletea key messages into raw terminal byte sequences
// ABOUTME: Components parse raw input, so the adapter re-encodes what tea decoded

package btea

import tea "github.com/charmbracelet/bubbletea"

// keyToRaw converts a tea.KeyMsg back into the raw byte sequence a terminal
// would have sent. Unknown keys map to empty, which components ignore.
func keyToRaw(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return "\x1b" + string(msg.Runes)
		}
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	case tea.KeyEnter:
		return "\r"
	case tea.KeyTab:
		return "\t"
	case tea.KeyEsc:
		return "\x1b"
	case tea.KeyBackspace:
		return "\x7f"
	case tea.KeyDelete:
		return "\x1b[3~"
	case tea.KeyUp:
		return "\x1b[A"
	case tea.KeyDown:
		return "\x1b[B"
	case tea.KeyRight:
		return "\x1b[C"
	case tea.KeyLeft:
		return "\x1b[D"
	case tea.KeyHome:
		return "\x1b[H"
	case tea.KeyEnd:
		return "\x1b[F"
	case tea.KeyCtrlA:
		return "\x01"
	case tea.KeyCtrlE:
		return "\x05"
	case tea.KeyCtrlK:
		return "\x0b"
	case tea.KeyCtrlW:
		return "\x17"
	case tea.KeyCtrlY:
		return "\x19"
	case tea.KeyCtrlZ:
		return "\x1a"
	}
	return ""
}
