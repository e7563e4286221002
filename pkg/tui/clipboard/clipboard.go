// ABOUTME: System clipboard write built on atotto/clipboard
// ABOUTME: WriteFunc is replaceable for tests and headless environments

package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// WriteFunc is the platform copy primitive. Tests and headless environments
// (no display server, no pbcopy/xclip) may replace it.
var WriteFunc = atotto.WriteAll

// Write copies text to the system clipboard.
func Write(text string) error {
	if err := WriteFunc(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard backend is usable on this system.
func Available() bool {
	return !atotto.Unsupported
}
