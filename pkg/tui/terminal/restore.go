// ABOUTME: Panic recovery that restores the terminal before reporting
// ABOUTME: Deferred in main and in goroutines that run during raw mode

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic is deferred at the top of main. On panic it shows the
// cursor, exits raw mode, prints the panic with its stack, and exits 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = os.Stdout.Write([]byte("\x1b[?25h"))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine is deferred in background goroutines that run while the
// terminal is raw. It restores the terminal but does not exit, leaving
// shutdown to the main goroutine.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = os.Stdout.Write([]byte("\x1b[?25h"))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
