// ABOUTME: Process is the real Terminal over os.Stdin/Stdout via x/term
// ABOUTME: Tracks saved termios state; resize wiring is per-platform

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// Process is a Terminal backed by the process's stdin and stdout.
type Process struct {
	mu       sync.Mutex
	saved    *term.State
	resizeFn func(width, height int)
}

// NewProcess returns a Process terminal ready for use.
func NewProcess() *Process {
	return &Process{}
}

// EnterRawMode puts stdin into raw mode, remembering the prior state.
func (p *Process) EnterRawMode() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	p.saved = state
	return nil
}

// ExitRawMode restores the saved terminal state. A no-op when raw mode was
// never entered.
func (p *Process) ExitRawMode() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.saved == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), p.saved); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	p.saved = nil
	return nil
}

// Size returns the current terminal dimensions.
func (p *Process) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to stdout.
func (p *Process) Write(b []byte) (int, error) {
	n, err := os.Stdout.Write(b)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// OnResize registers a callback for terminal size changes and starts the
// platform resize listener.
func (p *Process) OnResize(fn func(width, height int)) {
	p.mu.Lock()
	p.resizeFn = fn
	p.mu.Unlock()

	p.startResizeListener()
}
