// ABOUTME: Virtual is an in-memory Terminal for tests
// ABOUTME: Captures output and counts raw-mode transitions

package terminal

import (
	"bytes"
	"sync"
)

// Virtual is a fake Terminal. It records written output, tracks raw-mode
// transitions, and lets tests drive resize events.
type Virtual struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	width    int
	height   int
	raw      bool
	resizeFn func(width, height int)
	enters   int
	exits    int
}

// NewVirtual returns a Virtual terminal with the given dimensions.
func NewVirtual(width, height int) *Virtual {
	return &Virtual{width: width, height: height}
}

func (v *Virtual) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.raw = true
	v.enters++
	return nil
}

func (v *Virtual) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.raw = false
	v.exits++
	return nil
}

func (v *Virtual) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height, nil
}

func (v *Virtual) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buf.Write(p)
}

func (v *Virtual) OnResize(fn func(width, height int)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resizeFn = fn
}

// Output returns everything written so far.
func (v *Virtual) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buf.String()
}

// ResetOutput clears the captured output.
func (v *Virtual) ResetOutput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.buf.Reset()
}

// IsRawMode reports whether raw mode is active.
func (v *Virtual) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.raw
}

// RawTransitions returns the enter and exit counts.
func (v *Virtual) RawTransitions() (enters, exits int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enters, v.exits
}

// Resize updates the dimensions and fires the registered callback.
func (v *Virtual) Resize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	fn := v.resizeFn
	v.mu.Unlock()
	if fn != nil {
		fn(width, height)
	}
}
