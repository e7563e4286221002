// ABOUTME: Terminal abstraction: raw mode, size, output, resize notification
// ABOUTME: Process targets a real TTY; Virtual backs tests

package terminal

// Terminal abstracts the low-level terminal operations the engine needs:
// raw mode switching, size queries, byte output, and resize notification.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}
