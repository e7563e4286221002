// ABOUTME: Render engine: coalesced render requests, per-line frame diffing
// ABOUTME: CSI 2026 synchronized output; strips cursor markers and places the terminal cursor

package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mauromedda/typeset/pkg/tui/width"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Engine drives rendering of a component tree into a terminal writer.
// Renders are requested, coalesced, and executed by a single loop goroutine.
type Engine struct {
	root   *Container
	writer Writer

	mu       sync.Mutex
	width    int
	height   int
	prev     []string
	first    bool
	running  bool
	renderCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewEngine creates an Engine writing to w with the given dimensions.
func NewEngine(w Writer, termWidth, termHeight int) *Engine {
	return &Engine{
		root:     NewContainer(),
		writer:   w,
		width:    termWidth,
		height:   termHeight,
		first:    true,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}
}

// Root returns the root container for adding components.
func (e *Engine) Root() *Container {
	return e.root
}

// SetSize updates the terminal dimensions and forces a full redraw.
func (e *Engine) SetSize(w, h int) {
	e.mu.Lock()
	e.width = w
	e.height = h
	e.prev = nil
	e.first = true
	e.mu.Unlock()
	e.root.Invalidate()
	e.RequestRender()
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (e *Engine) RequestRender() {
	select {
	case e.renderCh <- struct{}{}:
	default: // already pending
	}
}

// Start begins the render loop in a goroutine. Call Stop to terminate.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return
	}
	e.running = true
	e.mu.Unlock()
	go e.loop()
}

// Stop terminates the render loop and unmounts all components.
// Safe to call multiple times.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.stopCh)
		e.root.Clear()
	})
}

// RenderOnce performs a single synchronous render. Useful for testing.
func (e *Engine) RenderOnce() {
	e.render()
}

func (e *Engine) loop() {
	for {
		select {
		case <-e.stopCh:
			return
		case <-e.renderCh:
			e.render()
		}
	}
}

func (e *Engine) render() {
	e.mu.Lock()
	w, h := e.width, e.height
	prev := e.prev
	first := e.first
	e.mu.Unlock()

	if w <= 0 || h <= 0 {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	e.root.Render(buf, w)

	// Keep the bottom of the tree visible when content exceeds the terminal.
	lines := buf.Lines
	if len(lines) > h {
		lines = lines[len(lines)-h:]
	}

	cursorRow, cursorCol := stripCursorMarker(lines)

	var out strings.Builder
	if first || prev == nil {
		out.WriteString("\x1b[2J\x1b[H")
		for i, line := range lines {
			if i > 0 {
				out.WriteString("\r\n")
			}
			out.WriteString(line)
		}
	} else {
		for i, line := range lines {
			if i < len(prev) && prev[i] == line {
				continue
			}
			fmt.Fprintf(&out, "\x1b[%d;1H\x1b[2K%s", i+1, line)
		}
		for i := len(lines); i < len(prev); i++ {
			fmt.Fprintf(&out, "\x1b[%d;1H\x1b[2K", i+1)
		}
	}

	if cursorRow >= 0 {
		fmt.Fprintf(&out, "\x1b[%d;%dH\x1b[?25h", cursorRow+1, cursorCol+1)
	} else {
		out.WriteString("\x1b[?25l")
	}

	if out.Len() > 0 {
		// CSI 2026 synchronized output around the whole frame.
		_, _ = e.writer.Write([]byte("\x1b[?2026h" + out.String() + "\x1b[?2026l"))
	}

	saved := make([]string, len(lines))
	copy(saved, lines)
	e.mu.Lock()
	e.prev = saved
	e.first = false
	e.mu.Unlock()
}

// stripCursorMarker finds the CursorMarker in lines, removes it, and returns
// its (row, col) position. Returns (-1, -1) if no marker is present.
func stripCursorMarker(lines []string) (row, col int) {
	for i, line := range lines {
		idx := strings.Index(line, CursorMarker)
		if idx < 0 {
			continue
		}
		before := line[:idx]
		lines[i] = before + line[idx+len(CursorMarker):]
		return i, width.VisibleWidth(before)
	}
	return -1, -1
}
