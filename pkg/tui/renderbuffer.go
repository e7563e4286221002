// ABOUTME: Pooled line buffer that components render into
// ABOUTME: Recycled via sync.Pool; the engine diffs buffers across frames

package tui

import "sync"

// RenderBuffer is a pooled line buffer that components write into.
// The engine acquires one per frame and recycles it afterwards.
type RenderBuffer struct {
	Lines []string
}

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{Lines: make([]string, 0, 32)}
	},
}

// AcquireBuffer gets a reset RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool. Nil is ignored.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// WriteLine appends a single line.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// WriteLines appends multiple lines.
func (b *RenderBuffer) WriteLines(lines []string) {
	b.Lines = append(b.Lines, lines...)
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines written so far.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}
