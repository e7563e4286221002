// ABOUTME: Core typeset interfaces: Component, InputHandler, Focusable
// ABOUTME: Lifecycle hooks (Mounter, Unmounter) dispatched by Container and engine

package tui

// CursorMarker is a zero-width marker that components embed in render output
// to indicate cursor position. The engine strips it and positions the real
// terminal cursor at that location.
const CursorMarker = "\x1b_ts:c\x07"

// Component is the base interface for all renderable elements.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// InputHandler is implemented by components that process keyboard input.
type InputHandler interface {
	HandleInput(data string)
}

// Focusable is implemented by components that participate in focus management.
type Focusable interface {
	SetFocused(focused bool)
	IsFocused() bool
}

// Mounter is implemented by components that need to know when they are
// attached to a live container.
type Mounter interface {
	Mount()
}

// Unmounter is implemented by components that hold resources (pending
// timers, rendered-output handles) that must be released when detached.
// Container.Remove, Container.Clear, and Engine.Stop dispatch it; a component
// must not mutate state after its Unmount returns.
type Unmounter interface {
	Unmount()
}
