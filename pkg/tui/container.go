// ABOUTME: Container is an ordered collection of child Components
// ABOUTME: Dispatches Mount/Unmount lifecycle; RWMutex for concurrent render vs mutation

package tui

import "sync"

// Container holds an ordered list of child components and owns their
// lifecycle: Add mounts, Remove and Clear unmount. It is safe for concurrent
// access; lifecycle hooks are invoked outside the lock.
type Container struct {
	mu       sync.RWMutex
	children []Component
}

// NewContainer creates an empty Container.
func NewContainer() *Container {
	return &Container{}
}

// Add appends a component and mounts it if it implements Mounter.
func (c *Container) Add(comp Component) {
	c.mu.Lock()
	c.children = append(c.children, comp)
	c.mu.Unlock()
	if m, ok := comp.(Mounter); ok {
		m.Mount()
	}
}

// Remove detaches a component, unmounting it if it implements Unmounter.
// Returns true if the component was found.
func (c *Container) Remove(comp Component) bool {
	c.mu.Lock()
	found := false
	for i, child := range c.children {
		if child == comp {
			c.children = append(c.children[:i], c.children[i+1:]...)
			found = true
			break
		}
	}
	c.mu.Unlock()
	if found {
		if u, ok := comp.(Unmounter); ok {
			u.Unmount()
		}
	}
	return found
}

// Clear detaches and unmounts all children.
func (c *Container) Clear() {
	c.mu.Lock()
	detached := c.children
	c.children = nil
	c.mu.Unlock()
	for _, child := range detached {
		if u, ok := child.(Unmounter); ok {
			u.Unmount()
		}
	}
}

// Children returns a snapshot of the current children.
func (c *Container) Children() []Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Render renders all children sequentially into the buffer.
func (c *Container) Render(out *RenderBuffer, width int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Render(out, width)
	}
}

// Invalidate invalidates all children.
func (c *Container) Invalidate() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, child := range c.children {
		child.Invalidate()
	}
}
