// ABOUTME: Generic bounded undo/redo stack for reversible editor operations
// ABOUTME: Push evicts the oldest snapshot at capacity and clears redo history

package undo

// Stack is a generic undo/redo stack with a fixed maximum depth.
type Stack[S any] struct {
	undoStack []S
	redoStack []S
	maxSize   int
}

// New creates a Stack with the given maximum depth.
func New[S any](maxSize int) *Stack[S] {
	return &Stack[S]{
		undoStack: make([]S, 0, maxSize),
		redoStack: make([]S, 0, maxSize),
		maxSize:   maxSize,
	}
}

// Push saves a state snapshot, clearing redo history. At capacity the
// oldest snapshot is evicted.
func (s *Stack[S]) Push(state S) {
	if len(s.undoStack) >= s.maxSize {
		s.undoStack = s.undoStack[1:]
	}
	s.undoStack = append(s.undoStack, state)
	s.redoStack = s.redoStack[:0]
}

// Undo pops the most recent state. Returns false if there is nothing to undo.
func (s *Stack[S]) Undo() (S, bool) {
	if len(s.undoStack) == 0 {
		var zero S
		return zero, false
	}
	last := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, last)
	return last, true
}

// Redo re-applies the most recently undone state.
func (s *Stack[S]) Redo() (S, bool) {
	if len(s.redoStack) == 0 {
		var zero S
		return zero, false
	}
	last := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, last)
	return last, true
}

// CanUndo reports whether there are states to undo.
func (s *Stack[S]) CanUndo() bool { return len(s.undoStack) > 0 }

// CanRedo reports whether there are states to redo.
func (s *Stack[S]) CanRedo() bool { return len(s.redoStack) > 0 }
