// Package history keeps a bounded undo/redo history of editor states.
package history

// DefaultLimit is the number of entries a Stack keeps unless told otherwise.
const DefaultLimit = 20

// Stack is an ordered list of states with a cursor at the current one.
//
// Push appends after the cursor and discards any redo future; when the
// stack is full the oldest entry is dropped. Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	entries []T
	cursor  int
	limit   int
}

// New returns an empty stack holding at most limit entries.
// A limit of zero or less means DefaultLimit.
func New[T any](limit int) *Stack[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack[T]{cursor: -1, limit: limit}
}

// Push records v as the new current state.
func (s *Stack[T]) Push(v T) {
	clear(s.entries[s.cursor+1:])
	s.entries = append(s.entries[:s.cursor+1], v)
	if len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		clear(s.entries[:drop])
		s.entries = s.entries[drop:]
	}
	s.cursor = len(s.entries) - 1
}

// Undo moves the cursor back and returns the state there.
// It returns false when there is nothing to undo.
func (s *Stack[T]) Undo() (T, bool) {
	if !s.CanUndo() {
		var zero T
		return zero, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo moves the cursor forward and returns the state there.
// It returns false when there is nothing to redo.
func (s *Stack[T]) Redo() (T, bool) {
	if !s.CanRedo() {
		var zero T
		return zero, false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// Current returns the state at the cursor, or false for an empty stack.
func (s *Stack[T]) Current() (T, bool) {
	if s.cursor < 0 {
		var zero T
		return zero, false
	}
	return s.entries[s.cursor], true
}

// CanUndo reports whether an older state exists.
func (s *Stack[T]) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether a newer state exists.
func (s *Stack[T]) CanRedo() bool { return s.cursor < len(s.entries)-1 }

// Len returns the number of stored states, including the redo future.
func (s *Stack[T]) Len() int { return len(s.entries) }

// Cursor returns the index of the current state, or -1 when empty.
func (s *Stack[T]) Cursor() int { return s.cursor }

// Limit returns the maximum number of stored states.
func (s *Stack[T]) Limit() int { return s.limit }

// Reset empties the stack.
func (s *Stack[T]) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = -1
}
