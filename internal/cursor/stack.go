package cursor

// Stack is the undo/redo history of whole cursor snapshots.
//
// Coarse movements (paging, home/end) open history entries; fine movements
// edit the current top in place through Modify. The stack is never empty.
type Stack struct {
	cursors   []Cursor
	undoDepth int
}

// NewStack creates a history holding only seed.
func NewStack(seed Cursor) *Stack {
	return &Stack{cursors: []Cursor{seed}}
}

func (s *Stack) topIndex() int {
	if len(s.cursors) == 0 {
		panic("cursor: empty stack")
	}
	index := len(s.cursors) - 1
	if s.undoDepth > index {
		panic("cursor: undo depth exceeds history")
	}
	return index - s.undoDepth
}

// Top returns the current cursor.
func (s *Stack) Top() Cursor {
	return s.cursors[s.topIndex()]
}

// Modify edits the current cursor in place without creating a checkpoint.
func (s *Stack) Modify(fn func(c *Cursor)) {
	fn(&s.cursors[s.topIndex()])
}

// Push appends c to the history. The undo depth is left alone, so pushing
// while undone keeps the same distance from the newest entry.
func (s *Stack) Push(c Cursor) {
	s.cursors = append(s.cursors, c)
}

// Set replaces the current cursor with c and drops every entry after it.
func (s *Stack) Set(c Cursor) {
	s.cursors = append(s.cursors[:s.topIndex()], c)
	s.undoDepth = 0
}

// Commit drops every entry after the current cursor and appends c as a new
// entry, so the previous cursor can be reached with Undo.
func (s *Stack) Commit(c Cursor) {
	s.cursors = append(s.cursors[:s.topIndex()+1], c)
	s.undoDepth = 0
}

// Undo steps back one entry. It is a no-op at the oldest entry.
func (s *Stack) Undo() {
	if s.undoDepth < len(s.cursors)-1 {
		s.undoDepth++
	}
}

// Redo steps forward one entry. It is a no-op at the newest entry.
func (s *Stack) Redo() {
	if s.undoDepth > 0 {
		s.undoDepth--
	}
}

// CanUndo reports whether Undo would move.
func (s *Stack) CanUndo() bool { return s.undoDepth < len(s.cursors)-1 }

// CanRedo reports whether Redo would move.
func (s *Stack) CanRedo() bool { return s.undoDepth > 0 }

// Len returns the number of history entries.
func (s *Stack) Len() int { return len(s.cursors) }

// Depth returns how many entries back from the newest the top is.
func (s *Stack) Depth() int { return s.undoDepth }
