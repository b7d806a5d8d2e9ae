package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	s := NewStack(New(0, 1))
	require.Equal(t, []Cursor{New(0, 1)}, s.cursors)
	require.Equal(t, New(0, 1), s.Top())
	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.Depth())
	require.False(t, s.CanUndo())
	require.False(t, s.CanRedo())
}

func TestStack_PushTopUndoRedo(t *testing.T) {
	s := NewStack(New(0, 1))
	require.Equal(t, New(0, 1), s.Top())

	s.Push(New(1, 2))
	require.Equal(t, New(1, 2), s.Top())
	s.Push(New(3, 4))
	require.Equal(t, New(3, 4), s.Top())

	s.Undo()
	require.Equal(t, New(1, 2), s.Top())
	require.True(t, s.CanRedo())
	s.Undo()
	require.Equal(t, New(0, 1), s.Top())
	require.False(t, s.CanUndo())
	s.Undo()
	s.Undo()
	require.Equal(t, New(0, 1), s.Top(), "undo past the oldest entry is a no-op")

	s.Redo()
	require.Equal(t, New(1, 2), s.Top())
	s.Redo()
	require.Equal(t, New(3, 4), s.Top())
	s.Redo()
	s.Redo()
	s.Redo()
	require.Equal(t, New(3, 4), s.Top(), "redo past the newest entry is a no-op")
}

func TestStack_PushWhileUndoneKeepsDepth(t *testing.T) {
	s := NewStack(New(0, 1))
	s.Push(New(1, 2))
	s.Undo()
	require.Equal(t, New(0, 1), s.Top())

	s.Push(New(5, 6))
	require.Equal(t, 3, s.Len())
	require.Equal(t, 1, s.Depth())
	require.Equal(t, New(1, 2), s.Top())

	s.Redo()
	require.Equal(t, New(5, 6), s.Top())
}

func TestStack_Set(t *testing.T) {
	s := NewStack(New(0, 1))
	require.Equal(t, New(0, 1), s.Top())
	s.Set(New(1, 2))
	require.Equal(t, New(1, 2), s.Top())
	s.Set(New(2, 3))
	require.Equal(t, New(2, 3), s.Top())
	s.Undo()
	require.Equal(t, New(2, 3), s.Top(), "set replaces the top, so there is nothing to undo")

	s.Push(New(3, 4))
	s.Push(New(5, 6))
	s.Set(New(5, 16))
	require.Equal(t, New(5, 16), s.Top())
	s.Undo()
	require.Equal(t, New(3, 4), s.Top())
	s.Undo()
	require.Equal(t, New(2, 3), s.Top())

	s.Set(New(2, 12))
	require.Equal(t, New(2, 12), s.Top())
	s.Redo()
	require.Equal(t, New(2, 12), s.Top())
	require.Equal(t, 1, s.Len())
}

func TestStack_Commit(t *testing.T) {
	s := NewStack(New(0, 1))
	s.Commit(New(16, 17))
	s.Commit(New(32, 33))
	require.Equal(t, 3, s.Len())
	require.Equal(t, New(32, 33), s.Top())

	s.Undo()
	s.Undo()
	require.Equal(t, New(0, 1), s.Top())

	// Committing while undone discards the redo future.
	s.Commit(New(64, 65))
	require.Equal(t, 2, s.Len())
	require.Equal(t, 0, s.Depth())
	require.False(t, s.CanRedo())

	s.Undo()
	require.Equal(t, New(0, 1), s.Top())
	s.Redo()
	require.Equal(t, New(64, 65), s.Top())
}

func TestStack_CommitThenSetCoalesces(t *testing.T) {
	s := NewStack(New(0, 1))

	// A held key: the first press opens an entry, repeats overwrite it.
	s.Commit(New(8, 9))
	s.Set(New(16, 17))
	s.Set(New(24, 25))
	require.Equal(t, 2, s.Len())
	require.Equal(t, New(24, 25), s.Top())

	s.Undo()
	require.Equal(t, New(0, 1), s.Top())
}

func TestStack_Modify(t *testing.T) {
	s := NewStack(New(0, 1))
	s.Modify(func(c *Cursor) { c.Grow() })
	require.Equal(t, New(0, 2), s.Top())
	s.Modify(func(c *Cursor) { c.Grow() })
	require.Equal(t, New(0, 3), s.Top())
	s.Undo()
	require.Equal(t, New(0, 3), s.Top())

	s.Push(New(1, 2))
	s.Push(New(2, 3))
	s.Modify(func(c *Cursor) { c.Grow() })
	require.Equal(t, New(2, 4), s.Top())
	s.Undo()
	require.Equal(t, New(1, 2), s.Top())
	s.Undo()
	require.Equal(t, New(0, 3), s.Top())

	// Editing an undone entry changes that entry only.
	s.Modify(func(c *Cursor) { c.Grow() })
	require.Equal(t, New(0, 4), s.Top())
	s.Redo()
	require.Equal(t, New(1, 2), s.Top())
	s.Redo()
	require.Equal(t, New(2, 4), s.Top())
}
