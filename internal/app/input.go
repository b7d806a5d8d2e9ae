package app

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/log"
)

// handleKey applies one key press to the cursor stack.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	pressed := msg.String()
	repeated := pressed == m.lastKey
	m.lastKey = pressed

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Suspend):
		return m, tea.Suspend
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Endian):
		m.littleEndian = !m.littleEndian

	case key.Matches(msg, m.keys.Right):
		m.stack.Modify(func(c *cursor.Cursor) { c.Increment(1) })
	case key.Matches(msg, m.keys.Left):
		m.stack.Modify(func(c *cursor.Cursor) { c.Decrement(1) })
	case key.Matches(msg, m.keys.Down):
		m.rowDown()
	case key.Matches(msg, m.keys.Up):
		m.rowUp()
	case key.Matches(msg, m.keys.Grow):
		m.stack.Modify((*cursor.Cursor).Grow)
	case key.Matches(msg, m.keys.Shrink):
		m.stack.Modify((*cursor.Cursor).Shrink)
	case key.Matches(msg, m.keys.SkipRight):
		m.stack.Modify((*cursor.Cursor).SkipRight)
	case key.Matches(msg, m.keys.SkipLeft):
		m.stack.Modify((*cursor.Cursor).SkipLeft)

	case key.Matches(msg, m.keys.PageDown):
		m.page(repeated, func(c *cursor.Cursor, n uint64) { c.Increment(n) })
	case key.Matches(msg, m.keys.PageUp):
		m.page(repeated, func(c *cursor.Cursor, n uint64) { c.Decrement(n) })
	case key.Matches(msg, m.keys.Home):
		m.jump(func(c *cursor.Cursor) { c.Decrement(math.MaxUint64) })
	case key.Matches(msg, m.keys.End):
		m.jump(func(c *cursor.Cursor) { c.Increment(math.MaxUint64) })

	case key.Matches(msg, m.keys.Undo):
		m.stack.Undo()
	case key.Matches(msg, m.keys.Redo):
		m.stack.Redo()

	default:
		log.Debug(log.CatInput, "Unhandled key", "key", pressed)
	}

	return m, nil
}

// handleMouse scrolls one row per wheel step. It reports whether the cursor
// may have moved.
func (m *Model) handleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		m.rowDown()
	case tea.MouseButtonWheelUp:
		m.rowUp()
	default:
		return false
	}
	m.lastKey = ""
	return true
}

func (m Model) rowDown() {
	m.stack.Modify(func(c *cursor.Cursor) { c.Increment(m.columns) })
}

// rowUp does nothing on the first row, so the column is kept.
func (m Model) rowUp() {
	if m.stack.Top().Start() >= m.columns {
		m.stack.Modify(func(c *cursor.Cursor) { c.Decrement(m.columns) })
	}
}

// pageSize is half a screen of rows.
func (m Model) pageSize() uint64 {
	return m.columns * (m.rows() / 2)
}

// page moves by pageSize. A run of the same paging key is one history entry.
func (m Model) page(repeated bool, move func(c *cursor.Cursor, n uint64)) {
	next := m.stack.Top()
	move(&next, m.pageSize())
	if repeated {
		m.stack.Set(next)
	} else {
		m.stack.Commit(next)
	}
}

// jump records a new history entry for a move to either end.
func (m Model) jump(move func(c *cursor.Cursor)) {
	next := m.stack.Top()
	move(&next)
	m.stack.Commit(next)
}
