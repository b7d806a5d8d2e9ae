package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/heks/internal/config"
	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/pubsub"
	"github.com/zjrosen/heks/internal/source"
)

// closingSource records Close calls.
type closingSource struct {
	*source.MemorySource
	closed int
}

func (c *closingSource) Close() error {
	c.closed++
	return nil
}

func testData(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// createTestModel returns a model over 4096 bytes in a 100x13 terminal,
// which leaves 10 display rows of 16 bytes.
func createTestModel(t *testing.T) Model {
	t.Helper()
	return createTestModelWith(t, Options{
		Source: source.NewMemorySource("test.bin", testData(4096)),
		Config: config.Defaults(),
	})
}

func createTestModelWith(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 13})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update should return app.Model")
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		m = update(t, m, msg)
	}
	return m
}

func TestApp_InitialCursor(t *testing.T) {
	m := createTestModel(t)

	require.Equal(t, cursor.New(0, 1), m.Cursor())
	require.Equal(t, uint64(10), m.Frame().Rows)
	require.Equal(t, uint64(16), m.Frame().Columns)
	require.Equal(t, cursor.Range{Start: 0, End: 160}, m.Frame().Slice.Location)
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	require.Equal(t, 120, m.width)
	require.Equal(t, 50, m.height)
	require.Equal(t, uint64(47), m.Frame().Rows)
}

func TestApp_TinyTerminalKeepsOneRow(t *testing.T) {
	m := createTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 2})

	require.Equal(t, uint64(1), m.Frame().Rows)
}

func TestApp_ByteAndRowMovement(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("l"), runes("l"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, cursor.New(3, 4), m.Cursor())

	m = press(t, m, runes("h"))
	require.Equal(t, cursor.New(2, 3), m.Cursor())

	m = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, cursor.New(34, 35), m.Cursor())

	m = press(t, m, runes("k"))
	require.Equal(t, cursor.New(18, 19), m.Cursor())
}

func TestApp_UpOnFirstRowKeepsColumn(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("l"), runes("l"), runes("k"))

	require.Equal(t, cursor.New(2, 3), m.Cursor())
}

func TestApp_LeftStopsAtZero(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("h"), tea.KeyMsg{Type: tea.KeyLeft})

	require.Equal(t, cursor.New(0, 1), m.Cursor())
}

func TestApp_Selection(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("L"), runes("L"), runes("L"))
	require.Equal(t, cursor.New(0, 4), m.Cursor())

	m = press(t, m, runes("H"))
	require.Equal(t, cursor.New(0, 3), m.Cursor())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, cursor.New(3, 6), m.Cursor())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, cursor.New(0, 3), m.Cursor())
}

func TestApp_FineMovesDoNotTouchHistory(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("l"), runes("j"), runes("L"), tea.KeyMsg{Type: tea.KeyTab})

	require.Equal(t, 1, m.stack.Len())
}

func TestApp_PagingCoalesces(t *testing.T) {
	m := createTestModel(t)
	pgdown := tea.KeyMsg{Type: tea.KeyPgDown}

	// Half a page is 5 rows of 16 bytes.
	m = press(t, m, pgdown)
	require.Equal(t, cursor.New(80, 81), m.Cursor())
	require.Equal(t, 2, m.stack.Len())

	m = press(t, m, pgdown)
	require.Equal(t, cursor.New(160, 161), m.Cursor())
	require.Equal(t, 2, m.stack.Len(), "repeated paging replaces the entry")

	m = press(t, m, runes("l"), pgdown)
	require.Equal(t, cursor.New(241, 242), m.Cursor())
	require.Equal(t, 3, m.stack.Len(), "paging after another key opens an entry")

	m = press(t, m, runes("z"))
	require.Equal(t, cursor.New(161, 162), m.Cursor())

	m = press(t, m, runes("u"))
	require.Equal(t, cursor.New(0, 1), m.Cursor())

	m = press(t, m, runes("Z"))
	require.Equal(t, cursor.New(161, 162), m.Cursor())
}

func TestApp_PageUpAndCtrlKeys(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD}, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, cursor.New(160, 161), m.Cursor())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	require.Equal(t, cursor.New(80, 81), m.Cursor())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Equal(t, cursor.New(0, 1), m.Cursor(), "page up saturates at zero")
}

func TestApp_HomeAndEnd(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("L"), runes("G"))
	require.Equal(t, cursor.New(4094, 4096), m.Cursor(), "end is clamped to the last bytes")
	require.Equal(t, cursor.Range{Start: 3936, End: 4096}, m.Frame().Slice.Location)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, cursor.New(0, 2), m.Cursor())
	require.Equal(t, 3, m.stack.Len())

	m = press(t, m, runes("z"))
	require.Equal(t, cursor.New(4094, 4096), m.Cursor())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, cursor.New(0, 2), m.Cursor())
}

func TestApp_UndoAtOldestIsNoop(t *testing.T) {
	m := createTestModel(t)

	m = press(t, m, runes("z"), runes("z"))

	require.Equal(t, cursor.New(0, 1), m.Cursor())
}

func TestApp_EndOnEmptySource(t *testing.T) {
	m := createTestModelWith(t, Options{
		Source: source.NewMemorySource("empty", nil),
		Config: config.Defaults(),
	})

	require.Equal(t, cursor.New(0, 0), m.Cursor())

	m = press(t, m, runes("G"), runes("l"), runes("L"))
	require.Equal(t, cursor.New(0, 0), m.Cursor())
}

func TestApp_ToggleEndianAndHelp(t *testing.T) {
	m := createTestModel(t)
	require.True(t, m.littleEndian)
	require.False(t, m.help.ShowAll)

	m = press(t, m, runes("e"), runes("?"))

	require.False(t, m.littleEndian)
	require.True(t, m.help.ShowAll)
}

func TestApp_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m := createTestModel(t)
			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			require.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_SuspendKey(t *testing.T) {
	m := createTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})

	require.NotNil(t, cmd)
	require.Equal(t, tea.SuspendMsg{}, cmd())
}

func TestApp_UnhandledKey(t *testing.T) {
	m := createTestModel(t)

	next, cmd := m.Update(runes("x"))

	require.Nil(t, cmd)
	require.Equal(t, cursor.New(0, 1), next.(Model).Cursor())
}

func TestApp_MouseWheel(t *testing.T) {
	m := createTestModel(t)
	wheel := func(b tea.MouseButton) tea.MouseMsg {
		return tea.MouseMsg{Action: tea.MouseActionPress, Button: b}
	}

	m = update(t, m, wheel(tea.MouseButtonWheelDown))
	m = update(t, m, wheel(tea.MouseButtonWheelDown))
	require.Equal(t, cursor.New(32, 33), m.Cursor())

	m = update(t, m, wheel(tea.MouseButtonWheelUp))
	require.Equal(t, cursor.New(16, 17), m.Cursor())

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, cursor.New(16, 17), m.Cursor())
}

func TestApp_MouseResetsPagingRun(t *testing.T) {
	m := createTestModel(t)
	pgdown := tea.KeyMsg{Type: tea.KeyPgDown}

	m = press(t, m, pgdown)
	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = press(t, m, pgdown)

	require.Equal(t, 3, m.stack.Len())
}

func TestApp_ReloadOnChange(t *testing.T) {
	old := &closingSource{MemorySource: source.NewMemorySource("data.bin", testData(4096))}
	replacement := source.NewMemorySource("data.bin", testData(64))

	m := createTestModelWith(t, Options{
		Source: old,
		Open:   func() (source.Source, error) { return replacement, nil },
		Config: config.Defaults(),
	})
	m = press(t, m, runes("G"))
	require.Equal(t, cursor.New(4095, 4096), m.Cursor())

	m = update(t, m, pubsub.Event[string]{Type: pubsub.ChangedEvent, Payload: "data.bin"})

	require.Equal(t, 1, old.closed)
	require.Same(t, replacement, m.Source())
	require.Equal(t, cursor.New(63, 64), m.Cursor(), "cursor is clamped into the new contents")
	require.Equal(t, 2, m.stack.Len(), "history survives a reload")
}

func TestApp_ReloadFailureKeepsSource(t *testing.T) {
	old := &closingSource{MemorySource: source.NewMemorySource("data.bin", testData(32))}

	m := createTestModelWith(t, Options{
		Source: old,
		Open:   func() (source.Source, error) { return nil, errors.New("boom") },
		Config: config.Defaults(),
	})

	m = update(t, m, pubsub.Event[string]{Type: pubsub.ChangedEvent, Payload: "data.bin"})

	require.Zero(t, old.closed)
	require.Same(t, old, m.Source())
	require.Contains(t, ansi.Strip(m.header()), "[reload failed]")
}

func TestApp_RemovedFileKeepsContents(t *testing.T) {
	m := createTestModel(t)

	m = update(t, m, pubsub.Event[string]{Type: pubsub.RemovedEvent, Payload: "test.bin"})

	require.Equal(t, "test.bin", m.Source().Name())
	require.Contains(t, ansi.Strip(m.header()), "[removed]")
}

func TestApp_Close(t *testing.T) {
	src := &closingSource{MemorySource: source.NewMemorySource("data.bin", testData(8))}
	broker := pubsub.NewBroker[string]()
	defer broker.Close()

	m := New(Options{Source: src, Config: config.Defaults(), Events: broker})
	require.Equal(t, 1, broker.SubscriberCount())

	require.NoError(t, m.Close())

	require.Equal(t, 1, src.closed)
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 },
		time.Second, 5*time.Millisecond)
}

func TestApp_View(t *testing.T) {
	m := createTestModel(t)

	view := m.View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 13)
	for i, line := range lines {
		require.Equal(t, 100, lipgloss.Width(line), "line %d", i)
	}

	plain := ansi.Strip(view)
	require.Contains(t, ansi.Strip(lines[0]), "test.bin (4.0 KiB) - "+Title)
	require.Contains(t, plain, "0001 0203")
	require.Contains(t, ansi.Strip(lines[11]), "cursor")
	require.Contains(t, ansi.Strip(lines[12]), "🧹")
}

func TestApp_ViewBeforeSize(t *testing.T) {
	m := New(Options{Source: source.NewMemorySource("x", testData(4)), Config: config.Defaults()})

	require.Empty(t, m.View())
}

func TestApp_ViewShortTerminal(t *testing.T) {
	for height := 1; height <= 4; height++ {
		m := createTestModel(t)
		m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: height})

		lines := strings.Split(m.View(), "\n")

		require.Len(t, lines, height, "height %d", height)
		require.Contains(t, ansi.Strip(lines[0]), "test.bin", "height %d keeps the header", height)
	}
}

func TestApp_ViewWithHelp(t *testing.T) {
	m := createTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 13})
	m = press(t, m, runes("?"))

	view := m.View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 13)
	require.Contains(t, ansi.Strip(view), "toggle endianness")
	for i, line := range lines {
		require.Equal(t, 140, lipgloss.Width(line), "line %d", i)
	}
}
