// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/heks/internal/config"
	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/keys"
	"github.com/zjrosen/heks/internal/log"
	"github.com/zjrosen/heks/internal/pubsub"
	"github.com/zjrosen/heks/internal/source"
	"github.com/zjrosen/heks/internal/viewport"
)

// chromeRows is the header, info bar and footer.
const chromeRows = 3

// Options configures a Model.
type Options struct {
	Source source.Source
	// Open reopens the source after the file changed. Nil disables reloads.
	Open   func() (source.Source, error)
	Config config.Config
	// Events delivers file change notifications. Nil when not watching.
	Events pubsub.Subscriber[string]
}

// Model is the root application state.
type Model struct {
	src   source.Source
	open  func() (source.Source, error)
	stack *cursor.Stack
	frame viewport.Frame

	keys keys.KeyMap
	help help.Model

	columns      uint64
	blockSize    int
	littleEndian bool

	width  int
	height int

	// lastKey is the previous key, used to coalesce repeated paging.
	lastKey string
	// status is shown next to the name in the header.
	status string

	listener     *pubsub.ContinuousListener[string]
	listenCancel context.CancelFunc
}

// New creates the model. The cursor starts on the first byte.
func New(opts Options) Model {
	h := help.New()
	h.ShowAll = opts.Config.UI.ShowHelp

	m := Model{
		src:          opts.Source,
		open:         opts.Open,
		stack:        cursor.NewStack(cursor.New(0, 1)),
		keys:         keys.DefaultKeyMap(),
		help:         h,
		columns:      uint64(max(opts.Config.Columns, 1)),
		blockSize:    max(opts.Config.BlockSize, 1),
		littleEndian: opts.Config.UI.LittleEndian,
	}

	if opts.Events != nil {
		ctx, cancel := context.WithCancel(context.Background())
		m.listener = pubsub.NewContinuousListener(ctx, opts.Events)
		m.listenCancel = cancel
	}

	m.position()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	return m.listener.Listen()
}

// Update implements tea.Model. Every message that changes what is shown is
// followed by exactly one positioning step.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.position()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		m.position()
		return m, cmd

	case tea.MouseMsg:
		if m.handleMouse(msg) {
			m.position()
		}
		return m, nil

	case tea.ResumeMsg:
		m.position()
		return m, nil

	case pubsub.Event[string]:
		m.handleFileEvent(msg)
		m.position()
		return m, m.listen()
	}

	return m, nil
}

// handleFileEvent reopens the source after the file changed. The cursor
// stack is kept; the next positioning step pulls it back into the new data.
func (m *Model) handleFileEvent(event pubsub.Event[string]) {
	switch event.Type {
	case pubsub.RemovedEvent:
		log.Warn(log.CatWatcher, "File removed, keeping last contents", "path", event.Payload)
		m.status = "removed"
		return
	case pubsub.ChangedEvent:
	default:
		return
	}

	if m.open == nil {
		return
	}

	src, err := m.open()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Reload failed", err, "path", event.Payload)
		m.status = "reload failed"
		return
	}

	if err := m.src.Close(); err != nil {
		log.Warn(log.CatSource, "Closing replaced source failed", "name", m.src.Name(), "error", err)
	}
	m.src = src
	m.status = ""
	log.Info(log.CatWatcher, "Reloaded", "name", src.Name(), "len", src.Len())
}

// position runs the positioning step for the current geometry.
func (m *Model) position() {
	m.frame = viewport.Position(m.stack, m.src, m.rows(), m.columns)
}

// rows is the height of the byte display.
func (m Model) rows() uint64 {
	return uint64(max(m.height-chromeRows, 0))
}

// Cursor returns the current cursor.
func (m Model) Cursor() cursor.Cursor {
	return m.stack.Top()
}

// Frame returns the result of the last positioning step.
func (m Model) Frame() viewport.Frame {
	return m.frame
}

// Source returns the source being shown.
func (m Model) Source() source.Source {
	return m.src
}

// Close stops listening for file events and closes the source.
func (m Model) Close() error {
	if m.listenCancel != nil {
		m.listenCancel()
	}
	if m.src == nil {
		return nil
	}
	return m.src.Close()
}
