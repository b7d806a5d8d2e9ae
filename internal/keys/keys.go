// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the viewer.
type KeyMap struct {
	// Movement by bytes and rows
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Selection
	Grow      key.Binding
	Shrink    key.Binding
	SkipRight key.Binding
	SkipLeft  key.Binding

	// Coarse movement, recorded in the undo history
	PageDown key.Binding
	PageUp   key.Binding
	Home     key.Binding
	End      key.Binding

	// History
	Undo key.Binding
	Redo key.Binding

	// General
	Endian  key.Binding
	Help    key.Binding
	Suspend key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Movement
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "row down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "byte left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "byte right"),
		),

		// Selection
		Grow: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "grow selection"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "shrink selection"),
		),
		SkipRight: key.NewBinding(
			key.WithKeys("tab", "alt+f"),
			key.WithHelp("tab", "skip selection right"),
		),
		SkipLeft: key.NewBinding(
			key.WithKeys("shift+tab", "alt+b"),
			key.WithHelp("shift+tab", "skip selection left"),
		),

		// Coarse movement
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn/ctrl+d", "half page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup/ctrl+u", "half page up"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first byte"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last byte"),
		),

		// History
		Undo: key.NewBinding(
			key.WithKeys("z", "u"),
			key.WithHelp("z/u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("Z", "ctrl+r"),
			key.WithHelp("Z/ctrl+r", "redo"),
		),

		// General
		Endian: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle endianness"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Undo, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},                       // Movement
		{k.Grow, k.Shrink, k.SkipRight, k.SkipLeft},           // Selection
		{k.PageDown, k.PageUp, k.Home, k.End},                 // Coarse movement
		{k.Undo, k.Redo, k.Endian, k.Help, k.Suspend, k.Quit}, // General
	}
}

// All returns every binding, for conflict checks.
func (k KeyMap) All() []key.Binding {
	var all []key.Binding
	for _, group := range k.FullHelp() {
		all = append(all, group...)
	}
	return all
}
