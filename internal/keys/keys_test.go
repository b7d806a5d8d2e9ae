package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Up uses k and up", k.Up, []string{"k", "up"}},
		{"Down uses j and down", k.Down, []string{"j", "down"}},
		{"Left uses h and left", k.Left, []string{"h", "left"}},
		{"Right uses l and right", k.Right, []string{"l", "right"}},
		{"Grow uses L", k.Grow, []string{"L"}},
		{"Shrink uses H", k.Shrink, []string{"H"}},
		{"SkipRight uses tab and alt+f", k.SkipRight, []string{"tab", "alt+f"}},
		{"SkipLeft uses shift+tab and alt+b", k.SkipLeft, []string{"shift+tab", "alt+b"}},
		{"PageDown uses pgdown and ctrl+d", k.PageDown, []string{"pgdown", "ctrl+d"}},
		{"PageUp uses pgup and ctrl+u", k.PageUp, []string{"pgup", "ctrl+u"}},
		{"Home uses home and g", k.Home, []string{"home", "g"}},
		{"End uses end and G", k.End, []string{"end", "G"}},
		{"Undo uses z and u", k.Undo, []string{"z", "u"}},
		{"Redo uses Z and ctrl+r", k.Redo, []string{"Z", "ctrl+r"}},
		{"Endian uses e", k.Endian, []string{"e"}},
		{"Help uses ?", k.Help, []string{"?"}},
		{"Suspend uses ctrl+z", k.Suspend, []string{"ctrl+z"}},
		{"Quit uses q, esc and ctrl+c", k.Quit, []string{"q", "esc", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_NoConflicts(t *testing.T) {
	seen := map[string]string{}
	for _, b := range DefaultKeyMap().All() {
		for _, k := range b.Keys() {
			prev, dup := seen[k]
			require.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
			seen[k] = b.Help().Desc
		}
	}
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	for _, b := range DefaultKeyMap().All() {
		require.NotEmpty(t, b.Help().Key, "binding %v has no help key", b.Keys())
		require.NotEmpty(t, b.Help().Desc, "binding %v has no description", b.Keys())
	}
}

func TestDefaultKeyMap_MatchesKeyMsgs(t *testing.T) {
	k := DefaultKeyMap()

	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyPgDown}, k.PageDown))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlD}, k.PageDown))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, k.SkipLeft))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, k.SkipRight))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, k.End))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, k.End))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, k.Quit))
}

func TestHelpGroups(t *testing.T) {
	k := DefaultKeyMap()

	require.Len(t, k.FullHelp(), 4)
	require.Len(t, k.All(), 18)
	require.Equal(t, []key.Binding{k.Help, k.Undo, k.Quit}, k.ShortHelp())
}
