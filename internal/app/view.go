package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/zjrosen/heks/internal/ui/hexview"
	"github.com/zjrosen/heks/internal/ui/infobar"
	"github.com/zjrosen/heks/internal/ui/overlay"
	"github.com/zjrosen/heks/internal/ui/rainbow"
	"github.com/zjrosen/heks/internal/ui/styles"
)

// Title is the program name as shown in the header.
const Title = "𝓱𝓮𝓴𝓼"

// helpStyles follow the theme; rebuilt by styles.ApplyTheme.
var helpStyles help.Styles

func init() {
	buildHelpStyles()
	styles.RegisterStyleRebuilder(buildHelpStyles)
}

func buildHelpStyles() {
	keyStyle := lipgloss.NewStyle().Foreground(styles.CursorFgColor).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	sepStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	helpStyles = help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	display := strings.Split(hexview.Render(m.frame, m.blockSize, m.width), "\n")
	// The positioner shows at least one row; a terminal this short has none to spare.
	display = display[:min(len(display), max(m.height-chromeRows, 0))]
	if m.help.ShowAll {
		display = m.overlayHelp(display)
	}

	info := infobar.Info{
		Cursor:       m.frame.Cursor,
		Selected:     m.frame.Slice.Fetch(m.frame.Cursor),
		UndoPosition: m.stack.Len() - m.stack.Depth(),
		UndoLength:   m.stack.Len(),
		LittleEndian: m.littleEndian,
	}

	lines := make([]string, 0, len(display)+chromeRows)
	lines = append(lines, m.header())
	lines = append(lines, display...)
	lines = append(lines, infobar.Render(info, m.width))
	lines = append(lines, rainbow.Render(m.src.Fraction(m.frame.Cursor.Start()), m.width))
	return strings.Join(lines[:min(len(lines), m.height)], "\n")
}

// header renders "<name> (<size>) - heks" centered on the frame colour.
func (m Model) header() string {
	title := fmt.Sprintf("%s (%s) - %s", m.src.Name(), humanize.IBytes(m.src.Len()), Title)
	if m.status != "" {
		title += " [" + m.status + "]"
	}
	return styles.FrameStyle.
		Width(m.width).
		Align(lipgloss.Center).
		Render(styles.TruncateString(title, m.width))
}

// overlayHelp draws the full key help in the middle of the display.
func (m Model) overlayHelp(display []string) []string {
	h := m.help
	h.Styles = helpStyles
	h.Width = max(m.width-2, 0)

	box := styles.HelpStyle.Render(h.View(m.keys))
	return overlay.Place(overlay.Config{Width: m.width, Position: overlay.Center}, box, display)
}
