// Package overlay draws a box over already rendered lines without
// disturbing the styling around it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the middle of the background.
	Center Position = iota
	// Bottom places the overlay at the bottom center of the background.
	Bottom
)

// Config controls overlay rendering behavior.
type Config struct {
	// Width is the width of every background line.
	Width    int
	Position Position
	// PadY keeps a Bottom overlay this many lines off the last line.
	PadY int
}

// Place draws fg over bg and returns the combined lines. Every background
// line keeps its width: foreground that does not fit is cut off on the
// right and the bottom.
func Place(cfg Config, fg string, bg []string) []string {
	out := append([]string(nil), bg...)
	if cfg.Width <= 0 || len(out) == 0 {
		return out
	}

	fgLines := strings.Split(fg, "\n")
	x, y := position(cfg, lipgloss.Width(fg), len(fgLines), len(out))

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(out) {
			break
		}
		fgLine = ansi.Truncate(fgLine, cfg.Width-x, "")
		out[row] = splice(out[row], fgLine, x, cfg.Width)
	}
	return out
}

// splice replaces the cells of line starting at x with fg.
func splice(line, fg string, x, width int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fg)
	var right string
	if end < width {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + fg + right
}

// position returns the top left cell of the overlay.
func position(cfg Config, fgWidth, fgHeight, bgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Bottom:
		y = bgHeight - fgHeight - cfg.PadY
	default:
		y = (bgHeight - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
