// Package rainbow renders the footer position indicator: a strip of
// shaded cells whose hues rotate with the position in the source, with a
// broom marking where the cursor is.
package rainbow

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Broom marks the position. It is two cells wide.
	Broom      = "🧹"
	broomWidth = 2
	// Cell fills the rest of the strip.
	Cell = "▓"
)

// Hue returns the hue of cell i in a strip of width cells at fraction.
func Hue(i, width int, fraction float64) float64 {
	hue := float64(i)*360/float64(max(width-1, 1)) + fraction*180
	return math.Mod(hue, 360)
}

// BroomStart returns the cell the broom starts at, or -1 if the strip is too
// narrow to hold it.
func BroomStart(width int, fraction float64) int {
	if width < broomWidth {
		return -1
	}
	last := width - broomWidth
	start := int(fraction * float64(last))
	return min(max(start, 0), last)
}

// Colors returns the foreground and background of cell i.
func Colors(i, width int, fraction float64) (fg, bg lipgloss.Color) {
	hue := Hue(i, width, fraction)
	return lipgloss.Color(colorful.Hsl(hue, 1, 0.5).Hex()),
		lipgloss.Color(colorful.Hsl(hue, 1, 0.1).Hex())
}

// Render draws the strip width cells wide. fraction is the position in the
// source, from 0 to 1.
func Render(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(fraction) {
		fraction = 0.5
	}
	fraction = min(max(fraction, 0), 1)

	broom := BroomStart(width, fraction)

	var b strings.Builder
	for i := 0; i < width; i++ {
		fg, bg := Colors(i, width, fraction)
		switch {
		case i == broom:
			b.WriteString(lipgloss.NewStyle().Foreground(bg).Background(fg).Render(Broom))
			i += broomWidth - 1
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(fg).Background(bg).Render(Cell))
		}
	}
	return b.String()
}
