// Package infobar renders the line under the byte display: the cursor
// offset, the selection width, the undo position and the selected bytes
// read as a 128-bit integer.
package infobar

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/ui/styles"
)

// MaxValueBytes is the most bytes decoded into the value fields.
const MaxValueBytes = 16

// Decode reads up to MaxValueBytes bytes of data as an integer. Unsigned
// zero-extends, signed sign-extends from the most significant byte. An empty
// selection decodes to zero.
func Decode(data []byte, littleEndian bool) (signed, unsigned *big.Int) {
	data = data[:min(len(data), MaxValueBytes)]

	// big.Int wants big-endian.
	be := slices.Clone(data)
	if littleEndian {
		slices.Reverse(be)
	}

	unsigned = new(big.Int).SetBytes(be)
	signed = new(big.Int).Set(unsigned)
	if len(be) > 0 && be[0]&0x80 != 0 {
		wrap := new(big.Int).Lsh(big.NewInt(1), uint(8*len(be)))
		signed.Sub(signed, wrap)
	}
	return signed, unsigned
}

// Info is everything the info bar shows.
type Info struct {
	Cursor       cursor.Cursor
	Selected     []byte // selected bytes that are on screen
	UndoPosition int    // 1-based position in the history
	UndoLength   int
	LittleEndian bool
}

// Fields returns the label/value pairs in display order. Numeric fields are
// padded to a minimum width so the bar does not jump while scrolling.
func (i Info) Fields() [][2]string {
	signed, unsigned := Decode(i.Selected, i.LittleEndian)
	order := "le"
	if !i.LittleEndian {
		order = "be"
	}
	return [][2]string{
		{"cursor", fmt.Sprintf("%#18x", i.Cursor.Start())},
		{"width", fmt.Sprintf("%d", i.Cursor.Width())},
		{"undo", fmt.Sprintf("%d/%d", i.UndoPosition, i.UndoLength)},
		{"± " + order, fmt.Sprintf("%21d", signed)},
		{"+ " + order, fmt.Sprintf("%20d", unsigned)},
	}
}

// Render draws the info bar exactly width cells wide.
func Render(i Info, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.InfoSpacerStyle.Render(" "))
	for n, field := range i.Fields() {
		if n > 0 {
			b.WriteString(styles.InfoSpacerStyle.Render(" "))
		}
		b.WriteString(styles.InfoLabelAngleStyle.Render("▟"))
		b.WriteString(styles.InfoLabelStyle.Render(" " + field[0] + " "))
		b.WriteString(styles.InfoSeparatorStyle.Render("▟"))
		b.WriteString(styles.InfoFieldStyle.Render(" " + field[1] + " "))
		b.WriteString(styles.InfoFieldAngleStyle.Render("▛"))
		b.WriteString(styles.InfoFieldShadowStyle.Render("▛"))
	}

	line := b.String()
	if w := lipgloss.Width(line); w < width {
		line += styles.InfoSpacerStyle.Render(strings.Repeat(" ", width-w))
	}
	return styles.TruncateString(line, width)
}
