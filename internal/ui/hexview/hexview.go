// Package hexview renders the two byte columns: hex digits on the left and
// one glyph per byte on the right.
//
// Layout is computed first as rows of Spans, which only know their text and
// whether they are selected. Styling is applied last, so the layout can be
// tested without a terminal.
package hexview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/ui/styles"
	"github.com/zjrosen/heks/internal/viewport"
)

// GlyphWidth is the number of cells every glyph occupies.
const GlyphWidth = 2

// HexShare is the percentage of the width given to the hex column.
const HexShare = 55

// Span is a run of text that is either entirely selected or not.
type Span struct {
	Text     string
	Selected bool
}

// Row is one rendered line of a column.
type Row []Span

// add appends text, merging it into the previous span when the selection
// state matches.
func (r *Row) add(text string, selected bool) {
	if n := len(*r); n > 0 && (*r)[n-1].Selected == selected {
		(*r)[n-1].Text += text
		return
	}
	*r = append(*r, Span{Text: text, Selected: selected})
}

// String returns the row without styling.
func (r Row) String() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Selected returns the concatenated text of the selected spans.
func (r Row) Selected() string {
	var b strings.Builder
	for _, s := range r {
		if s.Selected {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// HexRows lays out data, which starts at offset start, as rows of columns
// bytes. Bytes are grouped in blocks of blockSize separated by a space. The
// space in front of a selected byte is selected too, unless that byte is
// the first one of the selection.
func HexRows(data []byte, start uint64, c cursor.Cursor, columns, blockSize int) []Row {
	columns, blockSize = max(columns, 1), max(blockSize, 1)

	rows := make([]Row, 0, (len(data)+columns-1)/columns)
	var row Row
	for i, value := range data {
		offset := start + uint64(i)
		selected := c.Contains(offset)
		column := i % columns

		if column > 0 && column%blockSize == 0 {
			row.add(" ", selected && offset != c.Start())
		}
		row.add(fmt.Sprintf("%02x", value), selected)

		if column == columns-1 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// GlyphRows lays out data as rows of glyphs, GlyphWidth cells per byte.
func GlyphRows(data []byte, start uint64, c cursor.Cursor, columns int) []Row {
	columns = max(columns, 1)

	rows := make([]Row, 0, (len(data)+columns-1)/columns)
	var row Row
	for i, value := range data {
		row.add(Glyph(value), c.Contains(start+uint64(i)))
		if i%columns == columns-1 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

var superscriptHex = [16]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹', 'ᵃ', 'ᵇ', 'ᶜ', 'ᵈ', 'ᵉ', 'ᶠ'}

// Glyph returns the display form of a byte: blank for NUL, the character
// itself for printable ASCII, and a superscript hex pair for everything
// else.
func Glyph(b byte) string {
	var g string
	switch {
	case b == 0:
		g = ""
	case b >= 0x20 && b <= 0x7e:
		g = string(rune(b))
	default:
		g = string([]rune{superscriptHex[b>>4], superscriptHex[b&0x0f]})
	}
	return runewidth.FillRight(g, GlyphWidth)
}

// HexWidth returns the natural width of a hex row.
func HexWidth(columns, blockSize int) int {
	columns, blockSize = max(columns, 1), max(blockSize, 1)
	return columns*2 + (columns-1)/blockSize
}

// Split divides width between the hex and glyph columns.
func Split(width int) (hex, glyph int) {
	width = max(width, 0)
	hex = width * HexShare / 100
	return hex, width - hex
}

// Render draws the display area for a frame: Rows lines, each holding the
// hex column followed by the glyph column, together exactly width cells wide.
func Render(f viewport.Frame, blockSize, width int) string {
	columns := int(min(f.Columns, uint64(1<<16)))
	start := f.Slice.Location.Start

	hex := HexRows(f.Slice.Data, start, f.Cursor, columns, blockSize)
	glyphs := GlyphRows(f.Slice.Data, start, f.Cursor, columns)
	hexWidth, glyphWidth := Split(width)

	lines := make([]string, 0, f.Rows)
	for i := range int(min(f.Rows, uint64(1<<16))) {
		var h, g Row
		if i < len(hex) {
			h, g = hex[i], glyphs[i]
		}
		lines = append(lines, renderRow(h, styles.HexStyle, hexWidth)+renderRow(g, styles.GlyphStyle, glyphWidth))
	}
	return strings.Join(lines, "\n")
}

func renderRow(r Row, base lipgloss.Style, width int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	for _, s := range r {
		style := base
		if s.Selected {
			style = styles.CursorStyle
		}
		b.WriteString(style.Render(s.Text))
		used += runewidth.StringWidth(s.Text)
	}
	if used < width {
		b.WriteString(base.Render(strings.Repeat(" ", width-used)))
	}
	return styles.TruncateString(b.String(), width)
}
