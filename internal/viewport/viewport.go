// Package viewport decides which bytes are on screen.
//
// Each tick the top cursor of the stack picks a window of rows*columns bytes
// with the cursor row kept near the middle. The window is fetched from the
// source, aligned to a row boundary, and the cursor is clamped into whatever
// came back, so the selection is always something that can be drawn.
package viewport

import (
	"math"
	"math/bits"

	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/log"
	"github.com/zjrosen/heks/internal/source"
)

// Frame is the result of one positioning step.
type Frame struct {
	Cursor  cursor.Cursor // top of the stack after clamping
	Slice   source.Slice  // bytes to draw, starting on a row boundary
	Window  cursor.Range  // what was requested from the source
	Rows    uint64
	Columns uint64
}

// Geometry normalizes rows and columns. Zero is treated as one so a collapsed
// terminal still shows a single byte.
func Geometry(rows, columns uint64) (uint64, uint64) {
	return max(rows, 1), max(columns, 1)
}

// Window returns the range of offsets to show for c.
func Window(c cursor.Cursor, rows, columns uint64) cursor.Range {
	rows, columns = Geometry(rows, columns)
	area := saturatingMul(rows, columns)

	pos := min(c.Start(), math.MaxUint64-area)
	columnZero := pos - pos%columns
	lead := min(rows/2, columnZero/columns)
	start := columnZero - lead*columns

	return cursor.Range{Start: start, End: start + area}
}

// Position runs one positioning step: it fetches the window for the top
// cursor and writes the cursor back clamped to the bytes that were found.
func Position(stack *cursor.Stack, src source.Source, rows, columns uint64) Frame {
	rows, columns = Geometry(rows, columns)

	before := stack.Top()
	window := Window(before, rows, columns)
	slice := src.Fetch(window.Start, window.End).AlignUp(columns)

	stack.Modify(func(c *cursor.Cursor) { c.Clamp(slice.Location) })
	after := stack.Top()
	if after != before {
		log.Debug(log.CatView, "Cursor clamped", "from", before, "to", after, "slice", slice.Location)
	}

	return Frame{
		Cursor:  after,
		Slice:   slice,
		Window:  window,
		Rows:    rows,
		Columns: columns,
	}
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
