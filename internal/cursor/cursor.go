// Package cursor contains the byte-offset selection model and its undo history.
//
// A Cursor is a half-open range [start, end) over a 64-bit address space. All
// movement saturates at 0 and math.MaxUint64 instead of wrapping, and every
// movement keeps the selection width exact unless the address space itself is
// too small to hold it.
package cursor

import (
	"fmt"
	"math"
	"math/bits"
)

// Range is a half-open range of byte offsets.
type Range struct {
	Start uint64
	End   uint64 // one past the last byte
}

// Len returns the number of offsets in the range (0 for inverted ranges).
func (r Range) Len() uint64 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the range holds no offsets.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Cursor is the current selection.
type Cursor struct {
	start uint64
	end   uint64 // one past the last selected byte
}

// New creates a cursor covering [start, end). The bounds are not validated.
func New(start, end uint64) Cursor {
	return Cursor{start: start, end: end}
}

// Start returns the first selected offset.
func (c Cursor) Start() uint64 { return c.start }

// End returns one past the last selected offset.
func (c Cursor) End() uint64 { return c.end }

// Width returns the number of selected bytes.
func (c Cursor) Width() uint64 { return c.width() }

// Range returns the cursor as a Range.
func (c Cursor) Range() Range { return Range{Start: c.start, End: c.end} }

// Contains reports whether location is selected.
func (c Cursor) Contains(location uint64) bool {
	return c.start <= location && location < c.end
}

func (c Cursor) String() string {
	return fmt.Sprintf("[%#x, %#x)", c.start, c.end)
}

func (c Cursor) width() uint64 {
	if c.start > c.end {
		panic(fmt.Sprintf("cursor: inverted selection %s", c))
	}
	return c.end - c.start
}

// Increment moves the selection right by delta. The end bound saturates first
// and the start is rederived from it, so both bounds pin against
// math.MaxUint64 together without changing the width.
func (c *Cursor) Increment(delta uint64) {
	w := c.width()
	c.end = saturatingAdd(c.end, delta)
	c.start = c.end - w
}

// Decrement moves the selection left by delta, saturating at 0.
func (c *Cursor) Decrement(delta uint64) {
	w := c.width()
	c.start = saturatingSub(c.start, delta)
	c.end = c.start + w
}

// Grow extends the selection by one byte.
func (c *Cursor) Grow() {
	c.end = saturatingAdd(c.end, 1)
}

// Shrink removes the last selected byte unless only one is left.
func (c *Cursor) Shrink() {
	if c.width() > 1 {
		c.end--
	}
}

// SkipRight moves the selection by its own width to the right.
func (c *Cursor) SkipRight() {
	c.Increment(c.width())
}

// SkipLeft moves the selection by its own width to the left.
func (c *Cursor) SkipLeft() {
	c.Decrement(c.width())
}

// Clamp moves the cursor the smallest distance needed to lie within r. If r
// is narrower than the cursor the cursor becomes r. The high bound is checked
// first, so a cursor hanging over both sides of r is pulled in from the end.
func (c *Cursor) Clamp(r Range) {
	w := min(c.width(), r.Len())
	if c.end > r.End {
		c.end = r.End
		c.start = c.end - w
	} else if c.start < r.Start {
		c.start = r.Start
		c.end = c.start + w
	}
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturatingSub(a, b uint64) uint64 {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0
	}
	return diff
}
