// Package source provides the byte sources heks can display.
//
// A Source hands out Slices: best-effort windows over its bytes. Requests past
// either end are answered with whatever part of the source is closest, so
// callers never have to know the length up front.
package source

import (
	"errors"

	"github.com/zjrosen/heks/internal/cursor"
)

// ErrIsDirectory is returned when asked to open a directory.
var ErrIsDirectory = errors.New("is a directory")

// Source supplies bytes to the viewport.
type Source interface {
	// Name identifies the source in the header.
	Name() string
	// Fetch returns the bytes in [start, end), or the nearest window of the
	// same size that exists. It never blocks indefinitely and never fails;
	// errors show up as a shorter or empty slice.
	Fetch(start, end uint64) Slice
	// Fraction maps offset to its relative position in [0, 1].
	Fraction(offset uint64) float64
	// Len returns the number of bytes in the source.
	Len() uint64
	// Close releases the source. Slices obtained earlier become invalid.
	Close() error
}

// clampWindow fits the request [start, end) into a source of n bytes while
// keeping its size where possible. A request entirely past the end is
// answered with the last bytes of the source.
func clampWindow(start, end, n uint64) cursor.Range {
	var size uint64
	if end > start {
		size = min(end-start, n)
	}

	if start >= n {
		start = n - size
		end = start + size
	} else if end >= n {
		end = n
		start = end - size
	} else {
		end = start + size
	}

	return cursor.Range{Start: start, End: end}
}

// fraction is the position indicator shared by the sources: 0.5 when there
// is nowhere to move, otherwise offset scaled onto the last byte.
func fraction(offset, n uint64) float64 {
	if n <= 1 {
		return 0.5
	}
	last := n - 1
	return float64(min(offset, last)) / float64(last)
}
