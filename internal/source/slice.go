package source

import "github.com/zjrosen/heks/internal/cursor"

// Slice is a window of source bytes tagged with the offsets it covers.
//
// Data is borrowed from the source that produced it and is only valid until
// the next Fetch on that source.
type Slice struct {
	Data     []byte
	Location cursor.Range
}

// Len returns the number of bytes in the slice.
func (s Slice) Len() int { return len(s.Data) }

// Empty reports whether the slice holds no bytes.
func (s Slice) Empty() bool { return len(s.Data) == 0 }

// AlignUp returns the slice with its start rounded up to a multiple of align.
// If that passes the end, the result is empty and sits at the end.
func (s Slice) AlignUp(align uint64) Slice {
	if align == 0 {
		return s
	}

	var offset uint64
	if misalignment := s.Location.Start % align; misalignment > 0 {
		offset = align - misalignment
	}

	start := s.Location.End
	if offset < s.Location.End-s.Location.Start {
		start = s.Location.Start + offset
	}
	skip := min(offset, uint64(len(s.Data)))

	return Slice{
		Data:     s.Data[skip:],
		Location: cursor.Range{Start: start, End: s.Location.End},
	}
}

// Fetch returns the bytes selected by c. The cursor is expected to lie inside
// the slice already; anything outside is cut off.
func (s Slice) Fetch(c cursor.Cursor) []byte {
	c.Clamp(s.Location)
	from := min(c.Start()-s.Location.Start, uint64(len(s.Data)))
	to := min(c.End()-s.Location.Start, uint64(len(s.Data)))
	return s.Data[from:to]
}
