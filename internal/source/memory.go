package source

// MemorySource serves bytes held in memory.
type MemorySource struct {
	name string
	data []byte
}

// NewMemorySource wraps data. The slice is not copied.
func NewMemorySource(name string, data []byte) *MemorySource {
	return &MemorySource{name: name, data: data}
}

// Demo returns a small buffer covering every glyph class the display knows.
func Demo() *MemorySource {
	data := []byte("\x09\x00\x06\x00hello")
	for b := 0x00; b <= 0x1f; b++ {
		data = append(data, byte(b))
	}
	data = append(data,
		0x7f, 0x80, 0x90, 0xa0, 0xb0, 0xc0, 0xd0, 0xe0,
		0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7,
		0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd, 0xfe, 0xff,
	)
	data = append(data, "world01234567890"...)
	return NewMemorySource("demo", data)
}

func (m *MemorySource) Name() string { return m.name }

func (m *MemorySource) Len() uint64 { return uint64(len(m.data)) }

func (m *MemorySource) Fetch(start, end uint64) Slice {
	r := clampWindow(start, end, m.Len())
	return Slice{Data: m.data[r.Start:r.End], Location: r}
}

func (m *MemorySource) Fraction(offset uint64) float64 {
	return fraction(offset, m.Len())
}

func (m *MemorySource) Close() error { return nil }
