//go:build unix

package source

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps f read-only. The mapping outlives the descriptor, so the
// caller may close f once this succeeds.
func mapFile(path string, f *os.File, size uint64) (*FileSource, error) {
	if size == 0 {
		// mmap rejects zero-length mappings.
		return &FileSource{name: path}, nil
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("file too large to map: %d bytes", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}

	return &FileSource{
		name:  path,
		data:  data,
		unmap: func() error { return unix.Munmap(data) },
	}, nil
}
