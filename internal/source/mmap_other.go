//go:build !unix

package source

import (
	"errors"
	"os"
)

func mapFile(string, *os.File, uint64) (*FileSource, error) {
	return nil, errors.New("mmap is not supported on this platform")
}
