package source

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zjrosen/heks/internal/cachemanager"
	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/log"
)

// Options controls how OpenFile reads a file.
type Options struct {
	// Mmap maps the file into memory. When false, or when mapping fails,
	// the file is read page by page through a ReaderSource.
	Mmap  bool
	Cache PageCacheConfig
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Mmap: true,
		Cache: PageCacheConfig{
			PageSize:        64 * 1024,
			Expiration:      cachemanager.DefaultExpiration,
			CleanupInterval: cachemanager.DefaultCleanupInterval,
		},
	}
}

// OpenFile opens path for viewing.
func OpenFile(path string, opts Options) (Source, error) {
	f, err := os.Open(path) //nolint:gosec // G304: viewing user-chosen files is the point
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	size := uint64(max(info.Size(), 0))

	if opts.Mmap && info.Mode().IsRegular() {
		src, err := mapFile(path, f, size)
		if err == nil {
			_ = f.Close()
			log.Info(log.CatSource, "Mapped file", "path", path, "len", size)
			return src, nil
		}
		log.Warn(log.CatSource, "Mapping failed, reading instead", "path", path, "error", err)
	}

	log.Info(log.CatSource, "Reading file", "path", path, "len", size,
		"page_size", opts.Cache.PageSize, "cached", !opts.Cache.Disabled)
	return NewReaderSource(path, f, size, opts.Cache), nil
}

// FileSource serves a memory-mapped file.
//
// The mapping is shared, so a file truncated while it is shown loses the
// pages past its new end and touching them faults. Fetch copies the window
// out of the mapping and stops at the first page that faults; the watcher
// reload then replaces the source.
type FileSource struct {
	name   string
	data   []byte
	unmap  func() error
	window []byte // reused by every Fetch
}

func (f *FileSource) Name() string { return f.name }

func (f *FileSource) Len() uint64 { return uint64(len(f.data)) }

func (f *FileSource) Fetch(start, end uint64) Slice {
	r := clampWindow(start, end, f.Len())
	f.window = f.window[:0]

	page := uint64(os.Getpagesize())
	for pos := r.Start; pos < r.End; {
		next := min((pos/page+1)*page, r.End)
		var ok bool
		if f.window, ok = appendMapped(f.window, f.data[pos:next]); !ok {
			log.Warn(log.CatSource, "Mapped page unreadable, file shrank", "name", f.name, "offset", pos)
			break
		}
		pos = next
	}

	return Slice{
		Data:     f.window,
		Location: cursor.Range{Start: r.Start, End: r.Start + uint64(len(f.window))},
	}
}

// appendMapped appends src to dst, reporting false instead of crashing when
// src lies in a mapped page that no longer exists.
func appendMapped(dst, src []byte) (out []byte, ok bool) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if r := recover(); r != nil {
			if _, fault := r.(interface{ Addr() uintptr }); !fault {
				panic(r)
			}
			out, ok = dst, false
		}
	}()
	return append(dst, src...), true
}

func (f *FileSource) Fraction(offset uint64) float64 {
	return fraction(offset, f.Len())
}

// Close unmaps the file.
func (f *FileSource) Close() error {
	f.data = nil
	f.window = nil
	if f.unmap == nil {
		return nil
	}
	unmap := f.unmap
	f.unmap = nil
	if err := unmap(); err != nil {
		return fmt.Errorf("unmapping %s: %w", f.name, err)
	}
	return nil
}
