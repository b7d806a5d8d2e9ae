package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/zjrosen/heks/internal/cachemanager"
	"github.com/zjrosen/heks/internal/cursor"
	"github.com/zjrosen/heks/internal/log"
)

// PageCacheConfig sizes the page cache of a ReaderSource.
type PageCacheConfig struct {
	PageSize        int
	Expiration      time.Duration
	CleanupInterval time.Duration
	// Disabled reads every page from the file on each fetch.
	Disabled bool
}

// ReaderSource serves bytes read on demand from an io.ReaderAt. Pages are
// kept in an expiring cache so scrolling back and forth does not re-read.
type ReaderSource struct {
	name     string
	r        io.ReaderAt
	size     uint64
	pageSize uint64
	store    *cachemanager.InMemoryCacheManager[string, []byte]
	pages    *cachemanager.ReadThroughCache[string, []byte, uint64]
	window   []byte // reused by every Fetch
}

// NewReaderSource reads size bytes from r. If r is an io.Closer it is closed
// by Close.
func NewReaderSource(name string, r io.ReaderAt, size uint64, cfg PageCacheConfig) *ReaderSource {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultOptions().Cache.PageSize
	}
	s := &ReaderSource{
		name:     name,
		r:        r,
		size:     size,
		pageSize: uint64(pageSize),
		store:    cachemanager.NewInMemoryCacheManager[string, []byte]("pages:"+name, cfg.Expiration, cfg.CleanupInterval),
	}
	s.pages = cachemanager.NewReadThroughCache[string, []byte, uint64](s.store, s.readPage,
		cachemanager.ReadThroughOptions{TTL: cachemanager.DefaultTTL, Bypass: cfg.Disabled})
	return s
}

func (s *ReaderSource) Name() string { return s.name }

func (s *ReaderSource) Len() uint64 { return s.size }

func (s *ReaderSource) Fraction(offset uint64) float64 {
	return fraction(offset, s.size)
}

// Fetch assembles the window from cached pages. A failed read truncates the
// window at the failing page.
func (s *ReaderSource) Fetch(start, end uint64) Slice {
	r := clampWindow(start, end, s.size)
	s.window = s.window[:0]

	for pos := r.Start; pos < r.End; {
		index := pos / s.pageSize
		page, err := s.page(index)
		if err != nil {
			log.ErrorErr(log.CatSource, "Page read failed", err, "name", s.name, "page", index)
			break
		}

		from := pos - index*s.pageSize
		if from >= uint64(len(page)) {
			// Short page: the source is shorter than its reported size.
			break
		}
		to := min(uint64(len(page)), r.End-index*s.pageSize)
		s.window = append(s.window, page[from:to]...)
		pos = index*s.pageSize + to
	}

	return Slice{
		Data:     s.window,
		Location: cursor.Range{Start: r.Start, End: r.Start + uint64(len(s.window))},
	}
}

func (s *ReaderSource) page(index uint64) ([]byte, error) {
	return s.pages.Get(context.Background(), strconv.FormatUint(index, 10), index)
}

// readPage loads page index from the reader. The last page may be short.
func (s *ReaderSource) readPage(_ context.Context, index uint64) ([]byte, error) {
	page := make([]byte, s.pageSize)
	n, err := s.r.ReadAt(page, int64(index*s.pageSize)) //nolint:gosec // G115: pages lie within the file size
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading page %d: %w", index, err)
	}
	return page[:n], nil
}

// CachedPages returns the number of pages currently held.
func (s *ReaderSource) CachedPages() int {
	return s.store.Count()
}

// CacheStats returns the page reads served from the cache and from the file.
func (s *ReaderSource) CacheStats() (hits, misses uint64) {
	return s.pages.Stats()
}

// Close drops the cache and closes the reader if it is closable.
func (s *ReaderSource) Close() error {
	hits, misses := s.pages.Stats()
	log.Debug(log.CatCache, "Page cache closed", "name", s.name, "hits", hits, "misses", misses)
	_ = s.store.Flush(context.Background())
	s.window = nil
	if c, ok := s.r.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", s.name, err)
		}
	}
	return nil
}
