// Package cache memoizes aggregate reports by the digest of the schematic
// text, so identical inputs in one run are scanned once.
package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/schematic/aggregate"
	"github.com/katalvlaran/schematic/scan"
)

// ErrInvalidSize is returned for a non-positive cache size.
var ErrInvalidSize = errors.New("cache: size must be > 0")

// Digest identifies a schematic text.
type Digest [sha256.Size]byte

// Entry is one cached result.
type Entry struct {
	Schematic *scan.Schematic
	Report    aggregate.Report
}

// Reports is an LRU of scan results keyed by content digest.
// Hit/miss counters are not synchronized; use one Reports per goroutine.
type Reports struct {
	lru          *lru.Cache[Digest, Entry]
	hits, misses int
}

// New returns a cache holding at most size entries.
func New(size int) (*Reports, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSize, size)
	}
	c, err := lru.New[Digest, Entry](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Reports{lru: c}, nil
}

// Get returns the entry for text, scanning and summarizing it on a miss.
// Scan errors are returned and not cached. The bool reports a cache hit.
func (r *Reports) Get(text string, opts ...aggregate.Option) (Entry, bool, error) {
	key := Digest(sha256.Sum256([]byte(text)))
	if e, ok := r.lru.Get(key); ok {
		r.hits++
		return e, true, nil
	}
	r.misses++

	s, err := scan.Scan(text)
	if err != nil {
		return Entry{}, false, err
	}
	e := Entry{Schematic: s, Report: aggregate.Summarize(s, opts...)}
	r.lru.Add(key, e)
	return e, false, nil
}

// Stats returns hit and miss counts.
func (r *Reports) Stats() (hits, misses int) {
	return r.hits, r.misses
}

// Len returns the number of cached entries.
func (r *Reports) Len() int {
	return r.lru.Len()
}
