// Package cache implements a TTL cache for remote documents with
// refresh-on-expiry semantics. Entries live for the process lifetime;
// stale values are overwritten on refresh, never evicted.
package cache

import (
	"context"
	"sync"
	"time"
)

// Fetcher loads the document for key when the cache misses or the entry is stale
type Fetcher func(ctx context.Context, key string) ([]byte, error)

type entry struct {
	value     []byte
	fetchedAt time.Time
}

// Service is a concurrency-safe TTL cache keyed by fetch URL.
// Each key carries its own TTL clock.
type Service struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewService creates a cache on the wall clock
func NewService() *Service {
	return NewServiceWithClock(time.Now)
}

// NewServiceWithClock creates a cache with an injectable clock so tests
// control expiry deterministically
func NewServiceWithClock(now func() time.Time) *Service {
	return &Service{
		entries: make(map[string]entry),
		now:     now,
	}
}

// GetOrFetch returns the cached value for key when its age is below ttl,
// otherwise invokes fetch and stores the result with a fresh timestamp.
// A fetch failure propagates to the caller and leaves any existing entry
// untouched, so a stale value is never replaced by an error.
//
// The fetch runs outside the lock: two requests observing the same key as
// expired may both hit the upstream, and the last write wins. Values are
// idempotent fetches of the same resource, so the duplicate work is wasted
// but harmless.
func (s *Service) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch Fetcher) ([]byte, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && s.now().Sub(e.fetchedAt) < ttl {
		s.mu.Unlock()
		return e.value, nil
	}
	s.mu.Unlock()

	value, err := fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, fetchedAt: s.now()}
	s.mu.Unlock()
	return value, nil
}

// Len reports how many distinct keys have been cached
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
