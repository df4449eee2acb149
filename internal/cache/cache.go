// Package cache is the request-keyed server-state cache: one entry per
// resource tag, invalidated wholesale after any mutation of that resource.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Store caches fetched collections by resource tag.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
}

// New creates a Store. Entries older than ttl are treated as stale and
// refetched on the next read; ttl <= 0 means entries stay fresh until
// invalidated.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// Invalidate discards the cached value for exactly one tag. The next Read of
// that tag fetches fresh data. No cross-resource invalidation.
func (s *Store) Invalidate(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, tag)
}

func (s *Store) lookup(tag string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[tag]
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && time.Since(e.fetchedAt) > s.ttl {
		delete(s.entries, tag)
		return nil, false
	}
	return e.value, true
}

func (s *Store) store(tag string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[tag] = &entry{value: value, fetchedAt: time.Now()}
}

// Read returns the cached value for tag when fresh, otherwise runs fetch and
// caches its result. A fetch error is returned as-is and nothing is cached,
// so the next read retries.
func Read[T any](ctx context.Context, s *Store, tag string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := s.lookup(tag); ok {
		typed, ok := v.(T)
		if !ok {
			// Two readers of the same tag disagree on the element type.
			var zero T
			return zero, fmt.Errorf("cache tag %q holds %T, want %T", tag, v, zero)
		}
		return typed, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.store(tag, value)
	return value, nil
}
