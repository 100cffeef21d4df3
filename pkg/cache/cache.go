package cache

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache is a generic key-value store for constructed values.
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value under key, replacing any previous value.
	Set(ctx context.Context, key string, value V) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Len returns the number of stored entries.
	Len() int

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Close releases resources. Further writes return ErrClosed.
	Close() error
}

// Loader builds the value for a missing key.
type Loader[V any] func(ctx context.Context) (V, error)

// Stats is a snapshot of Memo counters.
type Stats struct {
	Hits   int64
	Misses int64
	Builds int64
	Errors int64
}

// Memo memoizes values built by a Loader in a Cache.
// It is safe for concurrent use.
type Memo[V any] struct {
	store  Cache[V]
	flight singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
	builds atomic.Int64
	errs   atomic.Int64
}

// NewMemo creates a Memo backed by store.
// If store is nil, an unbounded Memory store is used.
func NewMemo[V any](store Cache[V]) *Memo[V] {
	if store == nil {
		store = NewMemory[V]()
	}
	return &Memo[V]{store: store}
}

// Get returns the value stored under key, calling load on a miss.
// Concurrent misses for the same key are collapsed into one load call.
// The loaded value is stored best-effort; a failed store does not fail Get.
func (m *Memo[V]) Get(ctx context.Context, key string, load Loader[V]) (V, error) {
	if v, err := m.store.Get(ctx, key); err == nil {
		m.hits.Add(1)
		return v, nil
	}
	m.misses.Add(1)

	v, err, _ := m.flight.Do(key, func() (any, error) {
		// Another flight may have finished between our miss and Do.
		if v, err := m.store.Get(ctx, key); err == nil {
			return v, nil
		}

		m.builds.Add(1)
		val, err := load(ctx)
		if err != nil {
			m.errs.Add(1)
			return nil, err
		}

		_ = m.store.Set(ctx, key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	val, _ := v.(V)
	return val, nil
}

// Stats returns a snapshot of the hit, miss and build counters.
func (m *Memo[V]) Stats() Stats {
	return Stats{
		Hits:   m.hits.Load(),
		Misses: m.misses.Load(),
		Builds: m.builds.Load(),
		Errors: m.errs.Load(),
	}
}

// Len returns the number of memoized values.
func (m *Memo[V]) Len() int {
	return m.store.Len()
}

// Reset drops every memoized value. Counters are kept.
func (m *Memo[V]) Reset(ctx context.Context) error {
	return m.store.Clear(ctx)
}
