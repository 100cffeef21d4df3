// Package cache provides an in-memory store for values that are expensive to
// build and cheap to share, such as locale-bound formatters.
//
// # Store
//
// [Memory] is a concurrency-safe map guarded by a mutex with an optional
// least-recently-used bound. By default it never evicts: the key space of
// formatter configurations is expected to stay small relative to call volume.
//
//	c := cache.NewMemory[*i18n.NumberFormat]()
//	defer c.Close()
//
//	c.Set(ctx, "number|en-US", nf)
//	nf, err := c.Get(ctx, "number|en-US")
//
// Use [WithMaxEntries] to bound the store when keys come from untrusted input.
//
// # Memoized construction
//
// [Memo] wraps a [Cache] and builds missing values through a [Loader].
// Concurrent misses for the same key share a single construction through
// singleflight. A construction that races with another one for the same key
// simply overwrites an equivalent value:
//
//	m := cache.NewMemo[Formatter](cache.NewMemory[Formatter]())
//	f, err := m.Get(ctx, key, func(ctx context.Context) (Formatter, error) {
//	    return build(locales, opts)
//	})
//
// Loader errors are returned to the caller and never cached.
//
// # Error Handling
//
//   - [ErrNotFound]: key does not exist
//   - [ErrClosed]: operation on a closed cache
//
// Use [errors.Is] to check:
//
//	if errors.Is(err, cache.ErrNotFound) {
//	    // handle miss
//	}
package cache
