package internal

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/i18n"
)

// Formatter kinds.
const (
	KindNumber   = "number"
	KindDate     = "date"
	KindTime     = "time"
	KindRelative = "relative"
	KindMessage  = "message"
)

// FormatterKey identifies a constructed formatter. Two keys with equal
// fields produce the same cache entry regardless of option order.
type FormatterKey struct {
	Options i18n.Options `json:"options"`
	Kind    string       `json:"kind"`
	Pattern string       `json:"pattern,omitempty"`
	Locales []string     `json:"locales"`
}

// String returns the canonical form of the key. Map keys marshal sorted.
func (k FormatterKey) String() (string, error) {
	b, err := json.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("encoding formatter key: %w", err)
	}
	return string(b), nil
}

// FormatterCache memoizes constructed formatters for the lifetime of an Intl.
type FormatterCache struct {
	memo *cache.Memo[any]
}

// NewFormatterCache returns a cache on top of store. A nil store means an
// unbounded in-memory store.
func NewFormatterCache(store cache.Cache[any]) *FormatterCache {
	return &FormatterCache{memo: cache.NewMemo(store)}
}

// Get returns the formatter for key, calling build on a miss. Build errors
// are returned unchanged and nothing is stored. Keys that cannot be encoded
// bypass the cache.
func (c *FormatterCache) Get(ctx context.Context, key FormatterKey, build func() (any, error)) (any, error) {
	k, err := key.String()
	if err != nil {
		return build()
	}
	return c.memo.Get(ctx, k, func(context.Context) (any, error) {
		return build()
	})
}

// Stats reports hits, misses and constructions.
func (c *FormatterCache) Stats() cache.Stats {
	return c.memo.Stats()
}

// Len is the number of cached formatters.
func (c *FormatterCache) Len() int {
	return c.memo.Len()
}

// Reset drops every cached formatter.
func (c *FormatterCache) Reset(ctx context.Context) error {
	return c.memo.Reset(ctx)
}

func cachedFormatter[F any](ctx context.Context, c *FormatterCache, key FormatterKey, build func() (F, error)) (F, error) {
	v, err := c.Get(ctx, key, func() (any, error) {
		return build()
	})
	if err != nil {
		var zero F
		return zero, err
	}
	f, ok := v.(F)
	if !ok {
		return build()
	}
	return f, nil
}
