package internal_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/internal"
	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/i18n"
)

func TestFormatterKeyIgnoresOptionOrder(t *testing.T) {
	t.Parallel()

	a := internal.FormatterKey{Kind: internal.KindNumber, Locales: []string{"en-US"}, Options: i18n.Options{}}
	b := internal.FormatterKey{Kind: internal.KindNumber, Locales: []string{"en-US"}, Options: i18n.Options{}}

	a.Options["style"] = "currency"
	a.Options["currency"] = "USD"
	b.Options["currency"] = "USD"
	b.Options["style"] = "currency"

	ka, err := a.String()
	require.NoError(t, err)
	kb, err := b.String()
	require.NoError(t, err)
	assert.Equal(t, ka, kb)

	c := a
	c.Locales = []string{"de-DE"}
	kc, err := c.String()
	require.NoError(t, err)
	assert.NotEqual(t, ka, kc)
}

func TestFormatterCache(t *testing.T) {
	t.Parallel()

	key := internal.FormatterKey{Kind: internal.KindDate, Locales: []string{"en"}, Options: i18n.Options{"year": "numeric"}}

	t.Run("builds once", func(t *testing.T) {
		t.Parallel()

		fc := internal.NewFormatterCache(nil)
		var builds atomic.Int32
		build := func() (any, error) {
			builds.Add(1)
			return "formatter", nil
		}

		ctx := context.Background()
		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				v, err := fc.Get(ctx, key, build)
				assert.NoError(t, err)
				assert.Equal(t, "formatter", v)
			})
		}
		wg.Wait()

		assert.Equal(t, int32(1), builds.Load())
		assert.Equal(t, 1, fc.Len())
		assert.Equal(t, int64(1), fc.Stats().Builds)
	})

	t.Run("build errors are not cached", func(t *testing.T) {
		t.Parallel()

		fc := internal.NewFormatterCache(cache.NewMemory[any]())
		boom := errors.New("boom")

		_, err := fc.Get(context.Background(), key, func() (any, error) { return nil, boom })
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 0, fc.Len())

		v, err := fc.Get(context.Background(), key, func() (any, error) { return 1, nil })
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("unencodable keys bypass the cache", func(t *testing.T) {
		t.Parallel()

		fc := internal.NewFormatterCache(nil)
		bad := internal.FormatterKey{Kind: internal.KindNumber, Options: i18n.Options{"fn": func() {}}}

		v, err := fc.Get(context.Background(), bad, func() (any, error) { return "direct", nil })
		require.NoError(t, err)
		assert.Equal(t, "direct", v)
		assert.Equal(t, 0, fc.Len())
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()

		fc := internal.NewFormatterCache(nil)
		_, err := fc.Get(context.Background(), key, func() (any, error) { return 1, nil })
		require.NoError(t, err)
		require.Equal(t, 1, fc.Len())

		require.NoError(t, fc.Reset(context.Background()))
		assert.Equal(t, 0, fc.Len())
	})
}
