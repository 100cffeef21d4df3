package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/internal"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	t.Run("empty sources returns false", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		v, ok := ext.Extract(req)
		require.False(t, ok)
		require.Empty(t, v)
		require.Equal(t, 0, ext.Len())
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor(
			internal.FromQuery("lang"),
			internal.FromHeader("X-Lang"),
		)
		req := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		req.Header.Set("X-Lang", "fr")

		v, ok := ext.Extract(req)
		require.True(t, ok)
		require.Equal(t, "de", v)
	})

	t.Run("falls through to next source", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor(
			nil,
			internal.FromCookie("lang"),
			internal.FromHeader("X-Lang"),
		)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Lang", "fr")

		v, ok := ext.Extract(req)
		require.True(t, ok)
		require.Equal(t, "fr", v)
	})
}

func TestExtractorSources(t *testing.T) {
	t.Parallel()

	t.Run("header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := internal.FromHeader("X-Lang")(req)
		require.False(t, ok)

		req.Header.Set("X-Lang", "ja")
		v, ok := internal.FromHeader("X-Lang")(req)
		require.True(t, ok)
		require.Equal(t, "ja", v)
	})

	t.Run("query", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?lang=", nil)
		_, ok := internal.FromQuery("lang")(req)
		require.False(t, ok)

		req = httptest.NewRequest(http.MethodGet, "/?lang=en-GB", nil)
		v, ok := internal.FromQuery("lang")(req)
		require.True(t, ok)
		require.Equal(t, "en-GB", v)
	})

	t.Run("cookie", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, ok := internal.FromCookie("lang")(req)
		require.False(t, ok)

		req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
		v, ok := internal.FromCookie("lang")(req)
		require.True(t, ok)
		require.Equal(t, "es", v)
	})

	t.Run("url param", func(t *testing.T) {
		t.Parallel()

		var got string
		var found bool
		r := chi.NewRouter()
		r.Get("/{lang}/page", func(w http.ResponseWriter, req *http.Request) {
			got, found = internal.FromParam("lang")(req)
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fr/page", nil))
		require.True(t, found)
		require.Equal(t, "fr", got)
	})
}
