package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/internal"
	"github.com/dmitrymomot/intl/middlewares"
)

func newIntl(t *testing.T) *internal.Intl {
	t.Helper()

	in, err := internal.New(
		internal.WithConfig(internal.Config{Locales: []string{"en"}}),
		internal.WithMessages("en", map[string]any{"hello": "Hello {name}"}),
		internal.WithMessages("de", map[string]any{"hello": "Hallo {name}"}),
	)
	require.NoError(t, err)
	return in
}

// greet renders a message and a number with whatever scope the middleware installed.
func greet(in *internal.Intl) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := internal.Seq(
			internal.Call(in.FormatMessage, internal.P(map[string]any{"_key": "hello", "name": "Ann"}), nil),
			internal.Text(" "),
			internal.Call(in.FormatNumber, internal.P(map[string]any{"val": 1234.5}), nil),
		)
		if err := body.Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func TestLocale(t *testing.T) {
	t.Parallel()

	in := newIntl(t)
	handler := middlewares.Locale(in)(greet(in))

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
		locale   string
	}{
		{"fallback", func(*http.Request) {}, "Hello Ann 1,234.5", "en"},
		{"accept language", func(r *http.Request) {
			r.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")
		}, "Hallo Ann 1.234,5", "de"},
		{"cookie beats header", func(r *http.Request) {
			r.Header.Set("Accept-Language", "de")
			r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		}, "Hello Ann 1,234.5", "en"},
		{"query beats cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
			q := r.URL.Query()
			q.Set("lang", "de")
			r.URL.RawQuery = q.Encode()
		}, "Hallo Ann 1.234,5", "de"},
		{"invalid locale falls back", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "lang", Value: "!!"})
		}, "Hello Ann 1,234.5", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, w.Body.String())
			assert.Equal(t, tt.locale, w.Header().Get("Content-Language"))
		})
	}
}

func TestLocaleWithChiParam(t *testing.T) {
	t.Parallel()

	in := newIntl(t)
	r := chi.NewRouter()
	r.Route("/{lang}", func(r chi.Router) {
		r.Use(middlewares.Locale(in, middlewares.WithLocaleExtractor(internal.NewExtractor(
			internal.FromParam("lang"),
		))))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(middlewares.GetLocale(req.Context())))
		})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/de/", nil))
	assert.Equal(t, "de", w.Body.String())
}

func TestLocaleInnerBlockShadows(t *testing.T) {
	t.Parallel()

	in := newIntl(t)
	handler := middlewares.Locale(in)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := internal.Call(in.Block, internal.P(map[string]any{"locales": "de-DE"}),
			internal.Call(in.FormatNumber, internal.P(map[string]any{"val": 1234.5}), nil))
		_ = body.Render(r.Context(), w)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "1.234,5", w.Body.String())
}

func TestLocaleKeepsOuterStack(t *testing.T) {
	t.Parallel()

	in := newIntl(t)
	var currency any
	handler := middlewares.Locale(in)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		currency, _ = in.Resolve(r.Context(), "intl", "currency")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := internal.WithStack(req.Context(), internal.NewStack(internal.Frame{
		"intl": map[string]any{"currency": "EUR"},
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	assert.Equal(t, "EUR", currency)
}

func TestFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middlewares.FromAcceptLanguage([]string{"en"})(req)
	assert.False(t, ok)

	req.Header.Set("Accept-Language", "pl,de;q=0.8")
	v, ok := middlewares.FromAcceptLanguage([]string{"en", "de"})(req)
	require.True(t, ok)
	assert.Equal(t, "de", v)

	v, ok = middlewares.FromAcceptLanguage(nil)(req)
	require.True(t, ok)
	assert.Equal(t, "pl", v)

	req.Header.Set("Accept-Language", "de;q=0.8,fr-CA;q=0.9")
	v, ok = middlewares.FromAcceptLanguage(nil)(req)
	require.True(t, ok)
	assert.Equal(t, "fr-CA", v)

	req.Header.Set("Accept-Language", ";;;")
	_, ok = middlewares.FromAcceptLanguage(nil)(req)
	assert.False(t, ok)
}

func TestLocaleWithoutCatalogHonoursWeights(t *testing.T) {
	t.Parallel()

	in, err := internal.New(internal.WithConfig(internal.Config{Locales: []string{"en-US"}}))
	require.NoError(t, err)

	handler := middlewares.Locale(in)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(middlewares.GetLocale(r.Context())))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-CA;q=0.9,de;q=0.8")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, "fr-CA", w.Body.String())
}

func TestGetLocale(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middlewares.GetLocale(context.Background()))
}
