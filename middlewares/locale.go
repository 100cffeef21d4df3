package middlewares

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/intl/internal"
	"github.com/dmitrymomot/intl/pkg/i18n"
)

// LocaleKey is the context key of the negotiated locale.
type LocaleKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Extractor    internal.Extractor
	Available    []string
	Fallback     string
	extractorSet bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor sets a custom locale extractor chain.
func WithLocaleExtractor(ext internal.Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithAvailableLocales restricts negotiation to the given locales.
// Defaults to the locales of the message catalog.
func WithAvailableLocales(locales ...string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Available = locales
	}
}

// WithFallbackLocale sets the locale used when nothing matches.
// Defaults to the first configured locale of the Intl, then en-US.
func WithFallbackLocale(locale string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Fallback = locale
	}
}

// FromAcceptLanguage returns an ExtractorSource that parses the Accept-Language
// header and matches it against the available locales. Without available
// locales it returns the highest weighted tag of the header.
func FromAcceptLanguage(available []string) internal.ExtractorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		if len(available) == 0 {
			return i18n.PreferredLocale(header)
		}
		return i18n.ParseAcceptLanguage(header, available), true
	}
}

// Locale returns middleware that negotiates the request locale and installs
// it, with the catalog messages of that locale, as the global intl frame of
// the render scope.
//
// Default chain: ?lang query → "lang" cookie → Accept-Language.
func Locale(in *internal.Intl, opts ...LocaleOption) func(http.Handler) http.Handler {
	catalog := in.Catalog()
	cfg := &LocaleConfig{Available: catalog.Locales()}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery("lang"),
			internal.FromCookie("lang"),
			FromAcceptLanguage(cfg.Available),
		)
	}

	if cfg.Fallback == "" {
		if defaults := in.Config().Locales; len(defaults) > 0 {
			cfg.Fallback = defaults[0]
		} else {
			cfg.Fallback = i18n.DefaultLocale
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := cfg.Extractor.Extract(r)
			if !ok {
				locale = cfg.Fallback
			}
			if _, err := i18n.ParseLocales([]string{locale}); err != nil {
				locale = cfg.Fallback
			}

			scope := map[string]any{"locales": []string{locale}}
			if messages := catalog.Messages(locale); messages != nil {
				scope["messages"] = messages
			}

			ctx := context.WithValue(r.Context(), LocaleKey{}, locale)
			ctx = installFrame(ctx, internal.Frame{"intl": scope})

			w.Header().Set("Content-Language", locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// installFrame makes frame the global frame of a fresh stack, or pushes it
// when an outer handler already installed one.
func installFrame(ctx context.Context, frame internal.Frame) context.Context {
	if internal.StackFrom(ctx) != nil {
		return internal.PushFrame(ctx, frame)
	}
	return internal.WithStack(ctx, internal.NewStack(frame))
}

// GetLocale returns the locale negotiated by the Locale middleware.
// Returns an empty string if the middleware is not used.
func GetLocale(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey{}).(string); ok {
		return v
	}
	return ""
}
