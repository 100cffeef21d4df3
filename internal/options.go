package internal

import (
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/i18n"
)

// Option configures an Intl.
type Option func(*Intl) error

// WithLogger sets the logger used for deprecation warnings and diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(in *Intl) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		in.logger = l
		return nil
	}
}

// WithConfig sets the default configuration consulted after the global frame.
//
// Example:
//
//	intl.New(
//	    intl.WithConfig(intl.Config{Locales: []string{"en-US"}, Currency: "USD"}),
//	)
func WithConfig(cfg Config) Option {
	return func(in *Intl) error {
		in.config = cfg
		return nil
	}
}

// WithMessages adds messages for a locale. Messages of the first default
// locale are also reachable from the defaults frame.
func WithMessages(locale string, messages map[string]any) Option {
	return func(in *Intl) error {
		if locale == "" {
			return errors.New("locale is empty")
		}
		in.catalog.Add(locale, "", messages)
		return nil
	}
}

// WithMessagesDir loads a message catalog laid out as {lang}/{namespace}.json
// or .yaml from fsys.
func WithMessagesDir(fsys fs.FS) Option {
	return func(in *Intl) error {
		catalog, err := i18n.LoadCatalog(fsys)
		if err != nil {
			return err
		}
		for locale, messages := range catalog {
			target, ok := in.catalog[locale]
			if !ok {
				target = map[string]any{}
				in.catalog[locale] = target
			}
			maps.Copy(target, messages)
		}
		return nil
	}
}

// WithFormatterStore replaces the store behind the formatter cache.
func WithFormatterStore(store cache.Cache[any]) Option {
	return func(in *Intl) error {
		if store == nil {
			return errors.New("formatter store is nil")
		}
		in.store = store
		return nil
	}
}

// WithClock sets the reference time source for relative formatting.
func WithClock(now func() time.Time) Option {
	return func(in *Intl) error {
		if now == nil {
			return errors.New("clock is nil")
		}
		in.now = now
		return nil
	}
}
