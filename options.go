package intl

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/dmitrymomot/intl/internal"
	"github.com/dmitrymomot/intl/pkg/cache"
)

// WithLogger sets the logger for deprecation warnings.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithConfig sets the defaults consulted after the global frame.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

// WithMessages adds messages for a locale.
func WithMessages(locale string, messages map[string]any) Option {
	return internal.WithMessages(locale, messages)
}

// WithMessagesDir loads {lang}/{namespace}.json|yaml message files.
func WithMessagesDir(fsys fs.FS) Option {
	return internal.WithMessagesDir(fsys)
}

// WithFormatterStore replaces the store behind the formatter cache,
// e.g. a bounded cache.NewMemory.
func WithFormatterStore(store cache.Cache[any]) Option {
	return internal.WithFormatterStore(store)
}

// WithClock sets the reference time for formatRelative.
func WithClock(now func() time.Time) Option {
	return internal.WithClock(now)
}
