package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Formats accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config describes a logger. It can be read from LOG_* environment variables.
type Config struct {
	Level  string       `env:"LOG_LEVEL" envDefault:"info"`
	Format string       `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
}

// ConfigFromEnv reads Config from the environment.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing logger config from env: %w", err)
	}
	return cfg, nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
// An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

type options struct {
	writer     io.Writer
	level      slog.Leveler
	format     string
	extractors []ContextExtractor
}

// Option configures New and NewWithSentry.
type Option func(*options)

// WithWriter sets the output. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to info.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		if level != nil {
			o.level = level
		}
	}
}

// WithFormat selects FormatJSON or FormatText. Unknown formats fall back to JSON.
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithExtractors adds context extractors.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) { o.extractors = append(o.extractors, extractors...) }
}

func newOptions(opts []Option) *options {
	o := &options{writer: os.Stdout, level: slog.LevelInfo, format: FormatJSON}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.format == FormatText {
		return slog.NewTextHandler(o.writer, ho)
	}
	return slog.NewJSONHandler(o.writer, ho)
}

// New creates a logger. JSON to stdout at info level unless configured otherwise.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)
	return slog.New(NewContextHandler(o.handler(), o.extractors...))
}

// FromConfig creates a logger from cfg, sending to Sentry when a DSN is set.
func FromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithLevel(level), WithFormat(cfg.Format)}, opts...)
	return NewWithSentry(cfg.Sentry, opts...), nil
}
