package internal

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

// Config is the default formatting configuration. It is consulted after the
// global frame, as the outermost scope.
type Config struct {
	Formats       map[string]map[string]map[string]any `yaml:"formats"`
	Messages      map[string]any                       `yaml:"messages"`
	Currency      string                               `yaml:"currency" env:"INTL_CURRENCY"`
	TimeZone      string                               `yaml:"timeZone" env:"INTL_TIME_ZONE"`
	Locales       []string                             `yaml:"locales" env:"INTL_LOCALES" envSeparator:","`
	MaxFormatters int                                  `yaml:"maxFormatters" env:"INTL_MAX_FORMATTERS" envDefault:"0"`
}

// ConfigFromEnv reads Config from INTL_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing intl config from env: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML (or JSON) config file from fsys.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("reading %q: %w", name, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %q: %w", name, err)
	}
	return cfg, nil
}

// Frame renders the config as a scope frame holding an "intl" object.
// Empty fields are left out so they do not shadow anything.
func (c Config) Frame() Frame {
	scope := map[string]any{}
	if len(c.Locales) > 0 {
		scope["locales"] = slices.Clone(c.Locales)
	}
	if c.Currency != "" {
		scope["currency"] = c.Currency
	}
	if c.TimeZone != "" {
		scope["timeZone"] = c.TimeZone
	}
	if len(c.Formats) > 0 {
		formats := make(map[string]any, len(c.Formats))
		for category, presets := range c.Formats {
			named := make(map[string]any, len(presets))
			for name, opts := range presets {
				named[name] = opts
			}
			formats[category] = named
		}
		scope["formats"] = i18n.FormatsFrom(formats)
	}
	if len(c.Messages) > 0 {
		scope["messages"] = c.Messages
	}
	return Frame{"intl": scope}
}
