package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/i18n"
)

// Reserved call-site parameters. They steer a helper and never reach the
// formatter options.
const (
	ParamVal        = "val"
	ParamLocales    = "locales"
	ParamLocale     = "locale" // deprecated alias of ParamLocales
	ParamFormatName = "formatName"
	ParamMsg        = "_msg"
	ParamKey        = "_key"
)

var reservedParams = []string{ParamVal, ParamLocales, ParamLocale, ParamFormatName, ParamMsg, ParamKey}

// Intl resolves formatting configuration from the render scope and
// formats values with cached formatters. It is safe for concurrent renders.
type Intl struct {
	logger   *slog.Logger
	store    cache.Cache[any]
	cache    *FormatterCache
	now      func() time.Time
	catalog  i18n.Catalog
	defaults Frame
	config   Config
}

// New creates an Intl. Option errors are collected and returned together.
func New(opts ...Option) (*Intl, error) {
	in := &Intl{
		logger:  slog.Default(),
		now:     time.Now,
		catalog: i18n.Catalog{},
	}

	var errs []error
	for _, opt := range opts {
		if err := opt(in); err != nil {
			errs = append(errs, fmt.Errorf("failed to apply option: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if in.store == nil {
		in.store = cache.NewMemory[any](cache.WithMaxEntries(in.config.MaxFormatters))
	}
	in.cache = NewFormatterCache(in.store)
	in.defaults = in.defaultFrame()
	return in, nil
}

// defaultFrame merges the config with catalog messages of the first
// default locale. Config messages win.
func (in *Intl) defaultFrame() Frame {
	frame := in.config.Frame()
	if len(in.config.Locales) == 0 {
		return frame
	}
	catalogMessages := in.catalog.Messages(in.config.Locales[0])
	if len(catalogMessages) == 0 {
		return frame
	}
	scope, _ := frame["intl"].(map[string]any)
	messages := maps.Clone(catalogMessages)
	maps.Copy(messages, in.config.Messages)
	scope["messages"] = messages
	return frame
}

// Logger returns the configured logger.
func (in *Intl) Logger() *slog.Logger { return in.logger }

// Catalog returns the loaded message catalog.
func (in *Intl) Catalog() i18n.Catalog { return in.catalog }

// Config returns the default configuration.
func (in *Intl) Config() Config { return in.config }

// Formatters exposes the formatter cache.
func (in *Intl) Formatters() *FormatterCache { return in.cache }

// Scope returns the frames visible from ctx: the render stack, its global
// frame, then the defaults.
func (in *Intl) Scope(ctx context.Context) FrameSource {
	return withFallback{src: StackFrom(ctx), fallback: in.defaults}
}

// Resolve looks up path in the scope visible from ctx.
func (in *Intl) Resolve(ctx context.Context, path ...string) (any, bool) {
	return Resolve(in.Scope(ctx), path...)
}

// resolveString resolves and taps path, returning a non-empty string.
func (in *Intl) resolveString(ctx context.Context, path ...string) (string, error) {
	raw, ok := in.Resolve(ctx, path...)
	if !ok {
		return "", nil
	}
	v, err := Tap(ctx, raw)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), nil
	case nil, bool:
		return "", nil
	default:
		return fmt.Sprint(s), nil
	}
}

// Locales returns the effective locale list for a call: the locales
// parameter, the deprecated locale parameter, then the scope. The result
// may be empty, in which case formatters use their own default.
func (in *Intl) Locales(ctx context.Context, params Params) ([]string, error) {
	return in.locales(ctx, "", params)
}

func (in *Intl) locales(ctx context.Context, op string, params Params) ([]string, error) {
	for _, key := range []string{ParamLocales, ParamLocale} {
		v, ok := params[key]
		if !ok {
			continue
		}
		if key == ParamLocale {
			in.logger.WarnContext(ctx, "deprecated parameter",
				slog.String("helper", op),
				slog.String("param", ParamLocale),
				slog.String("use", ParamLocales),
			)
		}
		raw, err := v.Tap(ctx)
		if err != nil {
			return nil, err
		}
		list, ok := toLocaleList(raw)
		if !ok {
			return nil, &InvalidValueError{Op: op, Param: key, Value: raw}
		}
		if len(list) > 0 {
			return list, nil
		}
	}

	for _, key := range []string{ParamLocales, ParamLocale} {
		raw, ok := in.Resolve(ctx, "intl", key)
		if !ok {
			continue
		}
		v, err := Tap(ctx, raw)
		if err != nil {
			return nil, err
		}
		if list, ok := toLocaleList(v); ok && len(list) > 0 {
			return list, nil
		}
	}
	return nil, nil
}

func toLocaleList(v any) ([]string, bool) {
	switch l := v.(type) {
	case nil, bool:
		return nil, true
	case string:
		return i18n.SplitLocales(l), true
	case []string:
		var out []string
		for _, s := range l {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case []any:
		var out []string
		for _, item := range l {
			s, ok := item.(string)
			if !ok {
				stringer, isStringer := item.(fmt.Stringer)
				if !isStringer {
					return nil, false
				}
				s = stringer.String()
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case fmt.Stringer:
		return i18n.SplitLocales(l.String()), true
	default:
		return nil, false
	}
}

// MergeOptions computes the flat formatter options of a call. A formatName
// parameter selects the preset at intl.formats.<category>.<name>; call-site
// parameters are merged over a shallow copy of it. Reserved parameters are
// dropped and every value is tapped. A missing preset is an empty base.
func (in *Intl) MergeOptions(ctx context.Context, category string, params Params) (i18n.Options, error) {
	opts := i18n.Options{}

	if v, ok := params[ParamFormatName]; ok {
		raw, err := v.Tap(ctx)
		if err != nil {
			return nil, err
		}
		if name, ok := raw.(string); ok && name != "" {
			if preset, found := in.Resolve(ctx, "intl", "formats", category, name); found {
				preset, err = Tap(ctx, preset)
				if err != nil {
					return nil, err
				}
				maps.Copy(opts, toMap(preset))
			}
		}
	}

	for k, v := range params.Without(reservedParams...) {
		opts[k] = v
	}

	for k, v := range opts {
		tapped, err := Tap(ctx, v)
		if err != nil {
			return nil, err
		}
		opts[k] = tapped
	}
	return opts, nil
}

func toMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case i18n.Options:
		return m
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	case Params:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	default:
		return nil
	}
}
