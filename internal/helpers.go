package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

// Helper is a template helper: it writes to w, may render bodies and reads
// call-site params. Scope travels in ctx.
type Helper func(ctx context.Context, w io.Writer, bodies Bodies, params Params) error

// Bodies are the blocks passed to a helper.
type Bodies struct {
	Block Body
}

// MessageFormatter is a precompiled message. Messages implementing it are
// formatted directly, without locale resolution or the formatter cache.
type MessageFormatter interface {
	Format(values map[string]any) (string, error)
}

// Registrar receives helpers.
type Registrar interface {
	RegisterHelper(name string, h Helper)
}

// Helpers is a Registrar backed by a map.
type Helpers map[string]Helper

func (h Helpers) RegisterHelper(name string, fn Helper) { h[name] = fn }

// Register installs the helpers into r in name order.
func (in *Intl) Register(r Registrar) {
	helpers := in.Helpers()
	names := make([]string, 0, len(helpers))
	for name := range helpers {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		r.RegisterHelper(name, helpers[name])
	}
}

// Helpers returns a fresh map of every helper, including deprecated aliases.
func (in *Intl) Helpers() Helpers {
	return Helpers{
		"intl":           in.Block,
		"formatNumber":   in.FormatNumber,
		"formatDate":     in.FormatDate,
		"formatTime":     in.FormatTime,
		"formatRelative": in.FormatRelative,
		"formatMessage":  in.FormatMessage,
		"intlNumber":     in.deprecated("intlNumber", "formatNumber", in.FormatNumber),
		"intlDate":       in.deprecated("intlDate", "formatDate", in.FormatDate),
		"intlTime":       in.deprecated("intlTime", "formatTime", in.FormatTime),
		"intlMessage":    in.deprecated("intlMessage", "formatMessage", in.FormatMessage),
	}
}

func (in *Intl) deprecated(name, use string, h Helper) Helper {
	return func(ctx context.Context, w io.Writer, bodies Bodies, params Params) error {
		in.logger.WarnContext(ctx, "deprecated helper",
			slog.String("helper", name),
			slog.String("use", use),
		)
		return h(ctx, w, bodies, params)
	}
}

// Block renders the block with a new frame whose "intl" object holds the
// tapped params. Without a block it does nothing.
func (in *Intl) Block(ctx context.Context, w io.Writer, bodies Bodies, params Params) error {
	if bodies.Block == nil {
		return nil
	}
	scope, err := params.TapAll(ctx)
	if err != nil {
		return err
	}
	if v, ok := scope[ParamLocale]; ok {
		in.logger.WarnContext(ctx, "deprecated parameter",
			slog.String("helper", "intl"),
			slog.String("param", ParamLocale),
			slog.String("use", ParamLocales),
		)
		if _, has := scope[ParamLocales]; !has {
			scope[ParamLocales] = v
		}
		delete(scope, ParamLocale)
	}
	return bodies.Block.Render(PushFrame(ctx, Frame{"intl": scope}), w)
}

// FormatNumber writes val as a number. style=currency without a currency
// option takes intl.currency from the scope.
func (in *Intl) FormatNumber(ctx context.Context, w io.Writer, _ Bodies, params Params) error {
	const op = "formatNumber"

	raw, err := requireVal(ctx, op, params)
	if err != nil {
		return err
	}
	n, ok := i18n.ToFloat(raw)
	if !ok {
		return &InvalidValueError{Op: op, Param: ParamVal, Value: raw}
	}

	locales, err := in.locales(ctx, op, params)
	if err != nil {
		return err
	}
	opts, err := in.MergeOptions(ctx, KindNumber, params)
	if err != nil {
		return err
	}
	if opts.String("style") == i18n.StyleCurrency && opts.String("currency") == "" {
		currency, err := in.resolveString(ctx, "intl", "currency")
		if err != nil {
			return err
		}
		if currency != "" {
			opts["currency"] = currency
		}
	}

	key := FormatterKey{Kind: KindNumber, Locales: locales, Options: opts}
	nf, err := cachedFormatter(ctx, in.cache, key, func() (*i18n.NumberFormat, error) {
		return i18n.NewNumberFormat(locales, opts)
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, nf.Format(n))
	return err
}

// FormatDate writes val as a date, numeric year/month/day by default.
func (in *Intl) FormatDate(ctx context.Context, w io.Writer, _ Bodies, params Params) error {
	return in.formatDateTime(ctx, w, params, "formatDate", KindDate)
}

// FormatTime writes val as a time of day, hour and minute by default.
func (in *Intl) FormatTime(ctx context.Context, w io.Writer, _ Bodies, params Params) error {
	return in.formatDateTime(ctx, w, params, "formatTime", KindTime)
}

func (in *Intl) formatDateTime(ctx context.Context, w io.Writer, params Params, op, kind string) error {
	raw, err := requireVal(ctx, op, params)
	if err != nil {
		return err
	}
	t, ok := i18n.ToTime(raw)
	if !ok {
		return &InvalidValueError{Op: op, Param: ParamVal, Value: raw}
	}

	locales, err := in.locales(ctx, op, params)
	if err != nil {
		return err
	}
	opts, err := in.MergeOptions(ctx, kind, params)
	if err != nil {
		return err
	}
	if err := in.scopeTimeZone(ctx, opts); err != nil {
		return err
	}
	if kind == KindTime {
		opts = i18n.WithTimeDefaults(opts)
	}

	key := FormatterKey{Kind: kind, Locales: locales, Options: opts}
	df, err := cachedFormatter(ctx, in.cache, key, func() (*i18n.DateTimeFormat, error) {
		return i18n.NewDateTimeFormat(locales, opts)
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, df.Format(t))
	return err
}

func (in *Intl) scopeTimeZone(ctx context.Context, opts i18n.Options) error {
	if opts.String("timeZone") != "" {
		return nil
	}
	tz, err := in.resolveString(ctx, "intl", "timeZone")
	if err != nil {
		return err
	}
	if tz != "" {
		opts["timeZone"] = tz
	}
	return nil
}

// FormatRelative writes val relative to now ("yesterday", "in 3 hours").
// A now parameter overrides the clock.
func (in *Intl) FormatRelative(ctx context.Context, w io.Writer, _ Bodies, params Params) error {
	const op = "formatRelative"

	raw, err := requireVal(ctx, op, params)
	if err != nil {
		return err
	}
	t, ok := i18n.ToTime(raw)
	if !ok {
		return &InvalidValueError{Op: op, Param: ParamVal, Value: raw}
	}

	locales, err := in.locales(ctx, op, params)
	if err != nil {
		return err
	}
	opts, err := in.MergeOptions(ctx, KindRelative, params)
	if err != nil {
		return err
	}

	now := in.now()
	if v, ok := opts["now"]; ok {
		now, ok = i18n.ToTime(v)
		if !ok {
			return &InvalidValueError{Op: op, Param: "now", Value: v}
		}
		delete(opts, "now")
	}

	key := FormatterKey{Kind: KindRelative, Locales: locales, Options: opts}
	rf, err := cachedFormatter(ctx, in.cache, key, func() (*i18n.RelativeFormat, error) {
		return i18n.NewRelativeFormat(locales, opts)
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rf.Format(t, now))
	return err
}

// FormatMessage writes a formatted message. The message is the _msg
// parameter or, failing that, intl.messages.<_key> from the scope. The
// remaining parameters are the message arguments.
func (in *Intl) FormatMessage(ctx context.Context, w io.Writer, _ Bodies, params Params) error {
	const op = "formatMessage"

	var (
		msg   any
		param string
		err   error
	)
	switch {
	case params.Has(ParamMsg):
		param = ParamMsg
		msg, err = params[ParamMsg].Tap(ctx)
		if err != nil {
			return err
		}
	case params.Has(ParamKey):
		param = ParamKey
		rawKey, err := params[ParamKey].Tap(ctx)
		if err != nil {
			return err
		}
		key := fmt.Sprint(rawKey)
		found, ok := in.Resolve(ctx, "intl", "messages", key)
		if !ok {
			return &InvalidValueError{Op: op, Param: ParamKey, Value: key, Err: ErrUnknownMessage}
		}
		msg, err = Tap(ctx, found)
		if err != nil {
			return err
		}
	default:
		return &MissingParameterError{Op: op, Params: []string{ParamMsg, ParamKey}}
	}

	// Precompiled messages get the call-site arguments as they are: no
	// presets, no locales, no cache.
	if f, ok := msg.(MessageFormatter); ok {
		args, err := params.Without(reservedParams...).TapAll(ctx)
		if err != nil {
			return err
		}
		out, err := f.Format(args)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	values, err := in.MergeOptions(ctx, KindMessage, params)
	if err != nil {
		return err
	}

	pattern, ok := msg.(string)
	if !ok {
		return &InvalidValueError{Op: op, Param: param, Value: msg}
	}

	locales, err := in.locales(ctx, op, params)
	if err != nil {
		return err
	}
	msgOpts, err := in.messageOptions(ctx, values)
	if err != nil {
		return err
	}

	key := FormatterKey{
		Kind:    KindMessage,
		Locales: locales,
		Pattern: pattern,
		Options: i18n.Options{
			"formats":  msgOpts.Formats,
			"timeZone": msgOpts.TimeZone,
			"currency": msgOpts.Currency,
		},
	}
	mf, err := cachedFormatter(ctx, in.cache, key, func() (*i18n.MessageFormat, error) {
		return i18n.NewMessageFormat(pattern, locales, msgOpts)
	})
	if err != nil {
		return err
	}
	out, err := mf.Format(values)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func (in *Intl) messageOptions(ctx context.Context, values map[string]any) (i18n.MessageOptions, error) {
	var opts i18n.MessageOptions

	if raw, ok := in.Resolve(ctx, "intl", "formats"); ok {
		formats, err := Tap(ctx, raw)
		if err != nil {
			return opts, err
		}
		opts.Formats = i18n.FormatsFrom(formats)
	}

	if tz, ok := values["timeZone"].(string); ok && tz != "" {
		opts.TimeZone = tz
	} else {
		tz, err := in.resolveString(ctx, "intl", "timeZone")
		if err != nil {
			return opts, err
		}
		opts.TimeZone = tz
	}

	currency, err := in.resolveString(ctx, "intl", "currency")
	if err != nil {
		return opts, err
	}
	opts.Currency = currency
	return opts, nil
}

func requireVal(ctx context.Context, op string, params Params) (any, error) {
	v, ok := params[ParamVal]
	if !ok {
		return nil, &MissingParameterError{Op: op, Params: []string{ParamVal}}
	}
	return v.Tap(ctx)
}
