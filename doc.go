// Package intl formats numbers, dates, times, relative times and ICU
// messages inside templates, with configuration scoped to nested blocks.
//
// # Quick Start
//
// Create an Intl once and register its helpers with your template host:
//
//	in, err := intl.New(
//	    intl.WithConfig(intl.Config{Locales: []string{"en-US"}, Currency: "USD"}),
//	    intl.WithMessagesDir(os.DirFS("locales")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	in.Register(host)
//
// # Scope
//
// The intl helper pushes a frame for its block. Everything inside reads
// locales, currency, timeZone, formats and messages from the innermost
// frame that sets them:
//
//	{{#intl locales="de-DE"}}
//	    {{formatNumber 40000.004}}  → 40.000,004
//	{{/intl}}
//	{{formatNumber 40000.004}}      → 40,000.004
//
// In Go the same tree is built with Call:
//
//	body := intl.Call(in.Block, intl.P(map[string]any{"locales": "de-DE"}),
//	    intl.Call(in.FormatNumber, intl.P(map[string]any{"val": 40000.004}), nil))
//	out, err := intl.Render(ctx, body)
//
// Frames live in the context; a host supplies its own global frame with
// WithStack(ctx, NewStack(global)) or layers on an existing scope with Over.
//
// # Helpers
//
//   - intl: pushes a scope frame for its block
//   - formatNumber: decimal, percent and currency
//   - formatDate, formatTime: dates and times, in the scope time zone
//   - formatRelative: "yesterday", "in 3 hours"
//   - formatMessage: ICU messages from _msg or intl.messages.<_key>
//
// intlNumber, intlDate, intlTime and intlMessage are deprecated aliases;
// they log a warning and delegate. The locale parameter is a deprecated
// alias of locales.
//
// Named presets are selected with formatName and read from
// intl.formats.<category>.<name>; call-site parameters override them.
//
// # Formatter Cache
//
// Formatters are built once per distinct (kind, locales, options) and
// reused for the lifetime of the Intl. See Intl.Formatters.
//
// # Subpackages
//
//   - pkg/i18n: the formatters, plural rules and message catalog
//   - pkg/component: templ adapters for the helpers
//   - pkg/cache: memoization with singleflight
//   - pkg/logger: slog with context extractors and Sentry
//   - middlewares: per-request locale detection
package intl
