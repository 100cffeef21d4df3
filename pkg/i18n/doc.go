// Package i18n provides the locale-aware formatters used by the intl helpers:
// numbers, currencies, percentages, dates, times, relative times and ICU-style
// messages, plus Accept-Language matching and message catalog loading.
//
// Every formatter is immutable after construction and safe for concurrent use,
// which makes instances suitable for memoization.
//
// # Numbers
//
//	nf, err := i18n.NewNumberFormat([]string{"de-DE"}, i18n.Options{
//		"style":    "currency",
//		"currency": "EUR",
//	})
//	nf.Format(40000) // "40.000,00 €"
//
// # Dates and Times
//
//	df, err := i18n.NewDateTimeFormat([]string{"en-US"}, i18n.Options{
//		"month":    "long",
//		"day":      "numeric",
//		"year":     "numeric",
//		"timeZone": "UTC",
//	})
//	df.Format(t) // "January 23, 2014"
//
// Without any date or time component the formatter renders a numeric date.
// WithTimeDefaults fills in hour and minute instead.
//
// # Relative Times
//
//	rf, err := i18n.NewRelativeFormat([]string{"fr"}, nil)
//	rf.Format(now.Add(-24*time.Hour), now) // "hier"
//
// # Messages
//
// MessageFormat understands a subset of ICU MessageFormat: simple arguments,
// number/date/time arguments with an optional style, plural (with offset,
// exact matches and #) and select.
//
//	mf, err := i18n.NewMessageFormat(
//		"{name} harvested {n, plural, one {# apple} other {# apples}}.",
//		[]string{"en-US"}, i18n.MessageOptions{},
//	)
//	mf.Format(map[string]any{"name": "Jeremy", "n": 60}) // "Jeremy harvested 60 apples."
//
// # Catalogs
//
// Message catalogs are loaded from an fs.FS laid out as {lang}/{namespace}.json
// (or .yaml/.yml). Keys are flattened to "namespace.key" with dot notation:
//
//	catalog, err := i18n.LoadCatalog(subFS)
//	messages := catalog.Messages("de-DE") // falls back to "de"
//
// # Accept-Language Header
//
//	best := i18n.ParseAcceptLanguage("es-ES,es;q=0.9,en;q=0.8", available)
package i18n
