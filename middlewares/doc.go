// Package middlewares provides net/http middleware for intl.
//
// # Locale
//
// Locale negotiates the request locale and installs it as the global frame
// of the render scope, so helpers rendered by the handler pick it up without
// any intl block:
//
//	in, _ := intl.New(intl.WithMessagesDir(locales))
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(in))
//
// The default chain tries the "lang" query parameter, then the "lang"
// cookie, then the Accept-Language header matched against the catalog
// locales. Replace it with WithLocaleExtractor:
//
//	r.Use(middlewares.Locale(in,
//	    middlewares.WithLocaleExtractor(intl.NewExtractor(
//	        intl.FromParam("lang"),
//	        middlewares.FromAcceptLanguage([]string{"en", "de"}),
//	    )),
//	))
//
// The negotiated locale is also set as Content-Language and is available
// through GetLocale.
package middlewares
