// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// A ContextExtractor pulls one attribute out of a context on every log
// call. intl uses it to stamp records with the locale of the current render:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(intl.LocaleExtractor()),
//	)
//	log.WarnContext(ctx, "deprecated helper")
//	// {"level":"WARN","msg":"deprecated helper","locale":"de-DE"}
//
// Attributes passed at the call site win over extracted ones with the same key.
//
// # Configuration
//
// Config reads LOG_LEVEL, LOG_FORMAT, SENTRY_DSN and SENTRY_ENVIRONMENT:
//
//	cfg, err := logger.ConfigFromEnv()
//	log, err := logger.FromConfig(cfg, logger.WithExtractors(extractors...))
//
// With an empty DSN the logger only writes locally, so the same code path
// works in development.
//
// NewNope returns a logger that discards everything, for tests.
package logger
