package internal

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/intl/pkg/logger"
)

// LocaleExtractor adds the innermost locale of the render stack to log
// records as "locale".
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		s := StackFrom(ctx)
		if s == nil {
			return slog.Attr{}, false
		}
		v, ok := Resolve(s, "intl", ParamLocales)
		if !ok {
			return slog.Attr{}, false
		}
		list, ok := toLocaleList(v)
		if !ok || len(list) == 0 {
			return slog.Attr{}, false
		}
		return slog.String("locale", list[0]), true
	}
}
