package internal_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/internal"
	"github.com/dmitrymomot/intl/pkg/logger"
)

func TestLocaleExtractor(t *testing.T) {
	t.Parallel()

	extract := internal.LocaleExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	ctx := internal.WithStack(context.Background(), internal.NewStack(internal.Frame{
		"intl": map[string]any{"locales": []string{"en-US", "en"}},
	}))
	attr, ok := extract(ctx)
	require.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "en-US", attr.Value.String())

	attr, ok = extract(internal.PushFrame(ctx, internal.Frame{"intl": map[string]any{"locales": "de-DE"}}))
	require.True(t, ok)
	assert.Equal(t, "de-DE", attr.Value.String())
}

func TestLocaleExtractorDecoratesLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(&buf, nil), internal.LocaleExtractor()))

	ctx := internal.PushFrame(context.Background(), internal.Frame{"intl": map[string]any{"locales": "fr-FR"}})
	log.InfoContext(ctx, "rendered")

	assert.Contains(t, buf.String(), `"locale":"fr-FR"`)
}
