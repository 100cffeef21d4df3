package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct {
	slog.Handler
	err error
}

func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	var info, warn bytes.Buffer
	boom := errors.New("boom")
	h := newMultiHandler(
		failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil), err: boom},
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With(slog.String("component", "intl"))

	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Info("only info")
	assert.Contains(t, info.String(), `"component":"intl"`)
	assert.Empty(t, warn.String())

	log.Warn("both")
	assert.Contains(t, warn.String(), `"msg":"both"`)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "x", 0))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, warn.String(), `"msg":"x"`)
}
