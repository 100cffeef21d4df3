package i18n_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

func TestToFloat(t *testing.T) {
	t.Parallel()

	for _, v := range []any{42, int64(42), uint8(42), float32(42), 42.0, "42", " 42 "} {
		f, ok := i18n.ToFloat(v)
		require.True(t, ok, "%T %v", v, v)
		assert.InDelta(t, 42.0, f, 1e-9)
	}

	for _, v := range []any{nil, "forty-two", true, []int{42}} {
		_, ok := i18n.ToFloat(v)
		assert.False(t, ok, "%T %v", v, v)
	}
}

func TestToTime(t *testing.T) {
	t.Parallel()

	want := time.UnixMilli(1390518044403)

	tests := []struct {
		name  string
		value any
	}{
		{"time", want},
		{"pointer", &want},
		{"millis int", 1390518044403},
		{"millis float", 1390518044403.0},
		{"millis string", "1390518044403"},
		{"rfc3339", "2014-01-23T23:00:44.403Z"},
		{"javascript string", "Thu Jan 23 2014 18:00:44 GMT-0500 (Eastern Standard Time)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := i18n.ToTime(tt.value)
			require.True(t, ok)
			assert.Equal(t, want.Unix(), got.Unix())
		})
	}

	for _, v := range []any{nil, "", "not a date", math.NaN(), math.Inf(-1), (*time.Time)(nil), false} {
		_, ok := i18n.ToTime(v)
		assert.False(t, ok, "%T %v", v, v)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	opts := i18n.Options{
		"style":   " currency ",
		"digits":  "2",
		"float":   2.0,
		"half":    2.5,
		"off":     false,
		"on":      "true",
		"nothing": nil,
	}

	assert.Equal(t, "currency", opts.String("style"))
	assert.Empty(t, opts.String("off"))
	assert.Empty(t, opts.String("nothing"))
	assert.Empty(t, opts.String("missing"))

	n, ok, err := opts.Int("digits")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok, err = opts.Int("float")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, _, err = opts.Int("half")
	require.ErrorIs(t, err, i18n.ErrInvalidOption)

	_, ok, err = opts.Int("off")
	require.NoError(t, err)
	assert.False(t, ok)

	b, ok := opts.Bool("on")
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = opts.Bool("off")
	assert.True(t, ok)
	assert.False(t, b)

	clone := opts.Clone()
	clone["style"] = "percent"
	assert.Equal(t, " currency ", opts["style"])
}

func TestFormatsFrom(t *testing.T) {
	t.Parallel()

	formats := i18n.FormatsFrom(map[string]any{
		"number": map[string]any{
			"usd":   map[string]any{"style": "currency", "currency": "USD"},
			"bogus": "not a map",
		},
		"date": "not a map either",
	})

	require.NotNil(t, formats)
	assert.Equal(t, i18n.Options{"style": "currency", "currency": "USD"}, formats.Preset("number", "usd"))
	assert.Nil(t, formats.Preset("number", "bogus"))
	assert.Nil(t, formats.Preset("date", "short"))
	assert.Nil(t, i18n.FormatsFrom("nope"))
	assert.Nil(t, i18n.Formats(nil).Preset("number", "usd"))
}
