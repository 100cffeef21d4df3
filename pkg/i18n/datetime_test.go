package i18n_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

// 2014-01-23 23:00:44.403 UTC, a Thursday.
var sampleTime = time.UnixMilli(1390518044403)

func TestDateTimeFormat(t *testing.T) {
	t.Parallel()

	utc := func(opts i18n.Options) i18n.Options {
		opts = opts.Clone()
		opts["timeZone"] = "UTC"
		return opts
	}

	tests := []struct {
		name     string
		locale   string
		opts     i18n.Options
		expected string
	}{
		{"en numeric default", "en-US", nil, "1/23/2014"},
		{"de numeric default", "de-DE", nil, "23.1.2014"},
		{"fr numeric default", "fr-FR", nil, "23/01/2014"},
		{"en-GB numeric default", "en-GB", nil, "23/01/2014"},
		{"ja numeric default", "ja-JP", nil, "2014/1/23"},
		{"unknown locale uses english data", "sw", nil, "1/23/2014"},
		{"en long", "en-US", i18n.Options{"year": "numeric", "month": "long", "day": "numeric"}, "January 23, 2014"},
		{"de long", "de-DE", i18n.Options{"year": "numeric", "month": "long", "day": "numeric"}, "23. Januar 2014"},
		{"es long", "es", i18n.Options{"year": "numeric", "month": "long", "day": "numeric"}, "23 de enero de 2014"},
		{"ja long", "ja", i18n.Options{"year": "numeric", "month": "long", "day": "numeric"}, "2014年1月23日"},
		{"en full", "en-US", i18n.Options{"weekday": "long", "year": "numeric", "month": "long", "day": "numeric"}, "Thursday, January 23, 2014"},
		{"fr full", "fr", i18n.Options{"weekday": "long", "year": "numeric", "month": "long", "day": "numeric"}, "jeudi 23 janvier 2014"},
		{"en short month", "en-US", i18n.Options{"month": "short", "day": "numeric"}, "Jan 23"},
		{"en month and year", "en-US", i18n.Options{"month": "long", "year": "numeric"}, "January 2014"},
		{"two digit year", "en-US", i18n.Options{"year": "2-digit", "month": "2-digit", "day": "2-digit"}, "01/23/14"},
		{"weekday only", "de", i18n.Options{"weekday": "short"}, "Do."},
		{"en time", "en-US", i18n.Options{"hour": "numeric", "minute": "numeric"}, "11:00 PM"},
		{"de time", "de-DE", i18n.Options{"hour": "numeric", "minute": "numeric"}, "23:00"},
		{"en time with seconds", "en-US", i18n.Options{"hour": "numeric", "minute": "numeric", "second": "numeric"}, "11:00:44 PM"},
		{"de hour only", "de", i18n.Options{"hour": "numeric"}, "23 Uhr"},
		{"hour12 override", "de", i18n.Options{"hour": "numeric", "minute": "numeric", "hour12": true}, "11:00 PM"},
		{"hour24 override", "en-US", i18n.Options{"hour": "numeric", "minute": "numeric", "hour12": false}, "23:00"},
		{"date and time", "en-US", i18n.Options{"month": "numeric", "day": "numeric", "year": "numeric", "hour": "numeric", "minute": "numeric"}, "1/23/2014, 11:00 PM"},
		{"zone name", "en-US", i18n.Options{"hour": "numeric", "minute": "numeric", "timeZoneName": "short"}, "11:00 PM UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			df, err := i18n.NewDateTimeFormat([]string{tt.locale}, utc(tt.opts))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, df.Format(sampleTime))
		})
	}
}

func TestDateTimeFormatTimeZone(t *testing.T) {
	t.Parallel()

	df, err := i18n.NewDateTimeFormat([]string{"en-US"}, i18n.Options{
		"hour":     "numeric",
		"minute":   "numeric",
		"timeZone": "America/New_York",
	})
	require.NoError(t, err)
	assert.Equal(t, "6:00 PM", df.Format(sampleTime))
}

func TestDateTimeFormatErrors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewDateTimeFormat(nil, i18n.Options{"timeZone": "Mars/Olympus_Mons"})
	require.ErrorIs(t, err, i18n.ErrInvalidTimeZone)

	_, err = i18n.NewDateTimeFormat(nil, i18n.Options{"month": "huge"})
	require.ErrorIs(t, err, i18n.ErrInvalidOption)

	_, err = i18n.NewDateTimeFormat([]string{"not a locale!"}, nil)
	require.ErrorIs(t, err, i18n.ErrInvalidLocale)
}

func TestWithTimeDefaults(t *testing.T) {
	t.Parallel()

	opts := i18n.Options{"timeZone": "UTC"}
	withDefaults := i18n.WithTimeDefaults(opts)
	assert.Equal(t, "numeric", withDefaults["hour"])
	assert.Equal(t, "numeric", withDefaults["minute"])
	assert.NotContains(t, opts, "hour")

	explicit := i18n.Options{"second": "numeric"}
	assert.Equal(t, explicit, i18n.WithTimeDefaults(explicit))

	assert.True(t, i18n.HasDateTimeComponents(i18n.Options{"day": "numeric"}))
	assert.False(t, i18n.HasDateTimeComponents(i18n.Options{"timeZone": "UTC", "day": false}))
}
