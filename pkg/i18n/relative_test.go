package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

func TestRelativeFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		locale   string
		opts     i18n.Options
		at       time.Time
		expected string
	}{
		{"en yesterday", "en", nil, now.Add(-24 * time.Hour), "yesterday"},
		{"de yesterday", "de", nil, now.Add(-24 * time.Hour), "gestern"},
		{"fr yesterday", "fr", nil, now.Add(-24 * time.Hour), "hier"},
		{"es tomorrow", "es", nil, now.Add(24 * time.Hour), "mañana"},
		{"now", "en", nil, now, "now"},
		{"seconds ago", "en", nil, now.Add(-10 * time.Second), "10 seconds ago"},
		{"hours ago", "en", nil, now.Add(-3 * time.Hour), "3 hours ago"},
		{"rounds up to a day", "en", nil, now.Add(-23 * time.Hour), "yesterday"},
		{"in minutes", "de", nil, now.Add(5 * time.Minute), "in 5 Minuten"},
		{"months", "en", nil, now.AddDate(0, -3, 0), "3 months ago"},
		{"years", "en", nil, now.AddDate(-2, 0, 0), "2 years ago"},
		{"pinned numeric hours", "en", i18n.Options{"units": "hour", "style": "numeric"}, now.Add(-24 * time.Hour), "24 hours ago"},
		{"plural units accepted", "en", i18n.Options{"units": "hours", "style": "numeric"}, now.Add(-time.Hour), "1 hour ago"},
		{"numeric day", "fr", i18n.Options{"units": "day", "style": "numeric"}, now.Add(-24 * time.Hour), "il y a 1 jour"},
		{"numeric future", "en", i18n.Options{"style": "numeric"}, now.Add(48 * time.Hour), "in 2 days"},
		{"grouped count", "en", i18n.Options{"units": "second"}, now.Add(-2000 * time.Second), "2,000 seconds ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rf, err := i18n.NewRelativeFormat([]string{tt.locale}, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rf.Format(tt.at, now))
		})
	}
}

func TestRelativeFormatErrors(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewRelativeFormat(nil, i18n.Options{"units": "fortnight"})
	require.ErrorIs(t, err, i18n.ErrInvalidOption)

	_, err = i18n.NewRelativeFormat(nil, i18n.Options{"style": "fuzzy"})
	require.ErrorIs(t, err, i18n.ErrInvalidOption)
}
