package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

func TestParseLocales(t *testing.T) {
	t.Parallel()

	t.Run("first non-blank entry wins", func(t *testing.T) {
		t.Parallel()
		tag, err := i18n.ParseLocales([]string{" ", "de_AT", "fr"})
		require.NoError(t, err)
		assert.Equal(t, "de-AT", tag.String())
	})

	t.Run("malformed entry is an error", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.ParseLocales([]string{"!!", "en"})
		require.ErrorIs(t, err, i18n.ErrInvalidLocale)
	})

	t.Run("blank list yields default", func(t *testing.T) {
		t.Parallel()
		tag, err := i18n.ParseLocales([]string{" ", ""})
		require.NoError(t, err)
		assert.Equal(t, i18n.DefaultLocale, tag.String())

		tag, err = i18n.ParseLocales(nil)
		require.NoError(t, err)
		assert.Equal(t, i18n.DefaultLocale, tag.String())
	})
}

func TestSplitLocales(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"en", "de-DE"}, i18n.SplitLocales(" en, ,de-DE "))
	assert.Nil(t, i18n.SplitLocales(""))
}

func TestPreferredLocale(t *testing.T) {
	t.Parallel()

	v, ok := i18n.PreferredLocale("de;q=0.8,fr-CA;q=0.9")
	require.True(t, ok)
	assert.Equal(t, "fr-CA", v)

	v, ok = i18n.PreferredLocale("en;q=0,pl;q=0.5")
	require.True(t, ok)
	assert.Equal(t, "pl", v)

	_, ok = i18n.PreferredLocale("en;q=0")
	assert.False(t, ok)
}
