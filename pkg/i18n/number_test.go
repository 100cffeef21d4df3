package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

func TestNumberFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		locales  []string
		opts     i18n.Options
		value    float64
		expected string
	}{
		{"en decimal", []string{"en-US"}, nil, 40000.004, "40,000.004"},
		{"de decimal", []string{"de-DE"}, nil, 40000.004, "40.000,004"},
		{"default locale", nil, nil, 1234.5, "1,234.5"},
		{"first usable locale", []string{"", "de"}, nil, 1234.5, "1.234,5"},
		{"underscore separator", []string{"de_DE"}, nil, 1234.5, "1.234,5"},
		{"fraction digits", []string{"en-US"}, i18n.Options{"minimumFractionDigits": 2, "maximumFractionDigits": 2}, 3, "3.00"},
		{"fraction digits from strings", []string{"en-US"}, i18n.Options{"maximumFractionDigits": "0"}, 3.7, "4"},
		{"no grouping", []string{"en-US"}, i18n.Options{"useGrouping": false}, 40000.004, "40000.004"},
		{"integer digits", []string{"en-US"}, i18n.Options{"minimumIntegerDigits": 3}, 7, "007"},
		{"percent", []string{"en-US"}, i18n.Options{"style": "percent"}, 0.5, "50%"},
		{"usd", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "USD"}, 40000, "$40,000.00"},
		{"eur in en", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "EUR"}, 40000, "€40,000.00"},
		{"jpy has no minor units", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "JPY"}, 40000, "¥40,000"},
		{"lowercase code", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "usd"}, 1.5, "$1.50"},
		{"negative currency", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "USD"}, -1234.5, "-$1,234.50"},
		{"currency code display", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "USD", "currencyDisplay": "code"}, 1, "USD\u00a01.00"},
		{"eur in de", []string{"de-DE"}, i18n.Options{"style": "currency", "currency": "EUR"}, 40000, "40.000,00\u00a0€"},
		{"unknown symbol", []string{"en-US"}, i18n.Options{"style": "currency", "currency": "SEK"}, 10, "SEK\u00a010.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			nf, err := i18n.NewNumberFormat(tt.locales, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, nf.Format(tt.value))
		})
	}
}

func TestNumberFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		locales []string
		opts    i18n.Options
		err     error
	}{
		{"malformed locale", []string{"not a locale!"}, nil, i18n.ErrInvalidLocale},
		{"unknown style", nil, i18n.Options{"style": "roman"}, i18n.ErrInvalidOption},
		{"currency without code", nil, i18n.Options{"style": "currency"}, i18n.ErrMissingCurrency},
		{"bad currency code", nil, i18n.Options{"style": "currency", "currency": "XXXX"}, i18n.ErrInvalidOption},
		{"fraction out of range", nil, i18n.Options{"maximumFractionDigits": 42}, i18n.ErrInvalidOption},
		{"fraction not a number", nil, i18n.Options{"maximumFractionDigits": "many"}, i18n.ErrInvalidOption},
		{"inverted fraction range", nil, i18n.Options{"minimumFractionDigits": 3, "maximumFractionDigits": 1}, i18n.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := i18n.NewNumberFormat(tt.locales, tt.opts)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNumberFormatLocale(t *testing.T) {
	t.Parallel()

	nf, err := i18n.NewNumberFormat([]string{"de-DE", "en-US"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", nf.Locale().String())
}
