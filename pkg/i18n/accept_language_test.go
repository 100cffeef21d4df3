package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{
			name:      "empty header returns first available",
			header:    "",
			available: []string{"en", "pl", "de"},
			expected:  "en",
		},
		{
			name:      "empty available returns empty",
			header:    "en-US,en;q=0.9",
			available: []string{},
			expected:  "",
		},
		{
			name:      "exact match",
			header:    "pl",
			available: []string{"en", "pl", "de"},
			expected:  "pl",
		},
		{
			name:      "match with quality values",
			header:    "de;q=0.5,pl;q=0.9,en;q=0.8",
			available: []string{"en", "pl", "de"},
			expected:  "pl",
		},
		{
			name:      "language with region matches base",
			header:    "en-US",
			available: []string{"en", "pl", "de"},
			expected:  "en",
		},
		{
			name:      "regional tags",
			header:    "de-DE,de;q=0.9,en;q=0.8",
			available: []string{"en-US", "de-DE", "fr-FR"},
			expected:  "de-DE",
		},
		{
			name:      "no match returns first available",
			header:    "ko,th",
			available: []string{"en", "pl", "de"},
			expected:  "en",
		},
		{
			name:      "oversized header is truncated safely",
			header:    strings.Repeat("en,", 2000) + "pl",
			available: []string{"en", "pl", "de"},
			expected:  "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := i18n.ParseAcceptLanguage(tt.header, tt.available)
			require.Equal(t, tt.expected, result)
		})
	}
}
