package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage parses the Accept-Language header and returns the most
// applicable locale from the available list. Quality values are honored and
// regional variants match their base language. If nothing matches, the first
// available locale is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}
	if strings.TrimSpace(header) == "" {
		return available[0]
	}

	tags := make([]language.Tag, len(available))
	for i, a := range available {
		tags[i] = language.Make(a)
	}
	_, idx := language.MatchStrings(language.NewMatcher(tags), header)
	if idx < 0 || idx >= len(available) {
		return available[0]
	}
	return available[idx]
}

// PreferredLocale returns the highest weighted tag of an Accept-Language
// header, ignoring wildcards and entries with q=0. It reports false when the header
// names no usable locale.
func PreferredLocale(header string) (string, bool) {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}
	tags, q, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}
	for i, tag := range tags {
		if q[i] <= 0 || tag == language.Und {
			continue
		}
		return tag.String(), true
	}
	return "", false
}
