package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is requested at all.
const DefaultLocale = "en-US"

// ParseLocales parses the first non-blank entry of a locale list. A malformed
// entry fails with ErrInvalidLocale rather than falling through to the next
// one. A list without non-blank entries yields DefaultLocale.
func ParseLocales(locales []string) (language.Tag, error) {
	for _, l := range locales {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
		if err != nil {
			return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, l, err)
		}
		return tag, nil
	}
	return language.MustParse(DefaultLocale), nil
}

// SplitLocales turns a comma separated locale string into a list.
func SplitLocales(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// lookupLocale picks the formatting data for a tag: exact tag first, then
// language plus region, then the base language, then English.
func lookupLocale(tag language.Tag) *localeData {
	if d, ok := locales[tag.String()]; ok {
		return d
	}
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if d, ok := locales[base.String()+"-"+region.String()]; ok {
			return d
		}
	}
	if d, ok := locales[base.String()]; ok {
		return d
	}
	return locales["en"]
}
