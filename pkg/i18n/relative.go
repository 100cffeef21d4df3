package i18n

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Relative time styles.
const (
	RelativeBestFit = "best fit"
	RelativeNumeric = "numeric"
)

// RelativeUnits lists the units a RelativeFormat can be pinned to.
var RelativeUnits = []string{"second", "minute", "hour", "day", "month", "year"}

// RelativeFormat renders an instant relative to a reference time,
// e.g. "yesterday" or "in 3 hours".
type RelativeFormat struct {
	tag    language.Tag
	data   *localeData
	number *NumberFormat
	units  string
	style  string
}

// NewRelativeFormat builds a relative time formatter. Options: units (one of
// RelativeUnits, picked automatically when empty) and style ("best fit" uses
// words like "yesterday", "numeric" always uses a count).
func NewRelativeFormat(locales []string, opts Options) (*RelativeFormat, error) {
	nf, err := NewNumberFormat(locales, Options{"maximumFractionDigits": 0})
	if err != nil {
		return nil, err
	}

	f := &RelativeFormat{
		tag:    nf.Locale(),
		data:   lookupLocale(nf.Locale()),
		number: nf,
		units:  strings.TrimSuffix(opts.String("units"), "s"),
		style:  opts.String("style"),
	}
	if f.units != "" && !slices.Contains(RelativeUnits, f.units) {
		return nil, fmt.Errorf("%w: units %q is not one of %s", ErrInvalidOption, opts.String("units"), strings.Join(RelativeUnits, ", "))
	}
	switch f.style {
	case "":
		f.style = RelativeBestFit
	case RelativeBestFit, RelativeNumeric:
	default:
		return nil, fmt.Errorf("%w: relative style %q", ErrInvalidOption, f.style)
	}
	return f, nil
}

// Locale reports the resolved locale.
func (f *RelativeFormat) Locale() language.Tag { return f.tag }

// Format renders t relative to now.
func (f *RelativeFormat) Format(t, now time.Time) string {
	fields := relativeFields(t.Sub(now))
	units := f.units
	if units == "" {
		units = selectUnits(fields)
	}
	value := fields[units]

	unit := f.data.relative[units]
	if f.style == RelativeBestFit {
		if named, ok := unit.named[value]; ok {
			return named
		}
	}

	patterns := unit.future
	if value < 0 {
		patterns = unit.past
	}
	abs := math.Abs(float64(value))
	pattern, ok := patterns[PluralForm(f.data.plural, abs)]
	if !ok {
		pattern = patterns[PluralOther]
	}
	return strings.ReplaceAll(pattern, "{0}", f.number.Format(abs))
}

// relativeFields rounds a duration into every unit, cascading the rounding
// so that 23.6 hours is one day.
func relativeFields(d time.Duration) map[string]int {
	round := func(f float64) float64 { return math.Floor(f + 0.5) }

	second := round(float64(d.Milliseconds()) / 1000)
	minute := round(second / 60)
	hour := round(minute / 60)
	day := round(hour / 24)
	years := day * 400 / 146097

	return map[string]int{
		"second": int(second),
		"minute": int(minute),
		"hour":   int(hour),
		"day":    int(day),
		"month":  int(round(years * 12)),
		"year":   int(round(years)),
	}
}

func selectUnits(fields map[string]int) string {
	abs := func(unit string) int {
		v := fields[unit]
		if v < 0 {
			return -v
		}
		return v
	}
	switch {
	case abs("second") < 45:
		return "second"
	case abs("minute") < 45:
		return "minute"
	case abs("hour") < 22:
		return "hour"
	case abs("day") < 26:
		return "day"
	case abs("month") < 11:
		return "month"
	default:
		return "year"
	}
}
