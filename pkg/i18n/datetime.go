package i18n

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

var (
	textWidths    = []string{"narrow", "short", "long"}
	numericWidths = []string{"numeric", "2-digit"}
	monthWidths   = []string{"numeric", "2-digit", "narrow", "short", "long"}
)

// dateTimeFields are the component options that select what gets rendered.
var dateTimeFields = []string{"weekday", "year", "month", "day", "hour", "minute", "second"}

// HasDateTimeComponents reports whether opts selects any date or time component.
func HasDateTimeComponents(opts Options) bool {
	return slices.ContainsFunc(dateTimeFields, func(k string) bool {
		return opts.String(k) != ""
	})
}

// WithTimeDefaults returns opts with numeric hour and minute when no
// component is selected. opts itself is not modified.
func WithTimeDefaults(opts Options) Options {
	if HasDateTimeComponents(opts) {
		return opts
	}
	out := opts.Clone()
	out["hour"] = "numeric"
	out["minute"] = "numeric"
	return out
}

// DateTimeFormat formats instants in a time zone with locale conventions.
type DateTimeFormat struct {
	tag  language.Tag
	data *localeData
	loc  *time.Location

	weekday, year, month, day string
	hour, minute, second      string
	zoneName                  string
	hour12                    bool
}

// NewDateTimeFormat builds a date/time formatter. Without component options
// it renders a numeric date.
func NewDateTimeFormat(locales []string, opts Options) (*DateTimeFormat, error) {
	tag, err := ParseLocales(locales)
	if err != nil {
		return nil, err
	}
	loc, err := LoadTimeZone(opts.String("timeZone"))
	if err != nil {
		return nil, err
	}

	f := &DateTimeFormat{
		tag:      tag,
		data:     lookupLocale(tag),
		loc:      loc,
		zoneName: opts.String("timeZoneName"),
	}
	f.hour12 = f.data.hour12
	if h12, ok := opts.Bool("hour12"); ok {
		f.hour12 = h12
	}

	fields := []struct {
		key     string
		dst     *string
		allowed []string
	}{
		{"weekday", &f.weekday, textWidths},
		{"year", &f.year, numericWidths},
		{"month", &f.month, monthWidths},
		{"day", &f.day, numericWidths},
		{"hour", &f.hour, numericWidths},
		{"minute", &f.minute, numericWidths},
		{"second", &f.second, numericWidths},
	}
	for _, field := range fields {
		v := opts.String(field.key)
		if v == "" {
			continue
		}
		if !slices.Contains(field.allowed, v) {
			return nil, fmt.Errorf("%w: %s value %q is not one of %s", ErrInvalidOption, field.key, v, strings.Join(field.allowed, ", "))
		}
		*field.dst = v
	}

	if !HasDateTimeComponents(opts) {
		f.year, f.month, f.day = "numeric", "numeric", "numeric"
	}
	return f, nil
}

// LoadTimeZone resolves an IANA zone name. An empty name is the local zone.
func LoadTimeZone(name string) (*time.Location, error) {
	switch {
	case name == "":
		return time.Local, nil
	case strings.EqualFold(name, "UTC"), strings.EqualFold(name, "GMT"):
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTimeZone, name, err)
	}
	return loc, nil
}

// Locale reports the resolved locale.
func (f *DateTimeFormat) Locale() language.Tag { return f.tag }

// Format renders t.
func (f *DateTimeFormat) Format(t time.Time) string {
	t = t.In(f.loc)
	date := f.formatDate(t)
	clock := f.formatTime(t)
	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + f.data.dateTimeSep + clock
	}
}

func (f *DateTimeFormat) formatDate(t time.Time) string {
	d := f.data
	var date string

	switch f.month {
	case "narrow", "short", "long":
		name := d.months[t.Month()-1]
		switch f.month {
		case "short":
			name = d.monthsShort[t.Month()-1]
		case "narrow":
			name = string([]rune(name)[:1])
		}
		pattern := "{M}"
		switch {
		case f.day != "" && f.year != "":
			pattern = d.datePattern
		case f.day != "":
			pattern = d.monthDayPattern
		case f.year != "":
			pattern = d.monthYearPattern
		}
		date = strings.NewReplacer(
			"{d}", numeric(t.Day(), f.day),
			"{M}", name,
			"{y}", f.formatYear(t),
		).Replace(pattern)
	default:
		var parts []string
		for _, c := range d.dateOrder {
			switch c {
			case 'y':
				if f.year != "" {
					parts = append(parts, f.formatYear(t))
				}
			case 'm':
				if f.month != "" {
					parts = append(parts, f.padded(int(t.Month()), f.month))
				}
			case 'd':
				if f.day != "" {
					parts = append(parts, f.padded(t.Day(), f.day))
				}
			}
		}
		date = strings.Join(parts, d.dateSep)
	}

	if f.weekday == "" {
		return date
	}
	weekday := d.weekdays[t.Weekday()]
	switch f.weekday {
	case "short":
		weekday = d.weekdaysShort[t.Weekday()]
	case "narrow":
		weekday = string([]rune(weekday)[:1])
	}
	if date == "" {
		return weekday
	}
	return strings.NewReplacer("{W}", weekday, "{D}", date).Replace(d.weekdayPattern)
}

func (f *DateTimeFormat) formatTime(t time.Time) string {
	if f.hour == "" && f.minute == "" && f.second == "" {
		return ""
	}

	var parts []string
	if f.hour != "" {
		h := t.Hour()
		if f.hour12 {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		width := f.hour
		if !f.hour12 && f.minute != "" {
			width = "2-digit"
		}
		parts = append(parts, numeric(h, width))
	}
	if f.minute != "" {
		width := f.minute
		if f.hour != "" {
			width = "2-digit"
		}
		parts = append(parts, numeric(t.Minute(), width))
	}
	if f.second != "" {
		width := f.second
		if f.minute != "" || f.hour != "" {
			width = "2-digit"
		}
		parts = append(parts, numeric(t.Second(), width))
	}

	out := strings.Join(parts, ":")
	switch {
	case f.hour != "" && f.hour12:
		period := f.data.am
		if t.Hour() >= 12 {
			period = f.data.pm
		}
		if period == "" {
			period = en.am
			if t.Hour() >= 12 {
				period = en.pm
			}
		}
		out += " " + period
	case f.hour != "" && f.minute == "" && f.second == "":
		out += f.data.hourSuffix
	}

	if f.zoneName != "" {
		zone, _ := t.Zone()
		out += " " + zone
	}
	return out
}

func (f *DateTimeFormat) formatYear(t time.Time) string {
	if f.year == "2-digit" {
		return numeric(t.Year()%100, "2-digit")
	}
	return strconv.Itoa(t.Year())
}

// padded applies the locale's numeric date padding on top of the requested width.
func (f *DateTimeFormat) padded(n int, width string) string {
	if f.data.padNumeric {
		width = "2-digit"
	}
	return numeric(n, width)
}

func numeric(n int, width string) string {
	if width == "2-digit" {
		return fmt.Sprintf("%02d", n)
	}
	return strconv.Itoa(n)
}
