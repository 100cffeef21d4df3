package i18n

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Options holds formatter options keyed by their Intl names
// (style, currency, minimumFractionDigits, month, timeZone, ...).
// Unknown keys are ignored.
type Options map[string]any

// Formats holds named option presets per category: "number", "date", "time"
// and "relative".
type Formats map[string]map[string]Options

// Clone returns a shallow copy of o.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// String returns the option as a string. Missing, nil and false values read as "".
func (o Options) String(key string) string {
	switch v := o[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		if !v {
			return ""
		}
		return "true"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the option as an integer. ok is false when the option is absent.
func (o Options) Int(key string) (n int, ok bool, err error) {
	switch v := o[key].(type) {
	case nil:
		return 0, false, nil
	case bool:
		if !v {
			return 0, false, nil
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false, nil
		}
	}
	f, isNum := ToFloat(o[key])
	if !isNum || f != float64(int(f)) {
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidOption, key, o[key])
	}
	return int(f), true, nil
}

// Bool returns the option as a boolean. ok is false when the option is absent.
func (o Options) Bool(key string) (b, ok bool) {
	switch v := o[key].(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

func (o Options) rangeInt(key string, lo, hi int) (int, bool, error) {
	n, ok, err := o.Int(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if n < lo || n > hi {
		return 0, false, fmt.Errorf("%w: %s value %d is out of range [%d, %d]", ErrInvalidOption, key, n, lo, hi)
	}
	return n, true, nil
}

// FormatsFrom converts loosely typed nested maps (decoded JSON or YAML, or
// scope data) into Formats. Entries that are not maps are skipped.
func FormatsFrom(v any) Formats {
	if f, ok := v.(Formats); ok {
		return f
	}
	categories := asMap(v)
	if categories == nil {
		return nil
	}
	out := make(Formats, len(categories))
	for category, presets := range categories {
		named := asMap(presets)
		if named == nil {
			continue
		}
		group := make(map[string]Options, len(named))
		for name, opts := range named {
			if m := asMap(opts); m != nil {
				group[name] = Options(m)
			}
		}
		out[category] = group
	}
	return out
}

// Preset returns the named preset of a category, or nil.
func (f Formats) Preset(category, name string) Options {
	if f == nil {
		return nil
	}
	return f[category][name]
}

func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case Options:
		return m
	case map[string]Options:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out
	default:
		return nil
	}
}
