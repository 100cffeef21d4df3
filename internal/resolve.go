package internal

import "github.com/dmitrymomot/intl/pkg/i18n"

// Getter is implemented by host types that expose keys to the resolver.
type Getter interface {
	Lookup(key string) (any, bool)
}

// Resolve looks up path in every frame of src, innermost first, then in the
// global frame. A frame matches only when it owns every segment of the path;
// the first match wins even when its value is empty or false.
func Resolve(src FrameSource, path ...string) (any, bool) {
	if src == nil || len(path) == 0 {
		return nil, false
	}
	for frame := range src.Frames() {
		if v, ok := lookupPath(frame, path); ok {
			return v, true
		}
	}
	return lookupPath(src.Global(), path)
}

func lookupPath(v any, path []string) (any, bool) {
	cur := v
	for _, key := range path {
		next, ok := lookupKey(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// lookupKey reports whether v directly owns key. Only maps keyed by string
// and Getters own keys.
func lookupKey(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[key]
		return val, ok
	case map[string]string:
		val, ok := m[key]
		return val, ok
	case i18n.Options:
		val, ok := m[key]
		return val, ok
	case i18n.Formats:
		val, ok := m[key]
		return val, ok
	case map[string]i18n.Options:
		val, ok := m[key]
		return val, ok
	case Value:
		if m.Kind() != KindScalar {
			return nil, false
		}
		return lookupKey(m.scalar, key)
	case Getter:
		return m.Lookup(key)
	default:
		return nil, false
	}
}
