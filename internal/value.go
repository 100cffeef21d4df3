package internal

import (
	"bytes"
	"context"
	"io"
)

// Body is a renderable template fragment. Its signature matches
// templ.Component, so templ components are bodies as-is.
type Body interface {
	Render(ctx context.Context, w io.Writer) error
}

// BodyFunc adapts a function to Body.
type BodyFunc func(ctx context.Context, w io.Writer) error

func (f BodyFunc) Render(ctx context.Context, w io.Writer) error { return f(ctx, w) }

// ValueKind tags how a Value turns into a concrete value.
type ValueKind uint8

const (
	// KindScalar values are used as they are.
	KindScalar ValueKind = iota
	// KindLiteral values are produced by calling a function with no arguments.
	KindLiteral
	// KindFragment values are rendered to text.
	KindFragment
)

func (k ValueKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindFragment:
		return "fragment"
	default:
		return "scalar"
	}
}

// Value is a possibly deferred call-site parameter. The kind is fixed when
// the value is created and never re-inspected.
type Value struct {
	scalar  any
	literal func() any
	body    Body
	kind    ValueKind
}

// Scalar wraps a concrete value.
func Scalar(v any) Value { return Value{kind: KindScalar, scalar: v} }

// Literal wraps a function producing an already resolved value.
func Literal(fn func() any) Value { return Value{kind: KindLiteral, literal: fn} }

// Fragment wraps a body whose rendered text is the value.
func Fragment(b Body) Value { return Value{kind: KindFragment, body: b} }

// Kind reports the variant.
func (v Value) Kind() ValueKind { return v.kind }

// Tap resolves v to a concrete value. Fragments render into a private
// buffer; an empty rendering resolves to false.
func (v Value) Tap(ctx context.Context) (any, error) {
	switch v.kind {
	case KindLiteral:
		if v.literal == nil {
			return nil, nil
		}
		return v.literal(), nil
	case KindFragment:
		if v.body == nil {
			return false, nil
		}
		var buf bytes.Buffer
		if err := v.body.Render(ctx, &buf); err != nil {
			return nil, err
		}
		if buf.Len() == 0 {
			return false, nil
		}
		return buf.String(), nil
	default:
		return v.scalar, nil
	}
}

// Tap resolves any value: Values are tapped, everything else passes through.
func Tap(ctx context.Context, v any) (any, error) {
	switch val := v.(type) {
	case Value:
		return val.Tap(ctx)
	case *Value:
		if val == nil {
			return nil, nil
		}
		return val.Tap(ctx)
	default:
		return v, nil
	}
}

// Params are call-site parameters. Helpers never mutate them.
type Params map[string]Value

// P builds Params from plain values. Existing Values are kept, anything
// else becomes a Scalar.
func P(m map[string]any) Params {
	out := make(Params, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case Value:
			out[k] = val
		case *Value:
			if val != nil {
				out[k] = *val
			}
		default:
			out[k] = Scalar(v)
		}
	}
	return out
}

// Lookup implements Getter so Params can serve as a frame.
func (p Params) Lookup(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Has reports whether key was passed.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Without returns a copy of p without the given keys.
func (p Params) Without(keys ...string) Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// TapAll resolves every parameter into a plain map.
func (p Params) TapAll(ctx context.Context) (map[string]any, error) {
	out := make(map[string]any, len(p))
	for k, v := range p {
		val, err := v.Tap(ctx)
		if err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}
