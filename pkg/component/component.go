package component

import (
	"bytes"
	"context"
	"io"
	"maps"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/intl"
)

// Kit exposes the intl helpers as templ components.
//
//	templ Price(kit *component.Kit, amount float64) {
//		@kit.Intl(map[string]any{"locales": "de-DE", "currency": "EUR"}) {
//			<span>@kit.FormatNumber(amount, map[string]any{"style": "currency"})</span>
//		}
//	}
type Kit struct {
	in *intl.Intl
}

// New creates a Kit backed by in.
func New(in *intl.Intl) *Kit {
	return &Kit{in: in}
}

// Intl renders its children with a new scope frame built from params.
func (k *Kit) Intl(params map[string]any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		return k.in.Block(ctx, w, intl.Bodies{Block: children}, intl.P(params))
	})
}

// FormatNumber renders val as a number.
func (k *Kit) FormatNumber(val any, params ...map[string]any) templ.Component {
	return k.text(k.in.FormatNumber, withParam(intl.ParamVal, val, params))
}

// FormatDate renders val as a date.
func (k *Kit) FormatDate(val any, params ...map[string]any) templ.Component {
	return k.text(k.in.FormatDate, withParam(intl.ParamVal, val, params))
}

// FormatTime renders val as a time of day.
func (k *Kit) FormatTime(val any, params ...map[string]any) templ.Component {
	return k.text(k.in.FormatTime, withParam(intl.ParamVal, val, params))
}

// FormatRelative renders val relative to now.
func (k *Kit) FormatRelative(val any, params ...map[string]any) templ.Component {
	return k.text(k.in.FormatRelative, withParam(intl.ParamVal, val, params))
}

// FormatMessage renders msg, a pattern or a precompiled intl.MessageFormat,
// with params as arguments.
func (k *Kit) FormatMessage(msg any, params ...map[string]any) templ.Component {
	return k.text(k.in.FormatMessage, withParam(intl.ParamMsg, msg, params))
}

// Message renders the scope message stored under key.
func (k *Kit) Message(key string, params ...map[string]any) templ.Component {
	return k.text(k.in.FormatMessage, withParam(intl.ParamKey, key, params))
}

// text renders h and writes the escaped result.
func (k *Kit) text(h intl.Helper, params intl.Params) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := h(ctx, &buf, intl.Bodies{}, params); err != nil {
			return err
		}
		_, err := io.WriteString(w, templ.EscapeString(buf.String()))
		return err
	})
}

// Fragment turns a component into a parameter whose value is its rendered
// text. Empty output reads as false.
func Fragment(c templ.Component) intl.Value {
	return intl.Fragment(c)
}

func withParam(key string, v any, params []map[string]any) intl.Params {
	merged := make(map[string]any)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	merged[key] = v
	return intl.P(merged)
}
