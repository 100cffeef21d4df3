package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/intl/pkg/component"
)

// Order is the data rendered by OrderPage.
type Order struct {
	Placed time.Time
	Total  float64
	Items  int
}

// OrderPage renders an order summary in the request locale, with the price
// repeated in EUR and in German formatting.
func OrderPage(kit *component.Kit, o Order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []templ.Component{
			templ.Raw("<h1>"), kit.Message("shop.title"), templ.Raw("</h1>\n<p>"),
			kit.Message("shop.items", map[string]any{"count": o.Items}), templ.Raw("</p>\n<p>"),
			kit.Message("shop.total", map[string]any{"total": o.Total}), templ.Raw("</p>\n<p>"),
			kit.Message("shop.placed", map[string]any{"date": o.Placed}), templ.Raw("</p>\n<p>"),
			kit.FormatRelative(o.Placed), templ.Raw("</p>\n"),
		}
		for _, c := range parts {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		eur := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, "<p>"); err != nil {
				return err
			}
			if err := kit.FormatNumber(o.Total, map[string]any{"style": "currency"}).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, "</p>\n")
			return err
		})
		scoped := kit.Intl(map[string]any{"locales": "de-DE", "currency": "EUR"})
		return scoped.Render(templ.WithChildren(ctx, eur), w)
	})
}
