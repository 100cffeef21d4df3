// Package component adapts the intl helpers to templ.
//
// Kit methods return templ.Component values, so they are called with @ in
// templates. Output of the formatting helpers is HTML escaped; the children
// of Kit.Intl are rendered as they are.
//
//	kit := component.New(in)
//
//	templ Invoice(kit *component.Kit, total float64, due time.Time) {
//		@kit.Intl(map[string]any{"locales": "de-DE"}) {
//			<p>@kit.FormatNumber(total, map[string]any{"style": "currency", "currency": "EUR"})</p>
//			<p>@kit.FormatDate(due, map[string]any{"month": "long", "day": "numeric"})</p>
//		}
//	}
//
// A templ component can also be passed as a deferred parameter with Fragment.
package component
