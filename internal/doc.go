// Package internal implements scoped formatting configuration for nested
// template renders.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/intl" instead, which re-exports the public API.
//
// # Scope
//
// A render carries an immutable *Stack in its context.Context. The "intl"
// helper pushes a frame holding its parameters under the reserved "intl" key
// and renders its block with the extended stack; the frame disappears when
// the block returns because the outer context never saw it.
//
// Resolve walks the frames innermost first, then the global frame installed
// by the host (see NewStack), then the defaults from Config. A frame answers
// a path only when it owns every segment, so an inner frame that sets only
// intl.currency leaves intl.locales to outer frames.
//
// # Parameters
//
// Call-site parameters are Values, tagged once as Scalar, Literal or
// Fragment. Tap turns them into concrete values: literals are called,
// fragments are rendered into a private buffer and an empty rendering reads
// as false.
//
// # Helpers
//
// Every formatting helper follows the same steps: read and coerce val,
// resolve locales (locales parameter, deprecated locale parameter, then
// intl.locales in scope), merge options (named preset from
// intl.formats.<category>.<formatName> with the call-site parameters over
// it), fetch a formatter from the FormatterCache and write the result.
//
// formatMessage takes the message from _msg or from intl.messages.<_key>.
// A message implementing MessageFormatter is used as-is.
//
// # Hosts
//
// Helpers have the signature of Helper and only need a context, a writer
// and bodies with a Render(ctx, w) method, which templ components already
// have. Text, Seq, Ref, With, Call and Render form a tiny host used by tests
// and examples.
package internal
