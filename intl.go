package intl

import (
	"context"
	"io/fs"

	"github.com/dmitrymomot/intl/internal"
	"github.com/dmitrymomot/intl/pkg/i18n"
	"github.com/dmitrymomot/intl/pkg/logger"
)

// Type aliases - public API
type (
	// Intl resolves formatting configuration from the render scope and
	// formats values with cached formatters.
	Intl = internal.Intl

	// Option configures an Intl.
	Option = internal.Option

	// Config is the default formatting configuration, consulted after the
	// global frame.
	Config = internal.Config

	// Value is a call-site parameter: a scalar, a literal or a fragment.
	Value = internal.Value

	// ValueKind tags the variant of a Value.
	ValueKind = internal.ValueKind

	// Params are the call-site parameters of a helper.
	Params = internal.Params

	// Body is a renderable template fragment. templ components satisfy it.
	Body = internal.Body

	// BodyFunc adapts a function to Body.
	BodyFunc = internal.BodyFunc

	// Bodies are the blocks passed to a helper.
	Bodies = internal.Bodies

	// Helper is the signature of every template helper.
	Helper = internal.Helper

	// Helpers is a name to helper map.
	Helpers = internal.Helpers

	// Registrar receives helpers from Intl.Register.
	Registrar = internal.Registrar

	// MessageFormatter is a precompiled message.
	MessageFormatter = internal.MessageFormatter

	// Frame is one scope layer.
	Frame = internal.Frame

	// FrameSource is what the resolver walks.
	FrameSource = internal.FrameSource

	// Stack is the immutable scope stack carried in a context.
	Stack = internal.Stack

	// Getter lets host types expose keys to the resolver.
	Getter = internal.Getter

	// FormatterKey identifies a cached formatter.
	FormatterKey = internal.FormatterKey

	// FormatterCache memoizes formatters.
	FormatterCache = internal.FormatterCache

	// MissingParameterError reports a missing required parameter.
	MissingParameterError = internal.MissingParameterError

	// InvalidValueError reports a parameter whose value cannot be used.
	InvalidValueError = internal.InvalidValueError

	// Extractor finds a locale in a request by trying sources in order.
	Extractor = internal.Extractor

	// ExtractorSource reads one candidate value from a request.
	ExtractorSource = internal.ExtractorSource

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// MessageFormat is a compiled ICU-style message. It implements
	// MessageFormatter, so it can be passed as _msg.
	MessageFormat = i18n.MessageFormat

	// MessageOptions configures NewMessageFormat.
	MessageOptions = i18n.MessageOptions

	// Formats are named presets by category.
	Formats = i18n.Formats

	// Options are flat formatter options.
	Options = i18n.Options

	// Catalog holds messages by locale.
	Catalog = i18n.Catalog
)

// Value kinds.
const (
	KindScalar   = internal.KindScalar
	KindLiteral  = internal.KindLiteral
	KindFragment = internal.KindFragment
)

// Reserved helper parameters.
const (
	ParamVal        = internal.ParamVal
	ParamLocales    = internal.ParamLocales
	ParamLocale     = internal.ParamLocale
	ParamFormatName = internal.ParamFormatName
	ParamMsg        = internal.ParamMsg
	ParamKey        = internal.ParamKey
)

// Sentinel errors.
var (
	ErrMissingParameter = internal.ErrMissingParameter
	ErrInvalidValue     = internal.ErrInvalidValue
	ErrUnknownMessage   = internal.ErrUnknownMessage
)

// StackKey is the context key of the render stack.
type StackKey = internal.StackKey

// New creates an Intl.
//
// Example:
//
//	in, err := intl.New(
//	    intl.WithConfig(intl.Config{Locales: []string{"en-US"}}),
//	    intl.WithMessagesDir(locales),
//	)
func New(opts ...Option) (*Intl, error) {
	return internal.New(opts...)
}

// Scalar wraps a concrete value.
func Scalar(v any) Value { return internal.Scalar(v) }

// Literal wraps a function producing a resolved value.
func Literal(fn func() any) Value { return internal.Literal(fn) }

// Fragment wraps a body whose rendered text is the value.
func Fragment(b Body) Value { return internal.Fragment(b) }

// P builds Params from plain values.
func P(m map[string]any) Params { return internal.P(m) }

// Tap resolves a possibly deferred value.
func Tap(ctx context.Context, v any) (any, error) { return internal.Tap(ctx, v) }

// NewStack returns an empty stack with the given global frame.
func NewStack(global any) *Stack { return internal.NewStack(global) }

// Over returns an empty stack layered on a host frame source.
func Over(src FrameSource) *Stack { return internal.Over(src) }

// WithStack returns a context carrying s.
func WithStack(ctx context.Context, s *Stack) context.Context { return internal.WithStack(ctx, s) }

// StackFrom returns the stack carried by ctx.
func StackFrom(ctx context.Context) *Stack { return internal.StackFrom(ctx) }

// PushFrame pushes frame onto the stack carried by ctx.
func PushFrame(ctx context.Context, frame any) context.Context {
	return internal.PushFrame(ctx, frame)
}

// Resolve looks up path in src.
func Resolve(src FrameSource, path ...string) (any, bool) { return internal.Resolve(src, path...) }

// NewFormatterCache returns a formatter cache on an unbounded store.
func NewFormatterCache() *FormatterCache { return internal.NewFormatterCache(nil) }

// NewMessageFormat compiles an ICU-style message.
func NewMessageFormat(pattern string, locales []string, opts MessageOptions) (*MessageFormat, error) {
	return i18n.NewMessageFormat(pattern, locales, opts)
}

// ConfigFromEnv reads Config from INTL_* environment variables.
func ConfigFromEnv() (Config, error) { return internal.ConfigFromEnv() }

// LoadConfig reads a YAML config file from fsys.
func LoadConfig(fsys fs.FS, name string) (Config, error) { return internal.LoadConfig(fsys, name) }

// LoadCatalog reads {lang}/{namespace}.json|yaml message files from fsys.
func LoadCatalog(fsys fs.FS) (Catalog, error) { return i18n.LoadCatalog(fsys) }

// LocaleExtractor stamps log records with the locale of the current render.
func LocaleExtractor() ContextExtractor { return internal.LocaleExtractor() }

// Host building blocks, handy in tests and non-templ hosts.

// Text is a body writing s verbatim.
func Text(s string) Body { return internal.Text(s) }

// Seq renders bodies one after another.
func Seq(bodies ...Body) Body { return internal.Seq(bodies...) }

// Ref writes the value at path in the render stack.
func Ref(path ...string) Body { return internal.Ref(path...) }

// With renders body with frame pushed.
func With(frame Frame, body Body) Body { return internal.With(frame, body) }

// Call invokes a helper with params and an optional block.
func Call(h Helper, params Params, block Body) Body { return internal.Call(h, params, block) }

// Render renders body to a string.
func Render(ctx context.Context, body Body) (string, error) { return internal.Render(ctx, body) }

// Locale extraction from requests.

// NewExtractor creates an Extractor trying sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor { return internal.NewExtractor(sources...) }

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource { return internal.FromHeader(name) }

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource { return internal.FromQuery(name) }

// FromCookie reads a cookie.
func FromCookie(name string) ExtractorSource { return internal.FromCookie(name) }

// FromParam reads a chi URL parameter.
func FromParam(name string) ExtractorSource { return internal.FromParam(name) }
