package i18n

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// MessageOptions configures a MessageFormat.
type MessageOptions struct {
	// Formats holds named number/date/time presets referenced by style,
	// e.g. {price, number, usd}.
	Formats Formats
	// TimeZone applies to date and time arguments unless a preset names one.
	TimeZone string
	// Currency is used by {x, number, currency} and currency presets
	// without a currency code. Defaults to USD.
	Currency string
}

// MessageFormat is a compiled ICU-style message.
type MessageFormat struct {
	pattern string
	tag     language.Tag
	parts   []msgPart
}

// NewMessageFormat compiles pattern for the first usable locale. Nested
// number and date formatters are built once, at compile time.
func NewMessageFormat(pattern string, locales []string, opts MessageOptions) (*MessageFormat, error) {
	tag, err := ParseLocales(locales)
	if err != nil {
		return nil, err
	}
	nf, err := NewNumberFormat([]string{tag.String()}, nil)
	if err != nil {
		return nil, err
	}
	if opts.Currency == "" {
		opts.Currency = "USD"
	}

	p := &msgParser{
		src:    []rune(pattern),
		tag:    tag,
		opts:   opts,
		number: nf,
		plural: PluralRuleFor(tag),
	}
	parts, err := p.parseMessage(0, false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) {
		return nil, p.errorf("unmatched '}'")
	}
	return &MessageFormat{pattern: pattern, tag: tag, parts: parts}, nil
}

// Pattern returns the source pattern.
func (m *MessageFormat) Pattern() string { return m.pattern }

// Locale reports the resolved locale.
func (m *MessageFormat) Locale() language.Tag { return m.tag }

// Format renders the message with the given arguments.
func (m *MessageFormat) Format(args map[string]any) (string, error) {
	var b strings.Builder
	if err := writeParts(&b, m.parts, args, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

type msgPart interface {
	write(b *strings.Builder, args map[string]any, hash *float64) error
}

func writeParts(b *strings.Builder, parts []msgPart, args map[string]any, hash *float64) error {
	for _, part := range parts {
		if err := part.write(b, args, hash); err != nil {
			return err
		}
	}
	return nil
}

func argument(args map[string]any, name string) (any, error) {
	v, ok := args[name]
	if !ok {
		return nil, fmt.Errorf("%w: a value must be provided for %q", ErrMissingArgument, name)
	}
	return v, nil
}

type textPart string

func (t textPart) write(b *strings.Builder, _ map[string]any, _ *float64) error {
	b.WriteString(string(t))
	return nil
}

type hashPart struct{ number *NumberFormat }

func (h hashPart) write(b *strings.Builder, _ map[string]any, hash *float64) error {
	if hash == nil {
		b.WriteByte('#')
		return nil
	}
	b.WriteString(h.number.Format(*hash))
	return nil
}

type simplePart struct {
	name   string
	number *NumberFormat
}

func (s simplePart) write(b *strings.Builder, args map[string]any, _ *float64) error {
	v, err := argument(args, s.name)
	if err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
	case string:
		b.WriteString(val)
	case fmt.Stringer:
		b.WriteString(val.String())
	default:
		if f, ok := ToFloat(val); ok {
			b.WriteString(s.number.Format(f))
			return nil
		}
		fmt.Fprint(b, val)
	}
	return nil
}

type numberPart struct {
	name   string
	format *NumberFormat
}

func (n numberPart) write(b *strings.Builder, args map[string]any, _ *float64) error {
	v, err := argument(args, n.name)
	if err != nil {
		return err
	}
	f, ok := ToFloat(v)
	if !ok {
		return fmt.Errorf("%w: %q is not a number: %v", ErrInvalidArgument, n.name, v)
	}
	b.WriteString(n.format.Format(f))
	return nil
}

type datePart struct {
	name   string
	format *DateTimeFormat
}

func (d datePart) write(b *strings.Builder, args map[string]any, _ *float64) error {
	v, err := argument(args, d.name)
	if err != nil {
		return err
	}
	t, ok := ToTime(v)
	if !ok {
		return fmt.Errorf("%w: %q is not a date: %v", ErrInvalidArgument, d.name, v)
	}
	b.WriteString(d.format.Format(t))
	return nil
}

type pluralPart struct {
	name    string
	offset  float64
	rule    PluralRule
	exact   map[float64][]msgPart
	options map[string][]msgPart
}

func (p pluralPart) write(b *strings.Builder, args map[string]any, _ *float64) error {
	v, err := argument(args, p.name)
	if err != nil {
		return err
	}
	n, ok := ToFloat(v)
	if !ok {
		return fmt.Errorf("%w: %q is not a number: %v", ErrInvalidArgument, p.name, v)
	}
	hash := n - p.offset
	if parts, ok := p.exact[n]; ok {
		return writeParts(b, parts, args, &hash)
	}
	parts, ok := p.options[PluralForm(p.rule, hash)]
	if !ok {
		parts = p.options[PluralOther]
	}
	return writeParts(b, parts, args, &hash)
}

type selectPart struct {
	name    string
	options map[string][]msgPart
}

func (s selectPart) write(b *strings.Builder, args map[string]any, hash *float64) error {
	v, err := argument(args, s.name)
	if err != nil {
		return err
	}
	parts, ok := s.options[fmt.Sprint(v)]
	if !ok {
		parts = s.options["other"]
	}
	return writeParts(b, parts, args, hash)
}

var (
	numberStyles = map[string]Options{
		"integer":  {"maximumFractionDigits": 0},
		"percent":  {"style": StylePercent},
		"currency": {"style": StyleCurrency},
	}
	dateStyles = map[string]Options{
		"short":  {"month": "numeric", "day": "numeric", "year": "2-digit"},
		"medium": {"month": "short", "day": "numeric", "year": "numeric"},
		"long":   {"month": "long", "day": "numeric", "year": "numeric"},
		"full":   {"weekday": "long", "month": "long", "day": "numeric", "year": "numeric"},
	}
	timeStyles = map[string]Options{
		"short":  {"hour": "numeric", "minute": "numeric"},
		"medium": {"hour": "numeric", "minute": "numeric", "second": "numeric"},
		"long":   {"hour": "numeric", "minute": "numeric", "second": "numeric", "timeZoneName": "short"},
		"full":   {"hour": "numeric", "minute": "numeric", "second": "numeric", "timeZoneName": "short"},
	}
)

const maxMessageDepth = 16

type msgParser struct {
	src    []rune
	pos    int
	tag    language.Tag
	opts   MessageOptions
	number *NumberFormat
	plural PluralRule
}

func (p *msgParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrMessageSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *msgParser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *msgParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// parseMessage reads parts until the end of input or an unconsumed '}'
// closing the enclosing option.
func (p *msgParser) parseMessage(depth int, inPlural bool) ([]msgPart, error) {
	if depth > maxMessageDepth {
		return nil, p.errorf("message nested too deeply")
	}

	var parts []msgPart
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, textPart(text.String()))
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		r := p.src[p.pos]
		switch {
		case r == '{':
			flush()
			part, err := p.parseArgument(depth, inPlural)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		case r == '}':
			if depth == 0 {
				return nil, p.errorf("unmatched '}'")
			}
			flush()
			return parts, nil
		case r == '#' && inPlural:
			flush()
			parts = append(parts, hashPart{number: p.number})
			p.pos++
		case r == '\'':
			p.parseQuoted(&text, inPlural)
		default:
			text.WriteRune(r)
			p.pos++
		}
	}
	if depth > 0 {
		return nil, p.errorf("unclosed '{'")
	}
	flush()
	return parts, nil
}

// parseQuoted handles apostrophe quoting: '' is a literal apostrophe and a
// quote before a syntax character starts a literal run.
func (p *msgParser) parseQuoted(text *strings.Builder, inPlural bool) {
	p.pos++
	next, ok := p.peek()
	switch {
	case ok && next == '\'':
		text.WriteRune('\'')
		p.pos++
		return
	case !ok || !(next == '{' || next == '}' || (next == '#' && inPlural)):
		text.WriteRune('\'')
		return
	}
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		p.pos++
		if r != '\'' {
			text.WriteRune(r)
			continue
		}
		if n, ok := p.peek(); ok && n == '\'' {
			text.WriteRune('\'')
			p.pos++
			continue
		}
		return
	}
}

func (p *msgParser) parseWord() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if unicode.IsSpace(r) || r == ',' || r == '{' || r == '}' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *msgParser) expect(r rune) error {
	p.skipSpace()
	if next, ok := p.peek(); !ok || next != r {
		return p.errorf("expected %q", r)
	}
	p.pos++
	return nil
}

func (p *msgParser) parseArgument(depth int, inPlural bool) (msgPart, error) {
	p.pos++ // {
	p.skipSpace()
	name := p.parseWord()
	if name == "" {
		return nil, p.errorf("argument name expected")
	}
	p.skipSpace()

	next, ok := p.peek()
	if !ok {
		return nil, p.errorf("unclosed argument %q", name)
	}
	if next == '}' {
		p.pos++
		return simplePart{name: name, number: p.number}, nil
	}
	if next != ',' {
		return nil, p.errorf("unexpected %q in argument %q", next, name)
	}
	p.pos++
	p.skipSpace()
	kind := p.parseWord()
	p.skipSpace()

	switch kind {
	case "number", "date", "time":
		style, err := p.parseStyle()
		if err != nil {
			return nil, err
		}
		return p.formattedPart(name, kind, style)
	case "plural":
		if err := p.expect(','); err != nil {
			return nil, err
		}
		return p.parsePlural(name, depth)
	case "select":
		if err := p.expect(','); err != nil {
			return nil, err
		}
		options, err := p.parseOptions(depth, inPlural)
		if err != nil {
			return nil, err
		}
		return selectPart{name: name, options: options}, nil
	default:
		return nil, p.errorf("unsupported argument type %q", kind)
	}
}

func (p *msgParser) parseStyle() (string, error) {
	next, ok := p.peek()
	switch {
	case ok && next == '}':
		p.pos++
		return "", nil
	case ok && next == ',':
		p.pos++
	default:
		return "", p.errorf("expected ',' or '}'")
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '}' {
		if p.src[p.pos] == '{' {
			return "", p.errorf("unexpected '{' in argument style")
		}
		p.pos++
	}
	if p.pos >= len(p.src) {
		return "", p.errorf("unclosed argument style")
	}
	style := strings.TrimSpace(string(p.src[start:p.pos]))
	p.pos++
	return style, nil
}

func (p *msgParser) formattedPart(name, kind, style string) (msgPart, error) {
	locales := []string{p.tag.String()}
	if kind == "number" {
		opts, err := p.styleOptions(kind, style, numberStyles)
		if err != nil {
			return nil, err
		}
		if opts.String("style") == StyleCurrency && opts.String("currency") == "" {
			opts["currency"] = p.opts.Currency
		}
		nf, err := NewNumberFormat(locales, opts)
		if err != nil {
			return nil, err
		}
		return numberPart{name: name, format: nf}, nil
	}

	builtin := dateStyles
	if kind == "time" {
		builtin = timeStyles
	}
	opts, err := p.styleOptions(kind, style, builtin)
	if err != nil {
		return nil, err
	}
	if opts.String("timeZone") == "" && p.opts.TimeZone != "" {
		opts["timeZone"] = p.opts.TimeZone
	}
	if kind == "time" {
		opts = WithTimeDefaults(opts)
	}
	df, err := NewDateTimeFormat(locales, opts)
	if err != nil {
		return nil, err
	}
	return datePart{name: name, format: df}, nil
}

// styleOptions resolves a style name against user presets first, then the
// built-in styles.
func (p *msgParser) styleOptions(kind, style string, builtin map[string]Options) (Options, error) {
	if style == "" {
		return Options{}, nil
	}
	if preset := p.opts.Formats.Preset(kind, style); preset != nil {
		return maps.Clone(preset), nil
	}
	if opts, ok := builtin[style]; ok {
		return maps.Clone(opts), nil
	}
	return nil, p.errorf("unknown %s style %q", kind, style)
}

func (p *msgParser) parsePlural(name string, depth int) (msgPart, error) {
	p.skipSpace()
	part := pluralPart{name: name, rule: p.plural, exact: map[float64][]msgPart{}}

	if strings.HasPrefix(string(p.src[p.pos:min(p.pos+7, len(p.src))]), "offset:") {
		p.pos += len("offset:")
		p.skipSpace()
		raw := p.parseWord()
		offset, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, p.errorf("invalid plural offset %q", raw)
		}
		part.offset = offset
	}

	options, err := p.parseOptions(depth, true)
	if err != nil {
		return nil, err
	}
	for selector, parts := range options {
		if !strings.HasPrefix(selector, "=") {
			continue
		}
		n, err := strconv.ParseFloat(selector[1:], 64)
		if err != nil {
			return nil, p.errorf("invalid plural selector %q", selector)
		}
		part.exact[n] = parts
		delete(options, selector)
	}
	part.options = options
	return part, nil
}

// parseOptions reads "selector {message}" pairs up to and including the
// closing '}' of the argument. An "other" option is required.
func (p *msgParser) parseOptions(depth int, inPlural bool) (map[string][]msgPart, error) {
	options := map[string][]msgPart{}
	for {
		p.skipSpace()
		next, ok := p.peek()
		if !ok {
			return nil, p.errorf("unclosed argument")
		}
		if next == '}' {
			p.pos++
			break
		}
		selector := p.parseWord()
		if selector == "" {
			return nil, p.errorf("option selector expected")
		}
		if err := p.expect('{'); err != nil {
			return nil, err
		}
		parts, err := p.parseMessage(depth+1, inPlural)
		if err != nil {
			return nil, err
		}
		p.pos++ // }
		options[selector] = parts
	}
	if _, ok := options["other"]; !ok {
		return nil, p.errorf("an \"other\" option is required")
	}
	return options, nil
}
