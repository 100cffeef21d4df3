package i18n

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number styles.
const (
	StyleDecimal  = "decimal"
	StylePercent  = "percent"
	StyleCurrency = "currency"
)

const nbsp = "\u00a0"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"INR": "₹",
	"KRW": "₩",
	"BRL": "R$",
	"RUB": "₽",
	"PLN": "zł",
	"UAH": "₴",
	"ILS": "₪",
	"CAD": "CA$",
	"AUD": "A$",
	"MXN": "MX$",
}

// NumberFormat formats numbers in decimal, percent or currency style.
type NumberFormat struct {
	tag     language.Tag
	printer *message.Printer
	style   string
	symbol  string
	after   bool
	opts    []number.Option
}

// NewNumberFormat builds a number formatter for the first usable locale.
// Supported options: style, currency, currencyDisplay, minimumIntegerDigits,
// minimumFractionDigits, maximumFractionDigits, maximumSignificantDigits and
// useGrouping.
func NewNumberFormat(locales []string, opts Options) (*NumberFormat, error) {
	tag, err := ParseLocales(locales)
	if err != nil {
		return nil, err
	}

	f := &NumberFormat{
		tag:     tag,
		printer: message.NewPrinter(tag),
		style:   opts.String("style"),
	}
	if f.style == "" {
		f.style = StyleDecimal
	}

	minInt, ok, err := opts.rangeInt("minimumIntegerDigits", 1, 21)
	if err != nil {
		return nil, err
	}
	if ok {
		f.opts = append(f.opts, number.MinIntegerDigits(minInt))
	}

	minFrac, hasMinFrac, err := opts.rangeInt("minimumFractionDigits", 0, 20)
	if err != nil {
		return nil, err
	}
	maxFrac, hasMaxFrac, err := opts.rangeInt("maximumFractionDigits", 0, 20)
	if err != nil {
		return nil, err
	}
	if hasMinFrac && hasMaxFrac && maxFrac < minFrac {
		return nil, fmt.Errorf("%w: maximumFractionDigits %d is less than minimumFractionDigits %d", ErrInvalidOption, maxFrac, minFrac)
	}

	switch f.style {
	case StyleDecimal, StylePercent:
	case StyleCurrency:
		code := strings.ToUpper(opts.String("currency"))
		if code == "" {
			return nil, ErrMissingCurrency
		}
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("%w: currency %q: %w", ErrInvalidOption, code, err)
		}
		if !hasMinFrac && !hasMaxFrac {
			scale, _ := currency.Standard.Rounding(unit)
			minFrac, maxFrac = scale, scale
			hasMinFrac, hasMaxFrac = true, true
		}
		f.symbol = currencyLabel(unit.String(), opts.String("currencyDisplay"))
		f.after = lookupLocale(tag).currencyAfter
	default:
		return nil, fmt.Errorf("%w: unknown number style %q", ErrInvalidOption, f.style)
	}

	if hasMinFrac {
		f.opts = append(f.opts, number.MinFractionDigits(minFrac))
	}
	if hasMaxFrac {
		f.opts = append(f.opts, number.MaxFractionDigits(maxFrac))
	}

	maxSig, ok, err := opts.rangeInt("maximumSignificantDigits", 1, 21)
	if err != nil {
		return nil, err
	}
	if ok {
		f.opts = append(f.opts, number.Precision(maxSig))
	}

	if grouping, ok := opts.Bool("useGrouping"); ok && !grouping {
		f.opts = append(f.opts, number.NoSeparator())
	}

	return f, nil
}

// Locale reports the resolved locale.
func (f *NumberFormat) Locale() language.Tag { return f.tag }

// Format renders v.
func (f *NumberFormat) Format(v float64) string {
	switch f.style {
	case StylePercent:
		return f.printer.Sprint(number.Percent(v, f.opts...))
	case StyleCurrency:
		sign := ""
		if v < 0 || (v == 0 && math.Signbit(v)) {
			sign = "-"
			v = -v
		}
		amount := f.printer.Sprint(number.Decimal(v, f.opts...))
		if f.after {
			return sign + amount + nbsp + f.symbol
		}
		if isAlphabetic(f.symbol) {
			return sign + f.symbol + nbsp + amount
		}
		return sign + f.symbol + amount
	default:
		return f.printer.Sprint(number.Decimal(v, f.opts...))
	}
}

func currencyLabel(code, display string) string {
	if display == "" || display == "symbol" {
		if sym, ok := currencySymbols[code]; ok {
			return sym
		}
	}
	return code
}

func isAlphabetic(s string) bool {
	last := []rune(s)
	return len(last) > 0 && unicode.IsLetter(last[len(last)-1])
}
