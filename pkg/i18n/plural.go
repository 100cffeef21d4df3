package i18n

import (
	"math"

	"golang.org/x/text/language"
)

// PluralRule maps an integer count to a CLDR plural category.
type PluralRule func(n int) string

// CLDR plural categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DefaultPluralRule is used for languages without a dedicated rule.
var DefaultPluralRule PluralRule = func(n int) string {
	switch a := abs(n); {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a <= 4:
		return PluralFew
	case a < 20:
		return PluralMany
	default:
		return PluralOther
	}
}

// EnglishPluralRule: one for ±1, other otherwise.
var EnglishPluralRule PluralRule = func(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// GermanicPluralRule shares the English categories.
var GermanicPluralRule = EnglishPluralRule

// SlavicPluralRule covers pl, ru, cs, uk and their neighbours.
var SlavicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	switch {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	}
	if mod10, mod100 := a%10, a%100; mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// RomancePluralRule covers fr, it and pt, where 0 is singular.
var RomancePluralRule PluralRule = func(n int) string {
	switch a := abs(n); {
	case a <= 1:
		return PluralOne
	case a >= 1_000_000:
		return PluralMany
	default:
		return PluralOther
	}
}

// SpanishPluralRule is RomancePluralRule with 0 in "other".
var SpanishPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralOther
	}
	return RomancePluralRule(n)
}

// AsianPluralRule never inflects.
var AsianPluralRule PluralRule = func(int) string {
	return PluralOther
}

var ArabicPluralRule PluralRule = func(n int) string {
	a := abs(n)
	switch {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a == 2:
		return PluralTwo
	}
	switch mod100 := a % 100; {
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	default:
		return PluralOther
	}
}

// PluralRuleFor returns the plural rule of a tag's base language.
// Unknown languages get DefaultPluralRule.
func PluralRuleFor(tag language.Tag) PluralRule {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "nb", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

// PluralForm selects the category for n. Fractional values are "other".
func PluralForm(rule PluralRule, n float64) string {
	if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
		return PluralOther
	}
	return rule(int(n))
}
