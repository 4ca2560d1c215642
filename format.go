package currencyfmt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// FormatAmount rounds value, selects the affixes for its plural category and
// sign, and wraps the plain digits. Configs that do not use a currency round
// with the default policy. Grouping and localized digits are left to the caller.
func (r *Resolver) FormatAmount(cfg CurrencyConfig, value decimal.Decimal) (string, error) {
	table, err := r.BuildPluralAffixes(cfg)
	if err != nil {
		return "", err
	}

	policy := r.defaultRounding
	if UsesCurrency(cfg) {
		policy = r.ResolveRounding(cfg)
	}
	rounded := policy.Round(value)
	digits := policy.Format(rounded.Abs())

	category := SelectPluralCategory(r.symbols.Locale(), digits)
	affix := table.Select(category, rounded.IsNegative())
	return affix.Wrap(digits), nil
}

// SelectPluralCategory returns the cardinal category of a plain decimal
// string such as "1.50" using the CLDR rules in golang.org/x/text.
func SelectPluralCategory(locale, digits string) PluralCategory {
	i, v, w, f, t := pluralOperands(digits)
	form := plural.Cardinal.MatchPlural(language.Make(locale), i, v, w, f, t)

	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// pluralOperands computes the CLDR operands i, v, w, f and t. Integer parts
// too long for an int keep their last nine digits, which preserves every
// modulus the rules use.
func pluralOperands(digits string) (i, v, w, f, t int) {
	digits = strings.TrimPrefix(strings.TrimSpace(digits), "-")
	intPart, fracPart, _ := strings.Cut(digits, ".")

	i = lastDigits(intPart)
	v = len(fracPart)
	f = lastDigits(fracPart)

	trimmed := strings.TrimRight(fracPart, "0")
	w = len(trimmed)
	t = lastDigits(trimmed)
	return i, v, w, f, t
}

func lastDigits(s string) int {
	if len(s) > 9 {
		s = s[len(s)-9:]
	}
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
