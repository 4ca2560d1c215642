package currencyfmt

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-i18n-currency/pattern"
)

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralCategories lists every category in iteration order
var PluralCategories = [...]PluralCategory{
	PluralZero,
	PluralOne,
	PluralTwo,
	PluralFew,
	PluralMany,
	PluralOther,
}

// Keyword returns the CLDR keyword for the category
func (c PluralCategory) Keyword() string {
	return string(c)
}

func (c PluralCategory) Valid() bool {
	return pluralCategoryOrder(c) < len(PluralCategories)
}

// ParsePluralCategory accepts a CLDR keyword in any case
func ParsePluralCategory(raw string) (PluralCategory, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "zero":
		return PluralZero, nil
	case "one":
		return PluralOne, nil
	case "two":
		return PluralTwo, nil
	case "few":
		return PluralFew, nil
	case "many":
		return PluralMany, nil
	case "other":
		return PluralOther, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", raw)
	}
}

func pluralCategoryOrder(category PluralCategory) int {
	switch category {
	case PluralZero:
		return 0
	case PluralOne:
		return 1
	case PluralTwo:
		return 2
	case PluralFew:
		return 3
	case PluralMany:
		return 4
	case PluralOther:
		return 5
	default:
		return 99
	}
}

// CurrencyStyle selects the short form used for a single placeholder.
type CurrencyStyle int

const (
	StyleSymbol CurrencyStyle = iota
	StyleISOCode
)

func (s CurrencyStyle) String() string {
	if s == StyleISOCode {
		return "iso_code"
	}
	return "symbol"
}

func ParseCurrencyStyle(raw string) (CurrencyStyle, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "symbol":
		return StyleSymbol, nil
	case "iso", "iso_code", "code":
		return StyleISOCode, nil
	default:
		return StyleSymbol, fmt.Errorf("unknown currency style %q", raw)
	}
}

// CurrencyUsage selects the rounding table: everyday amounts or physical cash.
type CurrencyUsage int

const (
	UsageStandard CurrencyUsage = iota
	UsageCash
)

func (u CurrencyUsage) String() string {
	if u == UsageCash {
		return "cash"
	}
	return "standard"
}

func ParseCurrencyUsage(raw string) (CurrencyUsage, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "standard":
		return UsageStandard, nil
	case "cash":
		return UsageCash, nil
	default:
		return UsageStandard, fmt.Errorf("unknown currency usage %q", raw)
	}
}

// Representation is the textual form substituted for a placeholder run.
type Representation int

const (
	RepresentationSymbol Representation = iota
	RepresentationISOCode
	RepresentationLongName
)

func (r Representation) String() string {
	switch r {
	case RepresentationISOCode:
		return "iso_code"
	case RepresentationLongName:
		return "long_name"
	default:
		return "symbol"
	}
}

// representationForRun maps a placeholder run length to a representation.
// A single placeholder follows the configured style.
func representationForRun(count int, style CurrencyStyle) Representation {
	switch {
	case count >= 3:
		return RepresentationLongName
	case count == 2:
		return RepresentationISOCode
	case style == StyleISOCode:
		return RepresentationISOCode
	default:
		return RepresentationSymbol
	}
}

// PluralInfo is the legacy per-category pattern override
type PluralInfo interface {
	PluralPattern(category PluralCategory) string
}

// StaticPluralInfo maps categories to decimal patterns, falling back to other.
type StaticPluralInfo map[PluralCategory]string

func (p StaticPluralInfo) PluralPattern(category PluralCategory) string {
	if p == nil {
		return ""
	}
	if value, ok := p[category]; ok {
		return value
	}
	return p[PluralOther]
}

// Clone returns an independent copy
func (p StaticPluralInfo) Clone() StaticPluralInfo {
	if p == nil {
		return nil
	}
	out := make(StaticPluralInfo, len(p))
	for category, value := range p {
		out[category] = value
	}
	return out
}

// CurrencyConfig is the per-call input to every resolver. It is a value:
// the With* methods return modified copies.
type CurrencyConfig struct {
	// Currency is an ISO 4217 code. Empty means the locale fallback is used.
	Currency   string
	Style      CurrencyStyle
	Usage      CurrencyUsage
	PluralInfo PluralInfo
	Affixes    pattern.Fragment
}

// NewCurrencyConfig builds a config from a decimal pattern such as "¤#,##0.00".
func NewCurrencyConfig(currency, decimalPattern string) (CurrencyConfig, error) {
	cfg := CurrencyConfig{Currency: strings.ToUpper(strings.TrimSpace(currency))}
	if decimalPattern == "" {
		return cfg, nil
	}
	frag, err := pattern.Parse(decimalPattern)
	if err != nil {
		return CurrencyConfig{}, fmt.Errorf("%w: %w", ErrMalformedPattern, err)
	}
	cfg.Affixes = frag
	return cfg, nil
}

func (c CurrencyConfig) WithCurrency(code string) CurrencyConfig {
	c.Currency = strings.ToUpper(strings.TrimSpace(code))
	return c
}

func (c CurrencyConfig) WithStyle(style CurrencyStyle) CurrencyConfig {
	c.Style = style
	return c
}

func (c CurrencyConfig) WithUsage(usage CurrencyUsage) CurrencyConfig {
	c.Usage = usage
	return c
}

func (c CurrencyConfig) WithPluralInfo(info PluralInfo) CurrencyConfig {
	c.PluralInfo = info
	return c
}

// WithAffixes replaces the affix patterns, leaving the other fields intact.
func (c CurrencyConfig) WithAffixes(frag pattern.Fragment) CurrencyConfig {
	c.Affixes = frag
	return c
}

// UsesCurrency reports whether the config needs currency data: a currency is
// set, plural currency patterns are given, or one of the affix patterns holds
// a placeholder.
func UsesCurrency(cfg CurrencyConfig) bool {
	return cfg.Currency != "" ||
		cfg.PluralInfo != nil ||
		pattern.HasCurrency(cfg.Affixes.PositivePrefix) ||
		pattern.HasCurrency(cfg.Affixes.PositiveSuffix) ||
		pattern.HasCurrency(cfg.Affixes.NegativePrefix) ||
		pattern.HasCurrency(cfg.Affixes.NegativeSuffix)
}
