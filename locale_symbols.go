package currencyfmt

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// genericCurrencySign is the root locale currency symbol
	genericCurrencySign = "¤"
	// unknownCurrencyCode is the ISO code reserved for "no currency"
	unknownCurrencyCode = "XXX"
)

// defaultRoundingInfo applies to currencies neither the data nor CLDR knows.
var defaultRoundingInfo = RoundingInfo{FractionDigits: 2, Increment: "0"}

// LocaleSymbols implements Symbols from catalog data, falling back to the
// CLDR tables shipped with golang.org/x/text.
type LocaleSymbols struct {
	locale   string
	tag      language.Tag
	printer  *message.Printer
	exact    *LocaleCurrencyData
	entries  []LocaleCurrencyData
	rounding map[string]CurrencyRounding
	logger   *zap.Logger
}

var _ Symbols = &LocaleSymbols{}

func newLocaleSymbols(c *Catalog, locale string) *LocaleSymbols {
	tag := language.Make(locale)
	s := &LocaleSymbols{
		locale:   locale,
		tag:      tag,
		printer:  message.NewPrinter(tag),
		rounding: c.rounding,
		logger:   c.logger.With(zap.String("locale", locale)),
	}

	for _, candidate := range c.resolveCandidates(locale) {
		entry, ok := c.locales[candidate]
		if !ok {
			continue
		}
		if candidate == locale {
			exact := entry
			s.exact = &exact
		}
		s.entries = append(s.entries, entry)
	}

	return s
}

func (s *LocaleSymbols) Locale() string {
	return s.locale
}

func (s *LocaleSymbols) CurrencySymbol(code string) string {
	code = normalizeCode(code)
	for _, entry := range s.entries {
		if symbol, ok := entry.Symbols[code]; ok && symbol != "" {
			return symbol
		}
	}
	if symbol, ok := s.xtextSymbol(code); ok {
		return symbol
	}
	s.logger.Debug("no symbol for currency, using code", zap.String("currency", code))
	return code
}

func (s *LocaleSymbols) ISOCode(code string) string {
	code = normalizeCode(code)
	if unit, err := xcurrency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}

// GenericSymbol follows the FallbackCurrency order so an inherited root
// placeholder never shadows the currency of an explicit region.
func (s *LocaleSymbols) GenericSymbol() string {
	if s.exact != nil && s.exact.CurrencySymbol != "" {
		return s.exact.CurrencySymbol
	}
	if code, ok := s.ownCurrency(); ok {
		return s.CurrencySymbol(code)
	}
	for _, entry := range s.entries {
		if entry.CurrencySymbol != "" {
			return entry.CurrencySymbol
		}
	}
	if code, ok := s.FallbackCurrency(); ok {
		return s.CurrencySymbol(code)
	}
	return genericCurrencySign
}

func (s *LocaleSymbols) InternationalSymbol() string {
	if s.exact != nil && s.exact.InternationalSymbol != "" {
		return s.exact.InternationalSymbol
	}
	if code, ok := s.ownCurrency(); ok {
		return s.ISOCode(code)
	}
	for _, entry := range s.entries {
		if entry.InternationalSymbol != "" {
			return entry.InternationalSymbol
		}
	}
	if code, ok := s.FallbackCurrency(); ok {
		return s.ISOCode(code)
	}
	return unknownCurrencyCode
}

// LongName resolves the requested category across the whole locale chain
// before falling back to the other form.
func (s *LocaleSymbols) LongName(code string, category PluralCategory) string {
	code = normalizeCode(code)
	keywords := []string{category.Keyword()}
	if category != PluralOther {
		keywords = append(keywords, PluralOther.Keyword())
	}

	for _, keyword := range keywords {
		for _, entry := range s.entries {
			if name, ok := entry.LongNames[code][keyword]; ok && name != "" {
				return name
			}
		}
	}

	s.logger.Debug("no long name for currency, using code",
		zap.String("currency", code),
		zap.String("category", category.Keyword()),
	)
	return s.ISOCode(code)
}

// FallbackCurrency prefers the locale's own data, then an explicit region
// subtag, then inherited data.
func (s *LocaleSymbols) FallbackCurrency() (string, bool) {
	if code, ok := s.ownCurrency(); ok {
		return code, true
	}
	for _, entry := range s.entries {
		if entry.DefaultCurrency != "" {
			return entry.DefaultCurrency, true
		}
	}
	return "", false
}

// ownCurrency is the currency of the locale itself: its own data entry, then
// its explicit region subtag.
func (s *LocaleSymbols) ownCurrency() (string, bool) {
	if s.exact != nil && s.exact.DefaultCurrency != "" {
		return s.exact.DefaultCurrency, true
	}
	if region, confidence := s.tag.Region(); confidence == language.Exact {
		if unit, ok := xcurrency.FromRegion(region); ok {
			return unit.String(), true
		}
	}
	return "", false
}

func (s *LocaleSymbols) Rounding(code string, usage CurrencyUsage) RoundingInfo {
	code = normalizeCode(code)
	if rounding, ok := s.rounding[code]; ok {
		return rounding.For(usage)
	}

	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		s.logger.Debug("unknown currency, using default rounding", zap.String("currency", code))
		return defaultRoundingInfo
	}

	kind := xcurrency.Standard
	if usage == UsageCash {
		kind = xcurrency.Cash
	}
	scale, increment := kind.Rounding(unit)
	return RoundingInfo{
		FractionDigits: scale,
		Increment:      incrementString(scale, increment),
	}
}

func (s *LocaleSymbols) Signs() Signs {
	var signs Signs
	for _, entry := range s.entries {
		signs = signs.fillFrom(entry.Signs)
	}
	return signs.withDefaults()
}

// xtextSymbol reads the CLDR symbol through a printer for the locale
func (s *LocaleSymbols) xtextSymbol(code string) (string, bool) {
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return "", false
	}
	symbol := strings.TrimSpace(s.printer.Sprintf("%v", xcurrency.Symbol(unit)))
	if symbol == "" {
		return "", false
	}
	return symbol, true
}

// incrementString converts x/text rounding, expressed in units of
// 10^-scale, to a canonical decimal string. One unit is plain magnitude
// rounding and maps to "0".
func incrementString(scale, increment int) string {
	if increment <= 1 {
		return "0"
	}
	return decimal.New(int64(increment), int32(-scale)).String()
}
