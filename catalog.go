package currencyfmt

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Catalog is an immutable snapshot of currency data that hands out
// locale-bound Symbols.
type Catalog struct {
	locales  map[string]LocaleCurrencyData
	rounding map[string]CurrencyRounding
	resolver FallbackResolver
	logger   *zap.Logger
	cache    sync.Map
}

type CatalogOption func(*Catalog)

func WithCatalogLogger(logger *zap.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog copies data so later changes to it are not observed
func NewCatalog(data *CurrencyData, resolver FallbackResolver, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		locales:  make(map[string]LocaleCurrencyData),
		rounding: make(map[string]CurrencyRounding),
		resolver: resolver,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	snapshot := data.clone()
	for locale, entry := range snapshot.Locales {
		c.locales[normalizeLocale(locale)] = normalizeEntry(entry)
	}
	for code, rounding := range snapshot.Rounding {
		c.rounding[normalizeCode(code)] = rounding
	}

	return c
}

// normalizeEntry upper-cases currency keys so lookups are case insensitive
func normalizeEntry(entry LocaleCurrencyData) LocaleCurrencyData {
	entry.DefaultCurrency = normalizeCode(entry.DefaultCurrency)
	if entry.Symbols != nil {
		symbols := make(map[string]string, len(entry.Symbols))
		for code, symbol := range entry.Symbols {
			symbols[normalizeCode(code)] = symbol
		}
		entry.Symbols = symbols
	}
	if entry.LongNames != nil {
		names := make(map[string]map[string]string, len(entry.LongNames))
		for code, forms := range entry.LongNames {
			normalized := make(map[string]string, len(forms))
			for keyword, name := range forms {
				if category, err := ParsePluralCategory(keyword); err == nil {
					normalized[category.Keyword()] = name
				}
			}
			names[normalizeCode(code)] = normalized
		}
		entry.LongNames = names
	}
	return entry
}

// Symbols returns the locale data for locale. Results are cached.
func (c *Catalog) Symbols(locale string) *LocaleSymbols {
	locale = normalizeLocale(locale)
	if cached, ok := c.cache.Load(locale); ok {
		return cached.(*LocaleSymbols)
	}
	symbols := newLocaleSymbols(c, locale)
	actual, _ := c.cache.LoadOrStore(locale, symbols)
	return actual.(*LocaleSymbols)
}

// PluralInfo returns the plural patterns of locale, walking its fallback
// chain. ok is false when no locale in the chain defines any.
func (c *Catalog) PluralInfo(locale string) (StaticPluralInfo, bool) {
	for _, candidate := range c.resolveCandidates(normalizeLocale(locale)) {
		entry, ok := c.locales[candidate]
		if !ok || len(entry.PluralPatterns) == 0 {
			continue
		}
		info := make(StaticPluralInfo, len(entry.PluralPatterns))
		for keyword, value := range entry.PluralPatterns {
			category, err := ParsePluralCategory(keyword)
			if err != nil {
				c.logger.Debug("skipping unknown plural keyword",
					zap.String("locale", candidate),
					zap.String("keyword", keyword),
				)
				continue
			}
			info[category] = value
		}
		return info, true
	}
	return nil, false
}

// Locales lists the locales present in the data
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// resolveCandidates returns the list of locale candidates to try
func (c *Catalog) resolveCandidates(locale string) []string {
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)
	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}

	if c.resolver != nil {
		for _, fallback := range c.resolver.Resolve(locale) {
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}

	return candidates
}
