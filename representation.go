package currencyfmt

// ResolveSymbol returns the symbol of the configured currency, or the locale
// generic currency symbol when none is set.
func ResolveSymbol(symbols Symbols, cfg CurrencyConfig) string {
	if cfg.Currency == "" {
		return symbols.GenericSymbol()
	}
	return symbols.CurrencySymbol(cfg.Currency)
}

// ResolveISOCode returns the ISO code of the configured currency. Without a
// currency it reads the locale international symbol, which is not derived
// from the generic symbol and can disagree with it.
func ResolveISOCode(symbols Symbols, cfg CurrencyConfig) string {
	if cfg.Currency == "" {
		return symbols.InternationalSymbol()
	}
	return symbols.ISOCode(cfg.Currency)
}

// ResolveLongName returns the plural long name of the configured or locale
// fallback currency. When neither exists it degrades to the short form the
// style selects, so ISO code style yields the international symbol.
func ResolveLongName(symbols Symbols, cfg CurrencyConfig, category PluralCategory) string {
	code, ok := activeCurrency(symbols, cfg)
	if !ok {
		return ResolveEffective(symbols, cfg)
	}
	return symbols.LongName(code, category)
}

// ResolveEffective returns the text for a single placeholder under the
// configured style.
func ResolveEffective(symbols Symbols, cfg CurrencyConfig) string {
	if cfg.Style == StyleISOCode {
		return ResolveISOCode(symbols, cfg)
	}
	return ResolveSymbol(symbols, cfg)
}

func activeCurrency(symbols Symbols, cfg CurrencyConfig) (string, bool) {
	if cfg.Currency != "" {
		return cfg.Currency, true
	}
	code, ok := symbols.FallbackCurrency()
	if !ok || code == "" {
		return "", false
	}
	return code, true
}

// representations holds the resolved text of every form for one category.
type representations struct {
	symbol   string
	isoCode  string
	longName string
	style    CurrencyStyle
}

func resolveRepresentations(symbols Symbols, cfg CurrencyConfig, category PluralCategory) representations {
	return representations{
		symbol:   ResolveSymbol(symbols, cfg),
		isoCode:  ResolveISOCode(symbols, cfg),
		longName: ResolveLongName(symbols, cfg, category),
		style:    cfg.Style,
	}
}

func (r representations) text(rep Representation) string {
	switch rep {
	case RepresentationISOCode:
		return r.isoCode
	case RepresentationLongName:
		return r.longName
	default:
		return r.symbol
	}
}

func (r representations) forRun(count int) string {
	return r.text(representationForRun(count, r.style))
}
