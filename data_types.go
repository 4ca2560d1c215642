package currencyfmt

// CurrencyData is the file model for currency locale data
type CurrencyData struct {
	Locales  map[string]LocaleCurrencyData `json:"locales" yaml:"locales"`
	Rounding map[string]CurrencyRounding   `json:"rounding" yaml:"rounding"`
}

// LocaleCurrencyData holds the currency fields of a single locale
type LocaleCurrencyData struct {
	DefaultCurrency     string                       `json:"default_currency" yaml:"default_currency"`
	CurrencySymbol      string                       `json:"currency_symbol" yaml:"currency_symbol"`
	InternationalSymbol string                       `json:"international_symbol" yaml:"international_symbol"`
	Symbols             map[string]string            `json:"symbols" yaml:"symbols"`
	LongNames           map[string]map[string]string `json:"long_names" yaml:"long_names"`
	PluralPatterns      map[string]string            `json:"plural_patterns" yaml:"plural_patterns"`
	Signs               Signs                        `json:"signs" yaml:"signs"`
}

// CurrencyRounding holds the rounding data of one currency per usage
type CurrencyRounding struct {
	Standard RoundingInfo  `json:"standard" yaml:"standard"`
	Cash     *RoundingInfo `json:"cash,omitempty" yaml:"cash,omitempty"`
}

// For returns the rounding for usage. Cash falls back to standard when absent.
func (r CurrencyRounding) For(usage CurrencyUsage) RoundingInfo {
	if usage == UsageCash && r.Cash != nil {
		return *r.Cash
	}
	return r.Standard
}

func (d LocaleCurrencyData) clone() LocaleCurrencyData {
	out := d
	out.Symbols = cloneStrings(d.Symbols)
	out.PluralPatterns = cloneStrings(d.PluralPatterns)
	if d.LongNames != nil {
		out.LongNames = make(map[string]map[string]string, len(d.LongNames))
		for code, names := range d.LongNames {
			out.LongNames[code] = cloneStrings(names)
		}
	}
	return out
}

// merge overlays src onto d, field by field
func (d LocaleCurrencyData) merge(src LocaleCurrencyData) LocaleCurrencyData {
	out := d.clone()
	if src.DefaultCurrency != "" {
		out.DefaultCurrency = src.DefaultCurrency
	}
	if src.CurrencySymbol != "" {
		out.CurrencySymbol = src.CurrencySymbol
	}
	if src.InternationalSymbol != "" {
		out.InternationalSymbol = src.InternationalSymbol
	}
	out.Symbols = mergeStrings(out.Symbols, src.Symbols)
	out.PluralPatterns = mergeStrings(out.PluralPatterns, src.PluralPatterns)
	for code, names := range src.LongNames {
		if out.LongNames == nil {
			out.LongNames = make(map[string]map[string]string)
		}
		out.LongNames[code] = mergeStrings(out.LongNames[code], names)
	}
	out.Signs = src.Signs.fillFrom(out.Signs)
	return out
}

func (d *CurrencyData) clone() *CurrencyData {
	out := &CurrencyData{}
	if d == nil {
		return out
	}
	if d.Locales != nil {
		out.Locales = make(map[string]LocaleCurrencyData, len(d.Locales))
		for locale, data := range d.Locales {
			out.Locales[locale] = data.clone()
		}
	}
	if d.Rounding != nil {
		out.Rounding = make(map[string]CurrencyRounding, len(d.Rounding))
		for code, rounding := range d.Rounding {
			if rounding.Cash != nil {
				cash := *rounding.Cash
				rounding.Cash = &cash
			}
			out.Rounding[code] = rounding
		}
	}
	return out
}

// mergeCurrencyData merges source into dest (source takes precedence)
func mergeCurrencyData(dest, source *CurrencyData) {
	if source == nil {
		return
	}
	if source.Locales != nil {
		if dest.Locales == nil {
			dest.Locales = make(map[string]LocaleCurrencyData)
		}
		for locale, data := range source.Locales {
			locale = normalizeLocale(locale)
			dest.Locales[locale] = dest.Locales[locale].merge(data)
		}
	}
	if source.Rounding != nil {
		if dest.Rounding == nil {
			dest.Rounding = make(map[string]CurrencyRounding)
		}
		for code, rounding := range source.Rounding {
			dest.Rounding[normalizeCode(code)] = rounding
		}
	}
}

func cloneStrings(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func mergeStrings(dest, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dest
	}
	if dest == nil {
		dest = make(map[string]string, len(src))
	}
	for k, v := range src {
		dest[k] = v
	}
	return dest
}
