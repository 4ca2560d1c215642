package currencyfmt

// fakeSymbols is a fixed Symbols used to test the resolvers in isolation.
type fakeSymbols struct {
	locale    string
	symbols   map[string]string
	generic   string
	intl      string
	longNames map[string]map[PluralCategory]string
	fallback  string
	rounding  map[string]map[CurrencyUsage]RoundingInfo
	signs     Signs
}

var _ Symbols = fakeSymbols{}

func newFakeSymbols() fakeSymbols {
	return fakeSymbols{
		locale: "en",
		symbols: map[string]string{
			"USD": "$",
			"EUR": "€",
			"XFC": "F",
		},
		generic:  "$",
		intl:     "USD",
		fallback: "USD",
		longNames: map[string]map[PluralCategory]string{
			"USD": {PluralOne: "US dollar", PluralOther: "US dollars"},
			"EUR": {PluralOne: "euro", PluralOther: "euros"},
			"XFC": {PluralOne: "five franc", PluralFew: "five francy", PluralOther: "five francs"},
		},
		rounding: map[string]map[CurrencyUsage]RoundingInfo{
			"USD": {
				UsageStandard: {FractionDigits: 2, Increment: "0"},
			},
			"XFC": {
				UsageStandard: {FractionDigits: 2, Increment: "0.05"},
				UsageCash:     {FractionDigits: 0, Increment: "0"},
			},
			"BAD": {
				UsageStandard: {FractionDigits: 2, Increment: "five cents"},
			},
		},
	}
}

// withoutCurrency drops the locale fallback currency
func (f fakeSymbols) withoutCurrency() fakeSymbols {
	f.fallback = ""
	return f
}

func (f fakeSymbols) Locale() string { return f.locale }

func (f fakeSymbols) CurrencySymbol(code string) string {
	if symbol, ok := f.symbols[code]; ok {
		return symbol
	}
	return code
}

func (f fakeSymbols) ISOCode(code string) string { return code }

func (f fakeSymbols) GenericSymbol() string { return f.generic }

func (f fakeSymbols) InternationalSymbol() string { return f.intl }

func (f fakeSymbols) LongName(code string, category PluralCategory) string {
	names, ok := f.longNames[code]
	if !ok {
		return code
	}
	if name, ok := names[category]; ok {
		return name
	}
	return names[PluralOther]
}

func (f fakeSymbols) FallbackCurrency() (string, bool) {
	return f.fallback, f.fallback != ""
}

func (f fakeSymbols) Rounding(code string, usage CurrencyUsage) RoundingInfo {
	if byUsage, ok := f.rounding[code]; ok {
		if info, ok := byUsage[usage]; ok {
			return info
		}
		return byUsage[UsageStandard]
	}
	return RoundingInfo{FractionDigits: 2, Increment: "0"}
}

func (f fakeSymbols) Signs() Signs { return f.signs }
