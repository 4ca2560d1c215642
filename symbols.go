package currencyfmt

// Symbols is the locale data consumed by the resolvers, bound to one locale.
// Implementations must be safe for concurrent reads.
type Symbols interface {
	// Locale returns the locale identifier the data is bound to.
	Locale() string
	// CurrencySymbol returns the symbol name of code, e.g. "$" for USD.
	CurrencySymbol(code string) string
	// ISOCode returns the canonical ISO 4217 code for code.
	ISOCode(code string) string
	// GenericSymbol is the locale currency symbol used when no currency is set.
	GenericSymbol() string
	// InternationalSymbol is the locale international currency symbol. It is a
	// separate field from GenericSymbol and the two may disagree.
	InternationalSymbol() string
	// LongName returns the plural long name, e.g. "US dollars". Missing
	// categories fall back to the other form.
	LongName(code string, category PluralCategory) string
	// FallbackCurrency is the locale default currency, if any.
	FallbackCurrency() (string, bool)
	// Rounding returns digits and increment from a single lookup.
	Rounding(code string, usage CurrencyUsage) RoundingInfo
	Signs() Signs
}

// Signs holds the localized characters substituted for pattern sign tokens
type Signs struct {
	Minus    string `json:"minus" yaml:"minus"`
	Plus     string `json:"plus" yaml:"plus"`
	Percent  string `json:"percent" yaml:"percent"`
	PerMille string `json:"per_mille" yaml:"per_mille"`
}

// DefaultSigns are the root locale signs
var DefaultSigns = Signs{
	Minus:    "-",
	Plus:     "+",
	Percent:  "%",
	PerMille: "‰",
}

func (s Signs) withDefaults() Signs {
	return s.fillFrom(DefaultSigns)
}

// fillFrom sets the empty fields of s from other
func (s Signs) fillFrom(other Signs) Signs {
	if s.Minus == "" {
		s.Minus = other.Minus
	}
	if s.Plus == "" {
		s.Plus = other.Plus
	}
	if s.Percent == "" {
		s.Percent = other.Percent
	}
	if s.PerMille == "" {
		s.PerMille = other.PerMille
	}
	return s
}

// RoundingInfo is the canonical rounding data of a currency for one usage.
// Increment is a decimal string; "0" or empty means no explicit increment.
type RoundingInfo struct {
	FractionDigits int    `json:"digits" yaml:"digits"`
	Increment      string `json:"increment" yaml:"increment"`
}
