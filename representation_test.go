package currencyfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSymbol(t *testing.T) {
	symbols := newFakeSymbols()

	assert.Equal(t, "€", ResolveSymbol(symbols, CurrencyConfig{Currency: "EUR"}))
	assert.Equal(t, "$", ResolveSymbol(symbols, CurrencyConfig{}))
	// unknown currencies are the provider's concern
	assert.Equal(t, "GBP", ResolveSymbol(symbols, CurrencyConfig{Currency: "GBP"}))
}

func TestResolveSymbolWithoutCurrencyContext(t *testing.T) {
	symbols := newFakeSymbols().withoutCurrency()
	symbols.generic = "¤"

	assert.Equal(t, "¤", ResolveSymbol(symbols, CurrencyConfig{}))
}

func TestResolveISOCode(t *testing.T) {
	symbols := newFakeSymbols()

	assert.Equal(t, "EUR", ResolveISOCode(symbols, CurrencyConfig{Currency: "EUR"}))
	assert.Equal(t, "USD", ResolveISOCode(symbols, CurrencyConfig{}))
}

// The international symbol is its own locale field. A locale may override it
// without touching the generic symbol, so the two are not expected to agree.
func TestResolveISOCodeIndependentOfGenericSymbol(t *testing.T) {
	symbols := newFakeSymbols()
	symbols.generic = "$"
	symbols.intl = "XTS"

	cfg := CurrencyConfig{}
	symbol := ResolveSymbol(symbols, cfg)
	code := ResolveISOCode(symbols, cfg)

	assert.Equal(t, "$", symbol)
	assert.Equal(t, "XTS", code)
	assert.NotEqual(t, "USD", code, "ISO code must not be inferred from the generic symbol")
	assert.Equal(t, "$", symbols.CurrencySymbol("USD"))
	assert.NotEqual(t, symbols.CurrencySymbol(code), symbol)

	// the fallback currency does not leak into either field
	fallback, ok := symbols.FallbackCurrency()
	assert.True(t, ok)
	assert.Equal(t, "USD", fallback)
	assert.NotEqual(t, fallback, code)
}

func TestResolveLongName(t *testing.T) {
	symbols := newFakeSymbols()

	tests := []struct {
		name     string
		cfg      CurrencyConfig
		category PluralCategory
		want     string
	}{
		{name: "explicit_one", cfg: CurrencyConfig{Currency: "EUR"}, category: PluralOne, want: "euro"},
		{name: "explicit_other", cfg: CurrencyConfig{Currency: "EUR"}, category: PluralOther, want: "euros"},
		{name: "explicit_falls_back_to_other", cfg: CurrencyConfig{Currency: "EUR"}, category: PluralFew, want: "euros"},
		{name: "locale_fallback_currency", cfg: CurrencyConfig{}, category: PluralOne, want: "US dollar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLongName(symbols, tt.cfg, tt.category))
		})
	}
}

func TestResolveLongNameDegradesToStyledSymbol(t *testing.T) {
	symbols := newFakeSymbols().withoutCurrency()
	symbols.generic = "¤"
	symbols.intl = "XXX"

	for _, category := range PluralCategories {
		assert.Equal(t, "¤", ResolveLongName(symbols, CurrencyConfig{}, category))
	}

	cfg := CurrencyConfig{Style: StyleISOCode}
	for _, category := range PluralCategories {
		assert.Equal(t, "XXX", ResolveLongName(symbols, cfg, category))
	}
}

func TestResolveEffective(t *testing.T) {
	symbols := newFakeSymbols()

	assert.Equal(t, "€", ResolveEffective(symbols, CurrencyConfig{Currency: "EUR"}))
	assert.Equal(t, "EUR", ResolveEffective(symbols, CurrencyConfig{Currency: "EUR", Style: StyleISOCode}))
	assert.Equal(t, "USD", ResolveEffective(symbols, CurrencyConfig{Style: StyleISOCode}))
}

func TestRepresentationForRun(t *testing.T) {
	tests := []struct {
		count int
		style CurrencyStyle
		want  Representation
	}{
		{count: 1, style: StyleSymbol, want: RepresentationSymbol},
		{count: 1, style: StyleISOCode, want: RepresentationISOCode},
		{count: 2, style: StyleSymbol, want: RepresentationISOCode},
		{count: 2, style: StyleISOCode, want: RepresentationISOCode},
		{count: 3, style: StyleSymbol, want: RepresentationLongName},
		{count: 3, style: StyleISOCode, want: RepresentationLongName},
	}

	for _, tt := range tests {
		got := representationForRun(tt.count, tt.style)
		assert.Equal(t, tt.want, got, "count=%d style=%s", tt.count, tt.style)
	}
}
