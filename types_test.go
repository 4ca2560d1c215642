package currencyfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-i18n-currency/pattern"
)

func TestParsePluralCategory(t *testing.T) {
	for _, category := range PluralCategories {
		got, err := ParsePluralCategory(" " + string(category) + " ")
		require.NoError(t, err)
		assert.Equal(t, category, got)
		assert.True(t, got.Valid())
	}

	got, err := ParsePluralCategory("FEW")
	require.NoError(t, err)
	assert.Equal(t, PluralFew, got)

	_, err = ParsePluralCategory("several")
	assert.Error(t, err)
	assert.False(t, PluralCategory("several").Valid())
}

func TestParseCurrencyStyleAndUsage(t *testing.T) {
	style, err := ParseCurrencyStyle("ISO")
	require.NoError(t, err)
	assert.Equal(t, StyleISOCode, style)

	style, err = ParseCurrencyStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleSymbol, style)

	_, err = ParseCurrencyStyle("name")
	assert.Error(t, err)

	usage, err := ParseCurrencyUsage("cash")
	require.NoError(t, err)
	assert.Equal(t, UsageCash, usage)
	assert.Equal(t, "cash", usage.String())

	_, err = ParseCurrencyUsage("coins")
	assert.Error(t, err)
}

func TestStaticPluralInfo(t *testing.T) {
	info := StaticPluralInfo{PluralOne: "one", PluralOther: "other"}
	assert.Equal(t, "one", info.PluralPattern(PluralOne))
	assert.Equal(t, "other", info.PluralPattern(PluralFew))
	assert.Equal(t, "", StaticPluralInfo(nil).PluralPattern(PluralOne))

	clone := info.Clone()
	clone[PluralOne] = "changed"
	assert.Equal(t, "one", info[PluralOne])
	assert.Nil(t, StaticPluralInfo(nil).Clone())
}

func TestNewCurrencyConfig(t *testing.T) {
	cfg, err := NewCurrencyConfig(" usd ", "¤#,##0.00;(¤#,##0.00)")
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Currency)
	assert.True(t, cfg.Affixes.HasNegative)
	assert.True(t, UsesCurrency(cfg))

	cfg, err = NewCurrencyConfig("", "")
	require.NoError(t, err)
	assert.False(t, UsesCurrency(cfg))
	assert.True(t, UsesCurrency(cfg.WithPluralInfo(StaticPluralInfo{PluralOther: "#"})))
	assert.False(t, UsesCurrency(CurrencyConfig{Affixes: pattern.Fragment{PositivePrefix: "'¤'"}}))

	_, err = NewCurrencyConfig("USD", "#,##0.00 ¤¤¤¤")
	assert.ErrorIs(t, err, ErrMalformedPattern)
	var syntaxErr *pattern.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestCurrencyConfigWithIsCopy(t *testing.T) {
	base := CurrencyConfig{Currency: "USD"}
	changed := base.WithCurrency("eur").WithStyle(StyleISOCode).WithUsage(UsageCash)

	assert.Equal(t, "USD", base.Currency)
	assert.Equal(t, StyleSymbol, base.Style)
	assert.Equal(t, "EUR", changed.Currency)
	assert.Equal(t, StyleISOCode, changed.Style)
	assert.Equal(t, UsageCash, changed.Usage)
}

func TestStaticFallbackResolver(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("pt_BR", "pt-PT", "pt_BR", "", "pt-PT", "es")

	chain := resolver.Resolve("pt-BR")
	assert.Equal(t, []string{"pt-PT", "es"}, chain)

	chain[0] = "mutated"
	assert.Equal(t, []string{"pt-PT", "es"}, resolver.Resolve("pt_BR"))
	assert.Nil(t, resolver.Resolve("fr"))

	var nilResolver *StaticFallbackResolver
	assert.Nil(t, nilResolver.Resolve("en"))
}
