package currencyfmt

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageData struct {
	Locale string
	Amount decimal.Decimal
}

func renderHelper(t *testing.T, helpers map[string]any, text string, data any) string {
	t.Helper()
	tmpl, err := template.New("test").Funcs(template.FuncMap(helpers)).Parse(text)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, data))
	return buf.String()
}

func TestTemplateHelpers(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	helpers, err := TemplateHelpers(cfg, HelperConfig{})
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		data any
		want string
	}{
		{
			name: "symbol",
			text: `{{currency_symbol . "PLN"}}`,
			data: map[string]any{"Locale": "pl"},
			want: "zł",
		},
		{
			name: "code",
			text: `{{currency_code . "eur"}}`,
			data: "en",
			want: "EUR",
		},
		{
			name: "name_uses_visible_digits",
			text: `{{currency_name . "USD" 1}}`,
			data: pageData{Locale: "en-US"},
			want: "US dollars",
		},
		{
			name: "name_whole_currency",
			text: `{{currency_name . "JPY" 1}}`,
			data: pageData{Locale: "en-US"},
			want: "Japanese yen",
		},
		{
			name: "round_cash",
			text: `{{currency_round . "1.23" "CHF"}}`,
			data: pageData{Locale: "de-CH"},
			want: "1.23",
		},
		{
			name: "format_struct_field",
			text: `{{currency_format . .Amount "USD"}}`,
			data: &pageData{Locale: "en-US", Amount: decimal.RequireFromString("-12.5")},
			want: "-$12.50",
		},
		{
			name: "format_default_locale",
			text: `{{currency_format . "3" "EUR"}}`,
			data: nil,
			want: "€3.00",
		},
		{
			name: "long_format_plural",
			text: `{{currency_long_format . "5" "PLN"}}`,
			data: map[string]string{"Locale": "pl"},
			want: "5.00 złotego polskiego",
		},
		{
			name: "long_format_one",
			text: `{{currency_long_format . 1 "JPY"}}`,
			data: "en",
			want: "1 Japanese yen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderHelper(t, helpers, tt.text, tt.data))
		})
	}
}

func TestTemplateHelpersUsageAndKey(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	helpers, err := TemplateHelpers(cfg, HelperConfig{
		LocaleKey: "Lang",
		Pattern:   "#,##0.00 ¤¤",
		Usage:     UsageCash,
	})
	require.NoError(t, err)

	got := renderHelper(t, helpers, `{{currency_format . "1.23" "CHF"}}`, map[string]any{"Lang": "de-CH"})
	assert.Equal(t, "1.25 CHF", got)
}

func TestTemplateHelpersErrors(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	_, err = TemplateHelpers(cfg, HelperConfig{Pattern: "¤'#"})
	assert.ErrorIs(t, err, ErrMalformedPattern)

	helpers, err := TemplateHelpers(cfg, HelperConfig{})
	require.NoError(t, err)

	tmpl, err := template.New("bad").Funcs(template.FuncMap(helpers)).Parse(`{{currency_format . true "USD"}}`)
	require.NoError(t, err)
	assert.Error(t, tmpl.Execute(&bytes.Buffer{}, "en"))
}

func TestToDecimal(t *testing.T) {
	ten := decimal.NewFromInt(10)
	inputs := []any{ten, &ten, "10", 10.0, float32(10), 10, int64(10), int32(10)}
	for _, input := range inputs {
		got, err := toDecimal(input)
		require.NoError(t, err, "%T", input)
		assert.True(t, got.Equal(ten), "%T", input)
	}

	var nilDecimal *decimal.Decimal
	got, err := toDecimal(nilDecimal)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = toDecimal("ten")
	assert.Error(t, err)
	_, err = toDecimal(struct{}{})
	assert.Error(t, err)
}

func TestExtractLocale(t *testing.T) {
	assert.Equal(t, "fb", extractLocale(nil, "", "fb"))
	assert.Equal(t, "pl", extractLocale("pl", "", "fb"))
	assert.Equal(t, "pl", extractLocale(map[string]any{"Locale": "pl"}, "", "fb"))
	assert.Equal(t, "fb", extractLocale(map[string]any{"Locale": 3}, "", "fb"))
	assert.Equal(t, "de", extractLocale(map[string]string{"Lang": "de"}, "Lang", "fb"))
	assert.Equal(t, "es", extractLocale(&pageData{Locale: "es"}, "", "fb"))
	assert.Equal(t, "fb", extractLocale((*pageData)(nil), "", "fb"))
	assert.Equal(t, "fb", extractLocale(42, "", "fb"))
}
