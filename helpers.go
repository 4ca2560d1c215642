package currencyfmt

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-i18n-currency/pattern"
)

// DefaultHelperPattern is used by currency_format when HelperConfig has none
const DefaultHelperPattern = "¤#,##0.00"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the field or map key holding the locale in template data.
	LocaleKey string
	Pattern   string
	Usage     CurrencyUsage
}

// TemplateHelpers returns text/template functions backed by cfg. Every
// helper takes the template data first to find the locale.
func TemplateHelpers(cfg *Config, helperCfg HelperConfig) (map[string]any, error) {
	source := helperCfg.Pattern
	if source == "" {
		source = DefaultHelperPattern
	}
	frag, err := cfg.Parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPattern, err)
	}

	base := CurrencyConfig{Usage: helperCfg.Usage, Affixes: frag}
	resolverFor := func(data any) (*Resolver, error) {
		return cfg.NewResolver(extractLocale(data, helperCfg.LocaleKey, cfg.DefaultLocale))
	}

	return map[string]any{
		"currency_symbol": func(data any, code string) (string, error) {
			r, err := resolverFor(data)
			if err != nil {
				return "", err
			}
			return r.ResolveSymbol(base.WithCurrency(code)), nil
		},

		"currency_code": func(data any, code string) (string, error) {
			r, err := resolverFor(data)
			if err != nil {
				return "", err
			}
			return r.ResolveISOCode(base.WithCurrency(code)), nil
		},

		"currency_name": func(data any, code string, amount any) (string, error) {
			r, err := resolverFor(data)
			if err != nil {
				return "", err
			}
			value, err := toDecimal(amount)
			if err != nil {
				return "", err
			}
			currencyCfg := base.WithCurrency(code)
			digits := r.ResolveRounding(currencyCfg).Format(value.Abs())
			category := SelectPluralCategory(r.Symbols().Locale(), digits)
			return r.ResolveLongName(currencyCfg, category), nil
		},

		"currency_round": func(data any, amount any, code string) (string, error) {
			r, err := resolverFor(data)
			if err != nil {
				return "", err
			}
			value, err := toDecimal(amount)
			if err != nil {
				return "", err
			}
			return r.ResolveRounding(base.WithCurrency(code)).Format(value), nil
		},

		"currency_format": func(data any, amount any, code string) (string, error) {
			r, err := resolverFor(data)
			if err != nil {
				return "", err
			}
			value, err := toDecimal(amount)
			if err != nil {
				return "", err
			}
			return r.FormatAmount(base.WithCurrency(code), value)
		},

		"currency_long_format": func(data any, amount any, code string) (string, error) {
			r, err := resolverFor(data)
			if err != nil {
				return "", err
			}
			value, err := toDecimal(amount)
			if err != nil {
				return "", err
			}
			currencyCfg := base.WithCurrency(code).WithAffixes(pattern.Fragment{PositiveSuffix: " ¤¤¤"})
			if info, ok, err := cfg.PluralInfo(r.Symbols().Locale()); err == nil && ok {
				currencyCfg = currencyCfg.WithPluralInfo(info)
			}
			return r.FormatAmount(currencyCfg, value)
		},
	}, nil
}

func toDecimal(amount any) (decimal.Decimal, error) {
	switch v := amount.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, nil
		}
		return *v, nil
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported amount type %T", amount)
	}
}

// extractLocale reads the locale from a string, a map entry or a struct field
// named localeKey, returning fallback when none is found.
func extractLocale(data any, localeKey, fallback string) string {
	if data == nil {
		return fallback
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fallback
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return fallback
}
