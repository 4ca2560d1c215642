package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	currencyfmt "github.com/goliatone/go-i18n-currency"
)

// envConfig holds defaults read from the environment; flags take precedence.
type envConfig struct {
	Locale   string `env:"CURRENCY_LOCALE" envDefault:"en"`
	DataPath string `env:"CURRENCY_DATA_PATH"`
	Pattern  string `env:"CURRENCY_PATTERN" envDefault:"¤#,##0.00"`
}

type cliConfig struct {
	locale    string
	currency  string
	pattern   string
	style     currencyfmt.CurrencyStyle
	usage     currencyfmt.CurrencyUsage
	dataPath  string
	plural    bool
	verbose   bool
	amounts   []decimal.Decimal
	fallbacks fallbackFlag
}

type fallbackFlag struct {
	items []string
}

func (f *fallbackFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *fallbackFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		reportError(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "currency-affixes: %v\n", err)
	os.Exit(1)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

func parseFlags(args []string) (cliConfig, error) {
	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return cliConfig{}, fmt.Errorf("parse env: %w", err)
	}

	var cfg cliConfig
	var style, usage, amounts string

	fs := flag.NewFlagSet("currency-affixes", flag.ContinueOnError)
	fs.StringVar(&cfg.locale, "locale", defaults.Locale, "locale to resolve (e.g. en-US)")
	fs.StringVar(&cfg.currency, "currency", "", "ISO 4217 currency code; empty uses the locale default")
	fs.StringVar(&cfg.pattern, "pattern", defaults.Pattern, "decimal pattern with currency placeholders")
	fs.StringVar(&style, "style", "symbol", "placeholder style: symbol or iso")
	fs.StringVar(&usage, "usage", "standard", "rounding usage: standard or cash")
	fs.StringVar(&cfg.dataPath, "data", defaults.DataPath, "JSON or YAML currency data file merged over the embedded data")
	fs.BoolVar(&cfg.plural, "plural", false, "use the locale plural patterns (long names)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log resolution fallbacks")
	fs.StringVar(&amounts, "amounts", "", "comma separated amounts to format")
	fs.Var(&cfg.fallbacks, "fallback", "fallback locales for -locale, comma separated")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	if strings.TrimSpace(cfg.locale) == "" {
		return cliConfig{}, errors.New("missing locale (set -locale or CURRENCY_LOCALE)")
	}

	var err error
	if cfg.style, err = currencyfmt.ParseCurrencyStyle(style); err != nil {
		return cliConfig{}, err
	}
	if cfg.usage, err = currencyfmt.ParseCurrencyUsage(usage); err != nil {
		return cliConfig{}, err
	}

	for _, raw := range strings.Split(amounts, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return cliConfig{}, fmt.Errorf("invalid amount %q: %w", raw, err)
		}
		cfg.amounts = append(cfg.amounts, value)
	}

	return cfg, nil
}

func run(cfg cliConfig, logger *zap.Logger, out io.Writer) error {
	opts := []currencyfmt.Option{
		currencyfmt.WithDefaultLocale(cfg.locale),
		currencyfmt.WithLogger(logger),
	}
	if cfg.dataPath != "" {
		opts = append(opts, currencyfmt.WithDataPath(cfg.dataPath))
	}
	if len(cfg.fallbacks.items) > 0 {
		opts = append(opts, currencyfmt.WithFallback(cfg.locale, cfg.fallbacks.items...))
	}

	setup, err := currencyfmt.NewConfig(opts...)
	if err != nil {
		return err
	}

	resolver, err := setup.NewResolver(cfg.locale)
	if err != nil {
		return err
	}

	currencyCfg, err := currencyfmt.NewCurrencyConfig(cfg.currency, cfg.pattern)
	if err != nil {
		return err
	}
	currencyCfg = currencyCfg.WithStyle(cfg.style).WithUsage(cfg.usage)

	if cfg.plural {
		info, ok, err := setup.PluralInfo(cfg.locale)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no plural patterns for locale %q", cfg.locale)
		}
		currencyCfg = currencyCfg.WithPluralInfo(info)
	}

	table, err := resolver.BuildPluralAffixes(currencyCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "locale\t%s\n", resolver.Symbols().Locale())
	fmt.Fprintf(w, "symbol\t%s\n", resolver.ResolveSymbol(currencyCfg))
	fmt.Fprintf(w, "iso code\t%s\n", resolver.ResolveISOCode(currencyCfg))
	fmt.Fprintf(w, "rounding\t%s\n", resolver.ResolveRounding(currencyCfg))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "category\tpositive\tnegative")
	for _, category := range currencyfmt.PluralCategories {
		pair := table.Get(category)
		fmt.Fprintf(w, "%s\t%q\t%q\n", category, pair.Positive.Wrap("#"), pair.Negative.Wrap("#"))
	}

	if len(cfg.amounts) > 0 {
		fmt.Fprintln(w)
		for _, amount := range cfg.amounts {
			formatted, err := resolver.FormatAmount(currencyCfg, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\n", amount.String(), formatted)
		}
	}

	return w.Flush()
}
