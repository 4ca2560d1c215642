package currencyfmt

import (
	"sync"

	"go.uber.org/zap"
)

// Config captures catalog and resolver setup
type Config struct {
	DefaultLocale string
	Resolver      FallbackResolver
	Logger        *zap.Logger
	Parser        Parser

	defaultRounding *RoundingPolicy
	dataPath        string
	dataOverrides   map[string]string
	data            *CurrencyData
	skipEmbedded    bool

	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Parser == nil {
		cfg.Parser = DefaultParser
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when callers pass none
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithDataPath loads a JSON or YAML currency data file over the embedded data
func WithDataPath(path string) Option {
	return func(c *Config) error {
		c.dataPath = path
		return nil
	}
}

// WithDataOverride adds a locale-specific data file
func WithDataOverride(locale, path string) Option {
	return func(c *Config) error {
		if c.dataOverrides == nil {
			c.dataOverrides = make(map[string]string)
		}
		c.dataOverrides[locale] = path
		return nil
	}
}

// WithData uses data as-is instead of loading files
func WithData(data *CurrencyData) Option {
	return func(c *Config) error {
		c.data = data
		return nil
	}
}

// WithoutEmbeddedData skips the data shipped with the package
func WithoutEmbeddedData() Option {
	return func(c *Config) error {
		c.skipEmbedded = true
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithParser(parser Parser) Option {
	return func(c *Config) error {
		c.Parser = parser
		return nil
	}
}

// WithDefaultRounding sets the policy used when no currency context exists
func WithDefaultRounding(policy RoundingPolicy) Option {
	return func(c *Config) error {
		c.defaultRounding = &policy
		return nil
	}
}

// Catalog loads the currency data once and returns the shared snapshot
func (cfg *Config) Catalog() (*Catalog, error) {
	cfg.catalogOnce.Do(func() {
		data := cfg.data
		if data == nil {
			data, cfg.catalogErr = cfg.newDataLoader().Load()
			if cfg.catalogErr != nil {
				return
			}
		}
		cfg.catalog = NewCatalog(data, cfg.Resolver, WithCatalogLogger(cfg.Logger))
	})
	return cfg.catalog, cfg.catalogErr
}

// Symbols returns locale data for locale, or the default locale when empty
func (cfg *Config) Symbols(locale string) (*LocaleSymbols, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	return catalog.Symbols(cfg.locale(locale)), nil
}

// NewResolver builds a resolver for locale wired with the config's parser,
// logger and default rounding.
func (cfg *Config) NewResolver(locale string) (*Resolver, error) {
	symbols, err := cfg.Symbols(locale)
	if err != nil {
		return nil, err
	}

	opts := []ResolverOption{
		WithResolverParser(cfg.Parser),
		WithResolverLogger(cfg.Logger),
	}
	if cfg.defaultRounding != nil {
		opts = append(opts, WithResolverDefaultRounding(*cfg.defaultRounding))
	}
	return NewResolver(symbols, opts...)
}

// PluralInfo returns the locale plural patterns for the legacy override path
func (cfg *Config) PluralInfo(locale string) (StaticPluralInfo, bool, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, false, err
	}
	info, ok := catalog.PluralInfo(cfg.locale(locale))
	return info, ok, nil
}

func (cfg *Config) locale(locale string) string {
	if locale = normalizeLocale(locale); locale != "" {
		return locale
	}
	return cfg.DefaultLocale
}

func (cfg *Config) newDataLoader() *DataLoader {
	loader := NewDataLoader(cfg.dataPath)
	if cfg.skipEmbedded {
		loader.WithoutEmbedded()
	}
	for locale, path := range cfg.dataOverrides {
		loader.AddOverride(locale, path)
	}
	return loader
}
