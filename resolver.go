package currencyfmt

import (
	"bytes"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-i18n-currency/pattern"
)

// Parser turns a decimal pattern into affix patterns
type Parser interface {
	Parse(input string) (pattern.Fragment, error)
}

// ParserFunc adapts a bare function to Parser
type ParserFunc func(input string) (pattern.Fragment, error)

// Parse implements Parser for ParserFunc
func (fn ParserFunc) Parse(input string) (pattern.Fragment, error) {
	return fn(input)
}

// DefaultParser parses with pattern.Parse
var DefaultParser Parser = ParserFunc(pattern.Parse)

// Resolver builds affix tables and rounding policies for one locale.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	symbols         Symbols
	parser          Parser
	logger          *zap.Logger
	defaultRounding RoundingPolicy
	builders        *sync.Pool
}

type resolverConfig struct {
	parser          Parser
	logger          *zap.Logger
	defaultRounding *RoundingPolicy
}

type ResolverOption func(*resolverConfig)

func WithResolverParser(parser Parser) ResolverOption {
	return func(rc *resolverConfig) {
		rc.parser = parser
	}
}

func WithResolverLogger(logger *zap.Logger) ResolverOption {
	return func(rc *resolverConfig) {
		rc.logger = logger
	}
}

// WithResolverDefaultRounding sets the policy returned when no currency is
// available for a rounding lookup.
func WithResolverDefaultRounding(policy RoundingPolicy) ResolverOption {
	return func(rc *resolverConfig) {
		rc.defaultRounding = &policy
	}
}

var errNilSymbols = errors.New("currencyfmt: resolver requires symbols")

// NewResolver binds a resolver to the given locale data
func NewResolver(symbols Symbols, opts ...ResolverOption) (*Resolver, error) {
	if symbols == nil {
		return nil, errNilSymbols
	}

	cfg := resolverConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	r := &Resolver{
		symbols:         symbols,
		parser:          cfg.parser,
		logger:          cfg.logger,
		defaultRounding: DefaultRoundingPolicy,
		builders: &sync.Pool{
			New: func() any { return new(bytes.Buffer) },
		},
	}
	if r.parser == nil {
		r.parser = DefaultParser
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if cfg.defaultRounding != nil {
		r.defaultRounding = *cfg.defaultRounding
	}
	r.logger = r.logger.With(zap.String("locale", symbols.Locale()))

	return r, nil
}

// Symbols returns the locale data the resolver is bound to
func (r *Resolver) Symbols() Symbols {
	return r.symbols
}

func (r *Resolver) ResolveSymbol(cfg CurrencyConfig) string {
	return ResolveSymbol(r.symbols, cfg)
}

func (r *Resolver) ResolveISOCode(cfg CurrencyConfig) string {
	return ResolveISOCode(r.symbols, cfg)
}

func (r *Resolver) ResolveLongName(cfg CurrencyConfig, category PluralCategory) string {
	return ResolveLongName(r.symbols, cfg, category)
}

func (r *Resolver) ResolveEffective(cfg CurrencyConfig) string {
	return ResolveEffective(r.symbols, cfg)
}
