package currencyfmt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RoundingKind int

const (
	// RoundingMagnitude rounds to the fraction digit limit only.
	RoundingMagnitude RoundingKind = iota
	// RoundingIncrement rounds to a multiple of Increment.
	RoundingIncrement
)

func (k RoundingKind) String() string {
	if k == RoundingIncrement {
		return "increment"
	}
	return "magnitude"
}

// RoundingPolicy is consumed by the numeric rounding stage. Currency
// policies always have MinFractionDigits == MaxFractionDigits.
type RoundingPolicy struct {
	Kind              RoundingKind
	MinFractionDigits int
	MaxFractionDigits int
	// Increment is zero for magnitude policies.
	Increment decimal.Decimal
}

// DefaultRoundingPolicy is used when a pattern asks for a currency but no
// currency context exists.
var DefaultRoundingPolicy = RoundingPolicy{
	Kind:              RoundingMagnitude,
	MinFractionDigits: 0,
	MaxFractionDigits: 3,
}

// Round applies the policy using half-even rounding.
func (p RoundingPolicy) Round(value decimal.Decimal) decimal.Decimal {
	if p.Kind == RoundingIncrement && p.Increment.IsPositive() {
		steps := value.Div(p.Increment).RoundBank(0)
		value = steps.Mul(p.Increment)
	}
	return value.RoundBank(int32(p.MaxFractionDigits))
}

// Format rounds value and renders it with at least MinFractionDigits digits.
func (p RoundingPolicy) Format(value decimal.Decimal) string {
	rounded := p.Round(value)
	if p.MinFractionDigits == p.MaxFractionDigits {
		return rounded.StringFixedBank(int32(p.MinFractionDigits))
	}
	text := rounded.String()
	if digits := fractionDigits(text); digits < p.MinFractionDigits {
		return rounded.StringFixedBank(int32(p.MinFractionDigits))
	}
	return text
}

func (p RoundingPolicy) String() string {
	if p.Kind == RoundingIncrement {
		return fmt.Sprintf("increment(%s, %d digits)", p.Increment.String(), p.MaxFractionDigits)
	}
	if p.MinFractionDigits == p.MaxFractionDigits {
		return fmt.Sprintf("magnitude(%d digits)", p.MaxFractionDigits)
	}
	return fmt.Sprintf("magnitude(%d..%d digits)", p.MinFractionDigits, p.MaxFractionDigits)
}

func fractionDigits(text string) int {
	idx := strings.IndexByte(text, '.')
	if idx < 0 {
		return 0
	}
	return len(text) - idx - 1
}

// ResolveRounding returns the rounding policy of the configured currency, or
// of the locale fallback currency. Without either it returns the default policy.
func (r *Resolver) ResolveRounding(cfg CurrencyConfig) RoundingPolicy {
	code, ok := activeCurrency(r.symbols, cfg)
	if !ok {
		r.logger.Debug("no currency context, using default rounding",
			zap.Stringer("usage", cfg.Usage),
		)
		return r.defaultRounding
	}

	info := r.symbols.Rounding(code, cfg.Usage)
	digits := info.FractionDigits
	if digits < 0 {
		digits = 0
	}

	increment, err := parseIncrement(info.Increment)
	if err != nil {
		r.logger.Debug("invalid rounding increment, using magnitude rounding",
			zap.String("currency", code),
			zap.String("increment", info.Increment),
			zap.Error(err),
		)
		increment = decimal.Zero
	}

	if increment.IsPositive() {
		return RoundingPolicy{
			Kind:              RoundingIncrement,
			MinFractionDigits: digits,
			MaxFractionDigits: digits,
			Increment:         increment,
		}
	}

	return RoundingPolicy{
		Kind:              RoundingMagnitude,
		MinFractionDigits: digits,
		MaxFractionDigits: digits,
	}
}

func parseIncrement(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
