package currencyfmt

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-i18n-currency/pattern"
)

// Affix is the literal text placed around the formatted digits
type Affix struct {
	Prefix string
	Suffix string
}

// Wrap surrounds digits with the affix
func (a Affix) Wrap(digits string) string {
	return a.Prefix + digits + a.Suffix
}

// AffixPair holds the resolved affixes for both signs. No placeholders remain.
type AffixPair struct {
	Positive Affix
	Negative Affix
}

// PluralAffixTable maps every plural category to its affix pair
type PluralAffixTable struct {
	pairs map[PluralCategory]AffixPair
}

// Get returns the pair for category, using other for unknown categories.
func (t PluralAffixTable) Get(category PluralCategory) AffixPair {
	if pair, ok := t.pairs[category]; ok {
		return pair
	}
	return t.pairs[PluralOther]
}

// Select picks the affix for the plural category and sign of a number
// about to be formatted.
func (t PluralAffixTable) Select(category PluralCategory, negative bool) Affix {
	pair := t.Get(category)
	if negative {
		return pair.Negative
	}
	return pair.Positive
}

func (t PluralAffixTable) Len() int {
	return len(t.pairs)
}

// Pairs returns a copy of the table keyed by category
func (t PluralAffixTable) Pairs() map[PluralCategory]AffixPair {
	out := make(map[PluralCategory]AffixPair, len(t.pairs))
	for category, pair := range t.pairs {
		out[category] = pair
	}
	return out
}

// BuildPluralAffixes resolves the affixes of every plural category. When the
// config carries a PluralInfo, each category's pattern is parsed and used in
// place of cfg.Affixes; a parse failure is returned as ErrMalformedPattern.
func (r *Resolver) BuildPluralAffixes(cfg CurrencyConfig) (PluralAffixTable, error) {
	table := PluralAffixTable{pairs: make(map[PluralCategory]AffixPair, len(PluralCategories))}
	signs := r.symbols.Signs().withDefaults()

	for _, category := range PluralCategories {
		reps := resolveRepresentations(r.symbols, cfg, category)

		affixes := cfg.Affixes
		if cfg.PluralInfo != nil {
			source := cfg.PluralInfo.PluralPattern(category)
			frag, err := r.parser.Parse(source)
			if err != nil {
				r.logger.Warn("malformed plural currency pattern",
					zap.String("category", category.Keyword()),
					zap.String("pattern", source),
					zap.Error(err),
				)
				return PluralAffixTable{}, fmt.Errorf("%w: category %s: %w", ErrMalformedPattern, category, err)
			}
			affixes = cfg.WithAffixes(frag).Affixes
		}

		table.pairs[category] = r.generate(reps, signs, affixes)
	}

	return table, nil
}

func (r *Resolver) generate(reps representations, signs Signs, frag pattern.Fragment) AffixPair {
	positivePrefix := pattern.Tokenize(frag.PositivePrefix)
	positiveSuffix := pattern.Tokenize(frag.PositiveSuffix)

	negativePrefix := pattern.Tokenize(frag.NegativePrefix)
	negativeSuffix := pattern.Tokenize(frag.NegativeSuffix)
	if !frag.HasNegative {
		negativePrefix = append([]pattern.Token{{Kind: pattern.TokenMinus}}, positivePrefix...)
		negativeSuffix = positiveSuffix
	}

	return AffixPair{
		Positive: Affix{
			Prefix: r.expand(positivePrefix, reps, signs),
			Suffix: r.expand(positiveSuffix, reps, signs),
		},
		Negative: Affix{
			Prefix: r.expand(negativePrefix, reps, signs),
			Suffix: r.expand(negativeSuffix, reps, signs),
		},
	}
}

func (r *Resolver) expand(tokens []pattern.Token, reps representations, signs Signs) string {
	if len(tokens) == 0 {
		return ""
	}

	b := r.builders.Get().(*bytes.Buffer)
	defer func() {
		b.Reset()
		r.builders.Put(b)
	}()

	for _, token := range tokens {
		switch token.Kind {
		case pattern.TokenCurrency:
			b.WriteString(reps.forRun(token.Count))
		case pattern.TokenMinus:
			b.WriteString(signs.Minus)
		case pattern.TokenPlus:
			b.WriteString(signs.Plus)
		case pattern.TokenPercent:
			b.WriteString(signs.Percent)
		case pattern.TokenPerMille:
			b.WriteString(signs.PerMille)
		default:
			b.WriteString(token.Text)
		}
	}
	return b.String()
}
