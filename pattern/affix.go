package pattern

import (
	"strings"
	"unicode/utf8"
)

// CurrencySign is the placeholder character substituted with a currency representation.
const CurrencySign = '¤'

// MaxCurrencyRun is the longest placeholder run with a defined meaning.
const MaxCurrencyRun = 3

// TokenKind classifies a piece of an affix pattern
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenCurrency
	TokenMinus
	TokenPlus
	TokenPercent
	TokenPerMille
)

func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenCurrency:
		return "currency"
	case TokenMinus:
		return "minus"
	case TokenPlus:
		return "plus"
	case TokenPercent:
		return "percent"
	case TokenPerMille:
		return "permille"
	default:
		return "unknown"
	}
}

// Token is one element of a tokenized affix pattern. Text is set for
// literals, Count for currency placeholder runs.
type Token struct {
	Kind  TokenKind
	Text  string
	Count int
}

// ParseAffix tokenizes an affix pattern and rejects unterminated quotes and
// placeholder runs longer than MaxCurrencyRun.
func ParseAffix(affix string) ([]Token, error) {
	return tokenize(affix, true)
}

// Tokenize is the lenient form of ParseAffix: an unterminated quote runs to
// the end of the pattern and long placeholder runs are clamped.
func Tokenize(affix string) []Token {
	tokens, _ := tokenize(affix, false)
	return tokens
}

// HasCurrency reports whether the affix pattern contains an unquoted placeholder.
func HasCurrency(affix string) bool {
	if !strings.ContainsRune(affix, CurrencySign) {
		return false
	}
	for _, token := range Tokenize(affix) {
		if token.Kind == TokenCurrency {
			return true
		}
	}
	return false
}

func tokenize(affix string, strict bool) ([]Token, error) {
	if affix == "" {
		return nil, nil
	}

	var tokens []Token
	var literal strings.Builder

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenLiteral, Text: literal.String()})
		literal.Reset()
	}

	quoted := false
	quoteStart := 0
	for i := 0; i < len(affix); {
		r, size := utf8.DecodeRuneInString(affix[i:])

		if r == '\'' {
			if i+size < len(affix) && affix[i+size] == '\'' {
				literal.WriteByte('\'')
				i += size + 1
				continue
			}
			quoted = !quoted
			quoteStart = i
			i += size
			continue
		}

		if quoted {
			literal.WriteRune(r)
			i += size
			continue
		}

		switch r {
		case CurrencySign:
			count := 0
			start := i
			for i < len(affix) {
				next, nextSize := utf8.DecodeRuneInString(affix[i:])
				if next != CurrencySign {
					break
				}
				count++
				i += nextSize
			}
			if count > MaxCurrencyRun {
				if strict {
					return nil, &SyntaxError{Pattern: affix, Offset: start, Reason: "currency placeholder run longer than three"}
				}
				count = MaxCurrencyRun
			}
			flush()
			tokens = append(tokens, Token{Kind: TokenCurrency, Count: count})
			continue
		case '-':
			flush()
			tokens = append(tokens, Token{Kind: TokenMinus})
		case '+':
			flush()
			tokens = append(tokens, Token{Kind: TokenPlus})
		case '%':
			flush()
			tokens = append(tokens, Token{Kind: TokenPercent})
		case '‰':
			flush()
			tokens = append(tokens, Token{Kind: TokenPerMille})
		default:
			literal.WriteRune(r)
		}
		i += size
	}

	if quoted && strict {
		return nil, &SyntaxError{Pattern: affix, Offset: quoteStart, Reason: "unterminated quote"}
	}

	flush()
	return tokens, nil
}
