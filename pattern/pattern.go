// Package pattern extracts the affix parts of decimal format patterns such as
// "¤#,##0.00;(¤#,##0.00)" and tokenizes them for currency substitution.
package pattern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError reports a malformed pattern. Offset is a byte offset into Pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern: %s at offset %d in %q", e.Reason, e.Offset, e.Pattern)
}

// Fragment holds the prefix and suffix affix patterns of a decimal pattern.
// The affixes still contain placeholders and quoting; see ParseAffix.
type Fragment struct {
	PositivePrefix string
	PositiveSuffix string
	NegativePrefix string
	NegativeSuffix string
	// HasNegative is set when the negative affixes were given explicitly.
	HasNegative bool
}

// Parse splits a decimal pattern into its affix patterns. The numeric body
// is validated only for presence; its digits and grouping are ignored.
func Parse(input string) (Fragment, error) {
	subpatterns, err := splitSubpatterns(input)
	if err != nil {
		return Fragment{}, err
	}

	var frag Fragment
	offset := 0
	for i, sub := range subpatterns {
		prefix, suffix, err := splitAffixes(input, sub, offset)
		if err != nil {
			return Fragment{}, err
		}
		if _, err := ParseAffix(prefix); err != nil {
			return Fragment{}, relocate(input, err, offset)
		}
		if _, err := ParseAffix(suffix); err != nil {
			return Fragment{}, relocate(input, err, offset+len(sub)-len(suffix))
		}

		if i == 0 {
			frag.PositivePrefix = prefix
			frag.PositiveSuffix = suffix
		} else {
			frag.NegativePrefix = prefix
			frag.NegativeSuffix = suffix
			frag.HasNegative = true
		}
		offset += len(sub) + 1
	}

	return frag, nil
}

// MustParse is like Parse but panics on error. Intended for static patterns.
func MustParse(input string) Fragment {
	frag, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return frag
}

func splitSubpatterns(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &SyntaxError{Pattern: input, Reason: "empty pattern"}
	}

	var parts []string
	quoted := false
	quoteStart := 0
	start := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '\'':
			if !quoted {
				quoteStart = i
			}
			quoted = !quoted
		case ';':
			if quoted {
				continue
			}
			parts = append(parts, input[start:i])
			start = i + 1
		}
	}

	if quoted {
		return nil, &SyntaxError{Pattern: input, Offset: quoteStart, Reason: "unterminated quote"}
	}

	parts = append(parts, input[start:])
	if len(parts) > 2 {
		return nil, &SyntaxError{Pattern: input, Offset: len(parts[0]) + len(parts[1]) + 1, Reason: "more than two subpatterns"}
	}
	return parts, nil
}

// splitAffixes returns the text before and after the numeric body of sub.
func splitAffixes(input, sub string, offset int) (string, string, error) {
	bodyStart, bodyEnd := -1, -1
	quoted := false
	for i := 0; i < len(sub); {
		r, size := utf8.DecodeRuneInString(sub[i:])
		if r == '\'' {
			quoted = !quoted
			i += size
			continue
		}
		if !quoted && bodyStart < 0 && isBodyStart(r) {
			bodyStart = i
			bodyEnd = scanBody(sub, i)
			break
		}
		i += size
	}

	if bodyStart < 0 {
		return "", "", &SyntaxError{Pattern: input, Offset: offset, Reason: "missing number body"}
	}
	return sub[:bodyStart], sub[bodyEnd:], nil
}

func isBodyStart(r rune) bool {
	return r == '#' || r == '@' || r == '.' || r == ',' || (r >= '0' && r <= '9')
}

func scanBody(sub string, i int) int {
	for i < len(sub) {
		c := sub[i]
		switch {
		case c == '#' || c == '@' || c == '.' || c == ',' || (c >= '0' && c <= '9'):
			i++
		case c == 'E':
			j := i + 1
			if j < len(sub) && sub[j] == '+' {
				j++
			}
			if j >= len(sub) || sub[j] != '0' {
				return i
			}
			for j < len(sub) && sub[j] == '0' {
				j++
			}
			i = j
		default:
			return i
		}
	}
	return i
}

func relocate(input string, err error, offset int) error {
	syntaxErr, ok := err.(*SyntaxError)
	if !ok {
		return err
	}
	return &SyntaxError{Pattern: input, Offset: offset + syntaxErr.Offset, Reason: syntaxErr.Reason}
}
