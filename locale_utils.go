package currencyfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// localeParentChain returns the parents of locale, closest first, without
// the root locale.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	appendParent := func(value string) bool {
		if value == "" || value == "und" {
			return false
		}
		if _, exists := seen[value]; exists {
			return true
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
		return true
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			if !appendParent(parent.String()) {
				break
			}
		}
	}

	// Catches private or unparsable subtags x/text rejects.
	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		appendParent(current)
	}

	return chain
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
