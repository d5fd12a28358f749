package numfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// localeParentChain walks from locale to the root, most specific first.
// Each step asks the tag parser for the CLDR parent; identifiers the parser
// rejects fall back to trimming the last hyphenated subtag, so private or
// malformed identifiers still shed their suffixes.
func localeParentChain(locale string) []string {
	var chain []string
	seen := make(map[string]struct{}, 4)

	for current := locale; current != ""; {
		next := ""
		if tag, err := language.Parse(current); err == nil {
			if parent := tag.Parent(); parent != language.Und {
				if value := parent.String(); value != "" && value != "und" {
					next = value
				}
			}
		} else if idx := strings.LastIndex(current, "-"); idx > 0 {
			next = current[:idx]
		}
		if next == "" {
			break
		}
		if _, exists := seen[next]; exists {
			break
		}
		seen[next] = struct{}{}
		chain = append(chain, next)
		current = next
	}

	return chain
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
