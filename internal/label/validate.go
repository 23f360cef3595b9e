package label

import (
	"regexp"
	"strings"
)

// amountPattern accepts a currency amount with optional comma grouping,
// fraction and short-scale suffix. It is looser than what FormatValue emits.
var amountPattern = regexp.MustCompile(`\$(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?[kMB]?`)

// ValidateLabelCompleteness reports whether label looks like a complete node
// label: it contains expectedName verbatim, a currency amount and, when
// expectedYoyGrowth is not blank, a parenthesised percentage. It is a smoke
// check rather than a parser; expectedValue is not compared. Any label that
// is not a string yields false.
func ValidateLabelCompleteness(label any, expectedName string, expectedValue float64, expectedYoyGrowth string) bool {
	s, ok := label.(string)
	if !ok {
		return false
	}
	if !strings.Contains(s, expectedName) {
		return false
	}
	if !amountPattern.MatchString(s) {
		return false
	}
	if strings.TrimSpace(expectedYoyGrowth) != "" {
		if !strings.Contains(s, "(") || !strings.Contains(s, ")") || !strings.Contains(s, "%") {
			return false
		}
	}
	return true
}
