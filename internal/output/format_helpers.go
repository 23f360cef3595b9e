package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// InlineLabel collapses a multi-line label onto one line for tabular output.
func InlineLabel(label string) string { return strings.ReplaceAll(label, "\n", " | ") }
