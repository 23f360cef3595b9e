package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is prefixed to every formatted amount.
const CurrencySymbol = "$"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// scaleTier is one step of the short scale, largest first.
type scaleTier struct {
	exp    int32
	suffix string
}

var shortScale = []scaleTier{
	{exp: 9, suffix: "B"},
	{exp: 6, suffix: "M"},
	{exp: 3, suffix: "k"},
}

// NewMoney creates a new Money instance from a float64.
// The value must be finite; shopspring/decimal panics on NaN and infinities.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Abs returns the magnitude of the amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with proper currency formatting
func (m Money) Format() string {
	return CurrencySymbol + m.String()
}

// Compact formats the magnitude of the amount on the short scale, e.g.
// "$999", "$1k", "$1.5M", "$2B". Scaled tiers keep one decimal place with a
// trailing ".0" dropped; amounts below one thousand are rounded to whole units.
// The sign is never shown.
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	for _, tier := range shortScale {
		if abs.GreaterThanOrEqual(decimal.New(1, tier.exp)) {
			scaled := abs.Shift(-tier.exp).StringFixed(1)
			return CurrencySymbol + strings.TrimSuffix(scaled, ".0") + tier.suffix
		}
	}
	return CurrencySymbol + abs.StringFixed(0)
}
