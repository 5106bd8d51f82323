package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// All monetary amounts in the application are decimals with at most two
// fractional digits. Storage keeps them as integer cents.

// Parse converts a user-entered string like "150", "150.5" or "150.50" into
// a decimal amount. More than two decimal places is an error, not a rounding.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must be a number", s)
	}

	if d.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("invalid amount %q: at most two decimal places allowed", s)
	}

	return d, nil
}

// ToCents converts an amount to integer cents for storage.
func ToCents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}

// FromCents converts stored integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders an amount with the currency's symbol and grouping,
// e.g. Format(d, "EUR") -> "€1,234.50".
func Format(d decimal.Decimal, currency string) string {
	cur := gomoney.New(0, currency).Currency()
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).IntPart())
}

// Plain renders an amount with exactly two decimal places and no symbol.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}
