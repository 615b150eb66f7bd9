package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial precision.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount fixed to cents.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as grouped US currency, e.g. "$1,234,567.89".
func (m Money) Format() string {
	return FormatCurrency(m.Decimal)
}

// FormatCurrency renders a decimal dollar amount with thousands separators.
// Negative amounts are rendered accountant-style in parentheses.
func FormatCurrency(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + frac
	if neg {
		return "(" + out + ")"
	}
	return out
}

// FormatPercent renders a fractional rate as a percentage, e.g. 0.035 -> "3.50%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatFactor renders a dimensionless adjustment factor to four places.
func FormatFactor(f decimal.Decimal) string {
	return f.StringFixed(4)
}
