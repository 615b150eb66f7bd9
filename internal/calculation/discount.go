package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// CompoundFactor returns (1+rate)^years for whole years, the growth factor
// applied to wages, replacement rates and care costs.
func CompoundFactor(rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// MidYearDiscount returns the present-value multiplier (1+rate)^-(yearIndex+0.5).
// The half-year exponent approximates mid-year cash-flow timing; the square
// root is taken through float64 since decimal exponentiation is integer-only.
func MidYearDiscount(rate decimal.Decimal, yearIndex int) decimal.Decimal {
	if rate.IsZero() {
		return one
	}
	onePlus := one.Add(rate)
	if !onePlus.IsPositive() {
		return one
	}
	halfRoot := decimal.NewFromFloat(math.Sqrt(onePlus.InexactFloat64()))
	divisor := onePlus.Pow(decimal.NewFromInt(int64(yearIndex))).Mul(halfRoot)
	return one.Div(divisor)
}
