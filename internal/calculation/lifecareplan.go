package calculation

import (
	"sort"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// CategoryTable maps a life-care-plan category to its annual CPI inflation
// rate (fraction). The table is read-only configuration: callers pass it in
// explicitly so alternate tables can be tested deterministically.
type CategoryTable map[string]decimal.Decimal

// CategoryTableVersion identifies the shipped default rate table.
const CategoryTableVersion = "2025.1"

// DefaultCategoryTable returns the versioned medical-CPI rate table. A fresh
// map is returned each call so callers cannot mutate shared state.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		"physician_services":  decimal.NewFromFloat(0.032),
		"hospital_services":   decimal.NewFromFloat(0.051),
		"prescription_drugs":  decimal.NewFromFloat(0.041),
		"medical_equipment":   decimal.NewFromFloat(0.022),
		"home_health":         decimal.NewFromFloat(0.038),
		"therapy_services":    decimal.NewFromFloat(0.030),
		"transportation":      decimal.NewFromFloat(0.025),
		"home_modifications":  decimal.NewFromFloat(0.028),
		"attendant_care":      decimal.NewFromFloat(0.035),
		"diagnostics":         decimal.NewFromFloat(0.033),
	}
}

// RateFor returns the CPI rate for a category. Unknown categories inflate at
// zero; a missing table entry degrades the valuation, never fails it.
func (ct CategoryTable) RateFor(category string) decimal.Decimal {
	if rate, ok := ct[category]; ok {
		return rate
	}
	return decimal.Zero
}

// activeYears resolves the 1-based plan years in which an item incurs cost.
// Start and end years are clamped to >= 1. An explicit custom-year set
// overrides the start/end range entirely: it is deduplicated, sorted, and
// clamped, and the item's duration fields are ignored.
func activeYears(item domain.LcpItem) []int {
	start := item.StartYear
	if start < 1 {
		start = 1
	}
	end := item.EndYear
	if end < start {
		end = start
	}

	switch f := item.Frequency.(type) {
	case domain.OneTime:
		return []int{start}
	case domain.Recurring:
		interval := f.Interval
		if interval < 1 {
			interval = 1
		}
		var years []int
		for y := start; y <= end; y += interval {
			years = append(years, y)
		}
		return years
	case domain.CustomYears:
		seen := make(map[int]bool, len(f.Years))
		var years []int
		for _, y := range f.Years {
			if y < 1 {
				y = 1
			}
			if !seen[y] {
				seen[y] = true
				years = append(years, y)
			}
		}
		sort.Ints(years)
		return years
	default: // Annual, or unset
		var years []int
		for y := start; y <= end; y++ {
			years = append(years, y)
		}
		return years
	}
}

// ValueLifeCarePlan values each care item across its active plan years. The
// year-y cost is the base cost inflated by the category CPI rate over y-1
// years; present value divides by the discount rate at the absolute plan-year
// index on the mid-year convention, so items starting later in the plan are
// discounted for the full wait, not just their own elapsed duration.
func ValueLifeCarePlan(items []domain.LcpItem, discountRate decimal.Decimal, table CategoryTable, noDiscount bool) domain.LcpData {
	var data domain.LcpData
	for _, item := range items {
		rate := table.RateFor(item.Category)
		val := domain.LcpItemValuation{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			CPIRate:  rate,
		}
		for _, y := range activeYears(item) {
			nominal := item.BaseCost.Mul(CompoundFactor(rate, y-1))
			pv := nominal
			if !noDiscount {
				pv = nominal.Mul(MidYearDiscount(discountRate, y-1))
			}
			val.ActiveYears = append(val.ActiveYears, y)
			val.TotalNominal = val.TotalNominal.Add(nominal)
			val.TotalPV = val.TotalPV.Add(pv)
		}
		data.Items = append(data.Items, val)
		data.TotalNominal = data.TotalNominal.Add(val.TotalNominal)
		data.TotalPV = data.TotalPV.Add(val.TotalPV)
	}
	return data
}
