package calculation

import (
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var weeksPerYear = decimal.NewFromInt(52)

// ValueHouseholdServices values lost domestic-service capacity over the
// remaining years to final separation: hours/week x 52 x replacement rate,
// grown annually and reduced to present value on the mid-year convention.
// An inactive claim values to zero.
func ValueHouseholdServices(hh domain.HhServices, dates domain.DateCalc, noDiscount bool) domain.HhsData {
	if !hh.Active {
		return domain.HhsData{}
	}

	years := int(dates.YearsToFinalSeparation.Ceil().IntPart())
	data := domain.HhsData{Active: true, Years: years}

	annualBase := hh.HoursPerWeek.Mul(weeksPerYear).Mul(hh.HourlyRate)
	for i := 0; i < years; i++ {
		nominal := annualBase.Mul(CompoundFactor(hh.GrowthRate, i))
		pv := nominal
		if !noDiscount {
			pv = nominal.Mul(MidYearDiscount(hh.DiscountRate, i))
		}
		data.TotalNominal = data.TotalNominal.Add(nominal)
		data.TotalPV = data.TotalPV.Add(pv)
	}
	return data
}
