package calculation

import (
	"math"
	"testing"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueHouseholdServices(t *testing.T) {
	hh := domain.HhServices{
		Active:       true,
		HoursPerWeek: decimal.NewFromInt(10),
		HourlyRate:   decimal.NewFromInt(20),
		GrowthRate:   decimal.NewFromFloat(0.03),
		DiscountRate: decimal.NewFromFloat(0.05),
	}
	dates := domain.DateCalc{YearsToFinalSeparation: decimal.NewFromInt(2)}

	data := ValueHouseholdServices(hh, dates, false)

	// Year 0: 10*52*20 = 10400; year 1 grows 3%.
	assert.Equal(t, 2, data.Years)
	assert.InDelta(t, 10400+10400*1.03, data.TotalNominal.InexactFloat64(), 0.01)

	expectedPV := 10400/math.Pow(1.05, 0.5) + 10400*1.03/math.Pow(1.05, 1.5)
	assert.InDelta(t, expectedPV, data.TotalPV.InexactFloat64(), 0.01)
	assert.True(t, data.TotalPV.LessThan(data.TotalNominal), "discounting must reduce the total")
}

func TestValueHouseholdServicesInactive(t *testing.T) {
	hh := domain.HhServices{
		HoursPerWeek: decimal.NewFromInt(10),
		HourlyRate:   decimal.NewFromInt(20),
	}
	dates := domain.DateCalc{YearsToFinalSeparation: decimal.NewFromInt(5)}

	data := ValueHouseholdServices(hh, dates, false)

	assert.False(t, data.Active)
	assert.Zero(t, data.Years)
	assert.True(t, data.TotalNominal.IsZero())
	assert.True(t, data.TotalPV.IsZero())
}

func TestValueHouseholdServicesCeilsDuration(t *testing.T) {
	hh := domain.HhServices{
		Active:       true,
		HoursPerWeek: decimal.NewFromInt(5),
		HourlyRate:   decimal.NewFromInt(15),
	}
	dates := domain.DateCalc{YearsToFinalSeparation: decimal.NewFromFloat(3.2)}

	data := ValueHouseholdServices(hh, dates, false)
	assert.Equal(t, 4, data.Years)
}

func TestValueHouseholdServicesNoDiscount(t *testing.T) {
	hh := domain.HhServices{
		Active:       true,
		HoursPerWeek: decimal.NewFromInt(10),
		HourlyRate:   decimal.NewFromInt(20),
		GrowthRate:   decimal.NewFromFloat(0.03),
		DiscountRate: decimal.NewFromFloat(0.05),
	}
	dates := domain.DateCalc{YearsToFinalSeparation: decimal.NewFromInt(3)}

	data := ValueHouseholdServices(hh, dates, true)
	assert.True(t, data.TotalPV.Equal(data.TotalNominal))
}
