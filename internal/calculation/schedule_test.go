package calculation

import (
	"context"
	"testing"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEarningsScheduleReconciles(t *testing.T) {
	c := scenarioCase()
	engine := testEngine()

	result, err := engine.RunCase(context.Background(), c)
	require.NoError(t, err)

	rows := engine.GenerateEarningsSchedule(c, 0)
	require.Len(t, rows, len(result.Earnings.Past)+len(result.Earnings.Future))

	// The running cumulative PV ends exactly at pastLoss + futurePV.
	last := rows[len(rows)-1]
	expected := result.Earnings.TotalPastLoss.Add(result.Earnings.TotalFuturePV)
	assert.True(t, last.CumulativePV.Equal(expected),
		"cumulative %s != engine total %s", last.CumulativePV, expected)

	// Past rows are undiscounted; future rows carry decreasing factors.
	for _, r := range rows {
		if r.Period == "past" {
			assert.True(t, r.DiscountFactor.Equal(decimal.NewFromInt(1)))
			assert.True(t, r.PresentValue.Equal(r.NetLoss))
		}
	}
	future := rows[len(result.Earnings.Past):]
	for i := 1; i < len(future); i++ {
		assert.True(t, future[i].DiscountFactor.LessThan(future[i-1].DiscountFactor))
	}
}

func TestGenerateEarningsScheduleCumulativeIsRunningSum(t *testing.T) {
	c := scenarioCase()
	engine := testEngine()

	rows := engine.GenerateEarningsSchedule(c, 0)
	running := decimal.Zero
	for _, r := range rows {
		running = running.Add(r.PresentValue)
		assert.True(t, r.CumulativePV.Equal(running), "year %d", r.Year)
	}
}

func TestGenerateEarningsScheduleTargetYearShiftsLabelsOnly(t *testing.T) {
	c := scenarioCase()
	engine := testEngine()

	base := engine.GenerateEarningsSchedule(c, 0)
	shifted := engine.GenerateEarningsSchedule(c, 2026)
	require.Len(t, shifted, len(base))

	for i := range base {
		assert.Equal(t, base[i].Year+2, shifted[i].Year)
		assert.True(t, base[i].NetLoss.Equal(shifted[i].NetLoss), "amounts must not move with the calendar anchor")
		assert.True(t, base[i].CumulativePV.Equal(shifted[i].CumulativePV))
	}
}

func TestGenerateHouseholdScheduleReconciles(t *testing.T) {
	c := scenarioCase()
	engine := testEngine()

	result, err := engine.RunCase(context.Background(), c)
	require.NoError(t, err)

	rows := engine.GenerateHouseholdSchedule(c, 0)
	require.Len(t, rows, result.Household.Years)

	nominal := decimal.Zero
	pv := decimal.Zero
	for _, r := range rows {
		nominal = nominal.Add(r.Nominal)
		pv = pv.Add(r.PresentValue)
	}
	assert.True(t, nominal.Equal(result.Household.TotalNominal))
	assert.True(t, pv.Equal(result.Household.TotalPV))
	assert.True(t, rows[len(rows)-1].CumulativePV.Equal(result.Household.TotalPV))
}

func TestGenerateHouseholdScheduleInactive(t *testing.T) {
	c := scenarioCase()
	c.Household.Active = false

	assert.Empty(t, testEngine().GenerateHouseholdSchedule(c, 0))
}

func TestGenerateLcpScheduleReconciles(t *testing.T) {
	c := scenarioCase()
	engine := testEngine()

	result, err := engine.RunCase(context.Background(), c)
	require.NoError(t, err)

	rows := engine.GenerateLcpSchedule(c, 0)
	require.NotEmpty(t, rows)

	pv := decimal.Zero
	for _, r := range rows {
		rowNominal := decimal.Zero
		for _, item := range r.Items {
			rowNominal = rowNominal.Add(item.Nominal)
		}
		assert.True(t, r.Nominal.Equal(rowNominal), "plan year %d", r.PlanYear)
		pv = pv.Add(r.PresentValue)
	}
	assert.True(t, pv.Equal(result.LifeCarePlan.TotalPV))
}

func TestGenerateLcpScheduleSkipsEmptyYears(t *testing.T) {
	c := scenarioCase()
	c.LifeCarePlan[0].Frequency = domain.Recurring{Interval: 3}
	engine := testEngine()

	rows := engine.GenerateLcpSchedule(c, 0)
	for _, r := range rows {
		assert.NotEmpty(t, r.Items, "rows with no active items are omitted")
	}
}
