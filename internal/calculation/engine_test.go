package calculation

import (
	"context"
	"testing"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *CalculationEngine {
	engine := NewCalculationEngine()
	engine.AsOf = evalDate
	return engine
}

func TestRunCaseGrandTotalIdentity(t *testing.T) {
	tests := []struct {
		name            string
		householdActive bool
		withLCP         bool
	}{
		{"all components", true, true},
		{"no household", false, true},
		{"no lcp", true, false},
		{"earnings only", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scenarioCase()
			c.Household.Active = tt.householdActive
			if !tt.withLCP {
				c.LifeCarePlan = nil
			}

			result, err := testEngine().RunCase(context.Background(), c)
			require.NoError(t, err)

			expected := result.Earnings.TotalPastLoss.Add(result.Earnings.TotalFuturePV)
			if tt.householdActive {
				expected = expected.Add(result.Household.TotalPV)
			}
			expected = expected.Add(result.LifeCarePlan.TotalPV)
			assert.True(t, result.GrandTotal.Equal(expected),
				"grand total %s != %s", result.GrandTotal, expected)
		})
	}
}

func TestRunCaseIdempotent(t *testing.T) {
	c := scenarioCase()
	engine := testEngine()

	first, err := engine.RunCase(context.Background(), c)
	require.NoError(t, err)
	second, err := engine.RunCase(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical outputs")
}

func TestRunCaseDoesNotMutateInput(t *testing.T) {
	c := scenarioCase()
	snapshot := *c
	snapshotItems := append([]domain.LcpItem(nil), c.LifeCarePlan...)

	_, err := testEngine().RunCase(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, snapshot.CaseInfo, c.CaseInfo)
	assert.Equal(t, snapshot.Earnings, c.Earnings)
	assert.Equal(t, snapshot.Household, c.Household)
	assert.Equal(t, snapshotItems, c.LifeCarePlan)
}

func TestRunCaseDegradesOnMissingDates(t *testing.T) {
	c := scenarioCase()
	c.CaseInfo.TrialDate = ""

	result, err := testEngine().RunCase(context.Background(), c)
	require.NoError(t, err, "insufficient data degrades, never fails")

	assert.True(t, result.Dates.IsZero())
	assert.True(t, result.Earnings.TotalPastLoss.IsZero())
	assert.True(t, result.Earnings.TotalFuturePV.IsZero())
	assert.Empty(t, result.Scenarios)

	// The life-care plan is date-independent and still values.
	assert.False(t, result.LifeCarePlan.TotalPV.IsZero())
}

func TestRunCaseNilCase(t *testing.T) {
	_, err := testEngine().RunCase(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunCaseCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testEngine().RunCase(ctx, scenarioCase())
	assert.Error(t, err)
}

func TestRunCaseAlternateCategoryTable(t *testing.T) {
	c := scenarioCase()

	hot := NewCalculationEngineWithTable(CategoryTable{
		"prescription_drugs": decimal.NewFromFloat(0.10),
	})
	hot.AsOf = evalDate
	cold := NewCalculationEngineWithTable(CategoryTable{})
	cold.AsOf = evalDate

	hotResult, err := hot.RunCase(context.Background(), c)
	require.NoError(t, err)
	coldResult, err := cold.RunCase(context.Background(), c)
	require.NoError(t, err)

	assert.True(t, hotResult.LifeCarePlan.TotalNominal.GreaterThan(coldResult.LifeCarePlan.TotalNominal),
		"a hotter CPI table must inflate the plan")
}

func TestGrandTotalPureSummation(t *testing.T) {
	proj := domain.Projection{
		TotalPastLoss: decimal.NewFromInt(100),
		TotalFuturePV: decimal.NewFromInt(200),
	}
	hhs := domain.HhsData{Active: true, TotalPV: decimal.NewFromInt(30)}
	lcp := domain.LcpData{TotalPV: decimal.NewFromInt(40)}

	assert.True(t, GrandTotal(proj, hhs, lcp).Equal(decimal.NewFromInt(370)))

	hhs.Active = false
	assert.True(t, GrandTotal(proj, hhs, lcp).Equal(decimal.NewFromInt(340)),
		"inactive household services contribute nothing")
}
