package config

import (
	"testing"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCaseYAML = `
case_info:
  plaintiff_name: "Jane Roe"
  case_type: personal_injury
  birth_date: "1990-01-01"
  injury_date: "2020-01-01"
  trial_date: "2024-01-01"
  retirement_age: 67
earnings:
  base_earnings: 100000
  residual_earnings: 30000
  work_life_expectancy: 20
  wage_growth_rate: 0.03
  discount_rate: 0.05
  unemployment_rate: 0.05
  ui_replacement_rate: 0.30
  federal_tax_rate: 0.20
  state_tax_rate: 0.05
household:
  active: true
  hours_per_week: 10
  hourly_rate: 20
  growth_rate: 0.03
  discount_rate: 0.05
life_care_plan:
  - name: "Wheelchair"
    category: medical_equipment
    base_cost: 5000
    start_year: 1
    end_year: 1
    frequency: onetime
  - name: "Physical therapy"
    category: therapy_services
    base_cost: 1200
    start_year: 1
    end_year: 10
    frequency: annual
  - name: "Prosthesis replacement"
    category: medical_equipment
    base_cost: 20000
    start_year: 2
    end_year: 20
    frequency: recurring
    interval: 4
  - name: "Surgical revision"
    category: hospital_services
    base_cost: 15000
    frequency: custom
    custom_years: [3, 7, 12]
actual_earnings:
  2020: "42000"
  2021: "45500.25"
union_mode: false
`

func TestParseValidCase(t *testing.T) {
	parser := NewInputParser()

	c, err := parser.Parse([]byte(validCaseYAML))
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", c.CaseInfo.PlaintiffName)
	assert.Equal(t, domain.PersonalInjury, c.CaseInfo.CaseType)
	assert.True(t, c.Earnings.BaseEarnings.Equal(decimal.NewFromInt(100000)))
	assert.True(t, c.Household.Active)
	assert.Equal(t, "42000", c.ActualEarnings[2020])

	require.Len(t, c.LifeCarePlan, 4)
	assert.IsType(t, domain.OneTime{}, c.LifeCarePlan[0].Frequency)
	assert.IsType(t, domain.Annual{}, c.LifeCarePlan[1].Frequency)

	recurring, ok := c.LifeCarePlan[2].Frequency.(domain.Recurring)
	require.True(t, ok)
	assert.Equal(t, 4, recurring.Interval)

	custom, ok := c.LifeCarePlan[3].Frequency.(domain.CustomYears)
	require.True(t, ok)
	assert.Equal(t, []int{3, 7, 12}, custom.Years)
}

func TestParseRejectsUnknownFrequency(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Parse([]byte(`
life_care_plan:
  - name: "X"
    category: diagnostics
    base_cost: 100
    frequency: fortnightly
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown frequency mode")
}

func TestValidateCase(t *testing.T) {
	parser := NewInputParser()

	mutate := func(f func(*domain.Case)) *domain.Case {
		c, err := parser.Parse([]byte(validCaseYAML))
		require.NoError(t, err)
		f(c)
		return c
	}

	tests := []struct {
		name    string
		c       *domain.Case
		wantErr string
	}{
		{
			"bad case type",
			mutate(func(c *domain.Case) { c.CaseInfo.CaseType = "negligence" }),
			"case type",
		},
		{
			"malformed present date",
			mutate(func(c *domain.Case) { c.CaseInfo.TrialDate = "01/01/2024" }),
			"valid yyyy-mm-dd",
		},
		{
			"negative base earnings",
			mutate(func(c *domain.Case) { c.Earnings.BaseEarnings = decimal.NewFromInt(-1) }),
			"base earnings",
		},
		{
			"unrealistic discount rate",
			mutate(func(c *domain.Case) { c.Earnings.DiscountRate = decimal.NewFromFloat(0.45) }),
			"unrealistic",
		},
		{
			"tax rate above one",
			mutate(func(c *domain.Case) { c.Earnings.FederalTaxRate = decimal.NewFromFloat(1.2) }),
			"federal_tax_rate",
		},
		{
			"recurring interval below one",
			mutate(func(c *domain.Case) {
				c.LifeCarePlan[2].Frequency = domain.Recurring{Interval: 0}
			}),
			"interval",
		},
		{
			"empty custom years",
			mutate(func(c *domain.Case) {
				c.LifeCarePlan[3].Frequency = domain.CustomYears{}
			}),
			"at least one year",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateCase(tt.c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCaseAllowsAbsentDates(t *testing.T) {
	parser := NewInputParser()

	c, err := parser.Parse([]byte(validCaseYAML))
	require.NoError(t, err)
	c.CaseInfo.BirthDate = ""
	c.CaseInfo.InjuryDate = ""

	// Absent dates are the engine's degenerate-but-legal input.
	assert.NoError(t, parser.ValidateCase(c))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
