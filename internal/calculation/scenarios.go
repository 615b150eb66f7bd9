package calculation

import (
	"fmt"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// standardScenarioAges are the fixed retirement-age alternatives every report
// compares against, in presentation order.
var standardScenarioAges = []int{65, 67, 70}

// ProjectScenarios re-runs the factor pipeline and full earnings projection
// for each candidate retirement age and rolls in the household and
// life-care-plan present values to form comparable grand totals.
//
// Candidates, in order: the work-life-expectancy-derived age first, then the
// standard ages ascending, then the permanent-job-incapacity age when one is
// set. Missing anchor dates or a non-positive WLE yield an empty list.
func ProjectScenarios(c *domain.Case, dates domain.DateCalc, table CategoryTable) []domain.ScenarioProjection {
	if dates.IsZero() || !c.Earnings.WorkLifeExpectancy.IsPositive() {
		return nil
	}

	lcp := ValueLifeCarePlan(c.LifeCarePlan, c.Earnings.DiscountRate, table, c.Earnings.NoDiscount)

	type candidate struct {
		label string
		kind  domain.ScenarioKind
		age   decimal.Decimal
	}

	wleAge := dates.AgeAtTrial.Add(c.Earnings.WorkLifeExpectancy)
	candidates := []candidate{
		{label: "Work-Life Expectancy", kind: domain.ScenarioWLE, age: wleAge},
	}
	for _, age := range standardScenarioAges {
		candidates = append(candidates, candidate{
			label: fmt.Sprintf("Retirement at %d", age),
			kind:  domain.ScenarioAge,
			age:   decimal.NewFromInt(int64(age)),
		})
	}
	if c.Earnings.PJIAge != nil {
		candidates = append(candidates, candidate{
			label: "Permanent Job Incapacity",
			kind:  domain.ScenarioPJI,
			age:   *c.Earnings.PJIAge,
		})
	}

	scenarios := make([]domain.ScenarioProjection, 0, len(candidates))
	for _, cand := range candidates {
		scenDates := dates
		yfs := cand.age.Sub(dates.AgeAtTrial)
		if yfs.IsNegative() {
			yfs = decimal.Zero
		}
		scenDates.YearsToFinalSeparation = yfs

		alg := ComputeAlgebraic(c.Earnings, scenDates, c.UnionMode, c.CaseInfo.IsWrongfulDeath())
		proj := ProjectEarnings(c, alg, scenDates)
		hhs := ValueHouseholdServices(c.Household, scenDates, c.Earnings.NoDiscount)

		scenarios = append(scenarios, domain.ScenarioProjection{
			Label:                  cand.label,
			Kind:                   cand.kind,
			RetirementAge:          cand.age,
			YearsToFinalSeparation: yfs,
			WorkLifeFactor:         alg.WorkLifeFactor,
			TotalPastLoss:          proj.TotalPastLoss,
			TotalFuturePV:          proj.TotalFuturePV,
			HouseholdPV:            hhs.TotalPV,
			LifeCarePlanPV:         lcp.TotalPV,
			GrandTotal:             GrandTotal(proj, hhs, lcp),
			Included:               true,
		})
	}
	return scenarios
}
