package calculation

import (
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// The schedule generators expand the engine's formulas into fully indexed,
// calendar-year-keyed rows with running cumulative present value, for report
// and export rendering. They take no shortcuts: every row is computed from
// the same factor chain the engine uses, so schedule totals reconcile exactly
// with the summary figures.
//
// targetYear re-anchors the calendar labels when a report is generated for a
// year other than the trial year; zero keeps the trial-year anchor. Only the
// labels shift; the arithmetic is unchanged.

// GenerateEarningsSchedule expands the past and future earnings-loss rows.
func (ce *CalculationEngine) GenerateEarningsSchedule(c *domain.Case, targetYear int) []domain.EarningsScheduleRow {
	dates := ComputeDateCalc(c.CaseInfo, ce.AsOf)
	alg := ComputeAlgebraic(c.Earnings, dates, c.UnionMode, c.CaseInfo.IsWrongfulDeath())
	proj := ProjectEarnings(c, alg, dates)

	shift := calendarShift(targetYear, dates.TrialYear)

	rows := make([]domain.EarningsScheduleRow, 0, len(proj.Past)+len(proj.Future))
	cumulative := decimal.Zero

	for _, p := range proj.Past {
		cumulative = cumulative.Add(p.NetLoss)
		rows = append(rows, domain.EarningsScheduleRow{
			Year:           p.Year + shift,
			Age:            dates.AgeAtInjury.Add(decimal.NewFromInt(int64(p.YearIndex))).Round(1),
			Period:         domain.PeriodPast,
			Fraction:       p.Fraction,
			ButForEarnings: p.ButForEarnings,
			Offset:         p.ActualOffset,
			NetLoss:        p.NetLoss,
			DiscountFactor: one,
			PresentValue:   p.NetLoss,
			CumulativePV:   cumulative,
		})
	}

	for _, f := range proj.Future {
		cumulative = cumulative.Add(f.PresentValue)
		rows = append(rows, domain.EarningsScheduleRow{
			Year:           f.Year + shift,
			Age:            dates.AgeAtTrial.Add(decimal.NewFromInt(int64(f.YearIndex))).Round(1),
			Period:         domain.PeriodFuture,
			Fraction:       f.Fraction,
			ButForEarnings: f.ButForEarnings,
			Offset:         f.ResidualOffset,
			NetLoss:        f.NetLoss,
			DiscountFactor: f.DiscountFactor,
			PresentValue:   f.PresentValue,
			CumulativePV:   cumulative,
		})
	}

	return rows
}

// GenerateHouseholdSchedule expands the household-services valuation.
func (ce *CalculationEngine) GenerateHouseholdSchedule(c *domain.Case, targetYear int) []domain.HouseholdScheduleRow {
	if !c.Household.Active {
		return nil
	}
	dates := ComputeDateCalc(c.CaseInfo, ce.AsOf)
	years := int(dates.YearsToFinalSeparation.Ceil().IntPart())
	anchor := dates.TrialYear + calendarShift(targetYear, dates.TrialYear)

	annualBase := c.Household.HoursPerWeek.Mul(weeksPerYear).Mul(c.Household.HourlyRate)
	rows := make([]domain.HouseholdScheduleRow, 0, years)
	cumulative := decimal.Zero

	for i := 0; i < years; i++ {
		nominal := annualBase.Mul(CompoundFactor(c.Household.GrowthRate, i))
		discount := one
		if !c.Earnings.NoDiscount {
			discount = MidYearDiscount(c.Household.DiscountRate, i)
		}
		pv := nominal.Mul(discount)
		cumulative = cumulative.Add(pv)
		rows = append(rows, domain.HouseholdScheduleRow{
			Year:           anchor + i,
			YearIndex:      i,
			Nominal:        nominal,
			DiscountFactor: discount,
			PresentValue:   pv,
			CumulativePV:   cumulative,
		})
	}
	return rows
}

// GenerateLcpSchedule expands the life-care plan into one row per plan year,
// with each active item's inflated cost and present value.
func (ce *CalculationEngine) GenerateLcpSchedule(c *domain.Case, targetYear int) []domain.LcpScheduleRow {
	dates := ComputeDateCalc(c.CaseInfo, ce.AsOf)
	anchor := dates.TrialYear + calendarShift(targetYear, dates.TrialYear)

	// Collect each item's per-year costs, tracking the plan horizon.
	type itemYears struct {
		item  domain.LcpItem
		years []int
	}
	lastYear := 0
	resolved := make([]itemYears, 0, len(c.LifeCarePlan))
	for _, item := range c.LifeCarePlan {
		ys := activeYears(item)
		if len(ys) > 0 && ys[len(ys)-1] > lastYear {
			lastYear = ys[len(ys)-1]
		}
		resolved = append(resolved, itemYears{item: item, years: ys})
	}

	rows := make([]domain.LcpScheduleRow, 0, lastYear)
	cumulative := decimal.Zero

	for y := 1; y <= lastYear; y++ {
		row := domain.LcpScheduleRow{
			Year:     anchor + y - 1,
			PlanYear: y,
		}
		discount := one
		if !c.Earnings.NoDiscount {
			discount = MidYearDiscount(c.Earnings.DiscountRate, y-1)
		}
		for _, iy := range resolved {
			if !containsYear(iy.years, y) {
				continue
			}
			rate := ce.Categories.RateFor(iy.item.Category)
			nominal := iy.item.BaseCost.Mul(CompoundFactor(rate, y-1))
			pv := nominal.Mul(discount)
			row.Items = append(row.Items, domain.LcpRowItem{
				ID:           iy.item.ID,
				Name:         iy.item.Name,
				Nominal:      nominal,
				PresentValue: pv,
			})
			row.Nominal = row.Nominal.Add(nominal)
			row.PresentValue = row.PresentValue.Add(pv)
		}
		if len(row.Items) == 0 {
			continue
		}
		cumulative = cumulative.Add(row.PresentValue)
		row.CumulativePV = cumulative
		rows = append(rows, row)
	}
	return rows
}

func calendarShift(targetYear, trialYear int) int {
	if targetYear <= 0 {
		return 0
	}
	return targetYear - trialYear
}

func containsYear(years []int, y int) bool {
	for _, v := range years {
		if v == y {
			return true
		}
	}
	return false
}
