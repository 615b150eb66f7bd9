package calculation

import (
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// wageGrowth produces cumulative wage-growth factors anchored at the injury
// year, honoring the optional era-split rate change. The factor for a calendar
// year is the product of one year of growth per elapsed year since injury.
type wageGrowth struct {
	injuryYear int
	baseRate   decimal.Decimal
	split      *domain.EraSplit
}

func (wg wageGrowth) rateFor(year int) decimal.Decimal {
	if wg.split != nil && year >= wg.split.Year {
		return wg.split.WageGrowthRate
	}
	return wg.baseRate
}

// factor returns the cumulative growth multiplier for the given calendar year.
func (wg wageGrowth) factor(year int) decimal.Decimal {
	f := one
	for y := wg.injuryYear; y < year; y++ {
		f = f.Mul(one.Add(wg.rateFor(y)))
	}
	return f
}

// splitYears decomposes a fractional span into per-row year fractions: whole
// years count 1, a nonzero remainder adds one final partial row.
func splitYears(span decimal.Decimal) []decimal.Decimal {
	if !span.IsPositive() {
		return nil
	}
	whole := int(span.IntPart())
	remainder := span.Sub(span.Floor())

	fractions := make([]decimal.Decimal, 0, whole+1)
	for i := 0; i < whole; i++ {
		fractions = append(fractions, one)
	}
	if remainder.IsPositive() {
		fractions = append(fractions, remainder)
	}
	return fractions
}

// ProjectEarnings produces the past (actual losses to date) and future
// (projected, discounted losses) earnings-loss schedules.
//
// Past rows run one per elapsed year from the injury year through trial; the
// but-for stream is base earnings grown to each year and reduced by the
// adjustment multiplier, offset by either a manually entered actual amount for
// that calendar year or the residual-earnings stream under the same
// adjustment. Unparseable manual entries fall back to the residual path.
//
// Future rows run one per remaining year to final separation, with the same
// but-for/residual structure and a mid-year present-value reduction measured
// from trial. Wage growth continues the path begun at injury, so the two
// schedules form one unbroken earnings stream.
func ProjectEarnings(c *domain.Case, alg domain.Algebraic, dates domain.DateCalc) domain.Projection {
	var proj domain.Projection

	growth := wageGrowth{
		injuryYear: dates.InjuryYear,
		baseRate:   c.Earnings.WageGrowthRate,
		split:      c.Earnings.EraSplit,
	}

	for i, frac := range splitYears(dates.PastYears) {
		year := dates.InjuryYear + i
		aif := AIFForYear(alg, c.Earnings.EraSplit, year)
		gf := growth.factor(year)

		butFor := c.Earnings.BaseEarnings.Mul(gf).Mul(frac).Mul(aif)

		offset := c.Earnings.ResidualEarnings.Mul(gf).Mul(frac).Mul(aif)
		manual := false
		if raw, ok := c.ActualEarnings[year]; ok {
			if actual, err := decimal.NewFromString(raw); err == nil {
				offset = actual
				manual = true
			}
		}

		net := butFor.Sub(offset)
		proj.Past = append(proj.Past, domain.PastYearRow{
			Year:           year,
			YearIndex:      i,
			Fraction:       frac,
			ButForEarnings: butFor,
			ActualOffset:   offset,
			ManualOverride: manual,
			NetLoss:        net,
		})
		proj.TotalPastLoss = proj.TotalPastLoss.Add(net)
	}

	for i, frac := range splitYears(dates.YearsToFinalSeparation) {
		year := dates.TrialYear + i
		aif := AIFForYear(alg, c.Earnings.EraSplit, year)
		gf := growth.factor(year)

		butFor := c.Earnings.BaseEarnings.Mul(gf).Mul(frac).Mul(aif)
		offset := c.Earnings.ResidualEarnings.Mul(gf).Mul(frac).Mul(aif)
		net := butFor.Sub(offset)

		discount := one
		if !c.Earnings.NoDiscount {
			discount = MidYearDiscount(c.Earnings.DiscountRate, i)
		}
		pv := net.Mul(discount)

		proj.Future = append(proj.Future, domain.FutureYearRow{
			Year:           year,
			YearIndex:      i,
			Fraction:       frac,
			ButForEarnings: butFor,
			ResidualOffset: offset,
			NetLoss:        net,
			DiscountFactor: discount,
			PresentValue:   pv,
		})
		proj.TotalFutureNominal = proj.TotalFutureNominal.Add(net)
		proj.TotalFuturePV = proj.TotalFuturePV.Add(pv)
	}

	return proj
}
