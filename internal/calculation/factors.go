package calculation

import (
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeAlgebraic runs the Tinari factor pipeline and returns the ordered
// breakdown. The chain is non-commutative: each step operates on the output of
// the previous one, and re-ordering changes the legal meaning of the result.
//
//  1. Work-life factor WLF = WLE / YFS converts chronological years into an
//     expected labor-force participation fraction.
//  2. Unemployment: the expected earnings share lost to unemployment spells,
//     net of unemployment-insurance replacement.
//  3. Fringe benefits: percentage of base earnings, or in union mode the sum
//     of itemized flat amounts divided by base earnings.
//  4. Tax is levied on the unemployment-adjusted base ONLY, never on the
//     fringe portion. This is the method's defining rule.
//  5. Wrongful death only: the decedent's own consumption share is deducted,
//     separately per era, yielding distinct pre- and post-split multipliers.
//
// Every intermediate except FlatFringeAmount is a per-dollar fraction of gross
// base earnings. Degenerate inputs (YFS <= 0, base <= 0 in union mode) yield
// zero factors rather than undefined divisions.
func ComputeAlgebraic(params domain.EarningsParams, dates domain.DateCalc, unionMode, wrongfulDeath bool) domain.Algebraic {
	var alg domain.Algebraic

	yfs := dates.YearsToFinalSeparation
	if yfs.IsPositive() {
		alg.WorkLifeFactor = params.WorkLifeExpectancy.Div(yfs)
	}

	alg.UnemploymentFactor = params.UnemploymentRate.Mul(one.Sub(params.UIReplacementRate))
	alg.UnemploymentAdjusted = alg.WorkLifeFactor.Mul(one.Sub(alg.UnemploymentFactor))

	if unionMode {
		for _, fb := range params.FringeBenefits {
			alg.FlatFringeAmount = alg.FlatFringeAmount.Add(fb.Amount)
		}
		if params.BaseEarnings.IsPositive() {
			alg.FringeRate = alg.FlatFringeAmount.Div(params.BaseEarnings)
		}
	} else {
		alg.FringeRate = params.FringeRate
	}
	alg.FringeFactor = one.Add(alg.FringeRate)
	alg.GrossWithFringes = alg.UnemploymentAdjusted.Mul(alg.FringeFactor)

	alg.CombinedTaxRate = CombinedTaxRate(params.FederalTaxRate, params.StateTaxRate)
	alg.TaxOnBase = alg.UnemploymentAdjusted.Mul(alg.CombinedTaxRate)
	alg.AfterTax = alg.GrossWithFringes.Sub(alg.TaxOnBase)

	if wrongfulDeath {
		alg.ConsumptionPre = params.ConsumptionPre
		alg.ConsumptionPost = params.ConsumptionPost
	}
	alg.AIFPre = alg.AfterTax.Mul(one.Sub(alg.ConsumptionPre))
	alg.AIFPost = alg.AfterTax.Mul(one.Sub(alg.ConsumptionPost))

	return alg
}

// CombinedTaxRate combines the federal and state rates additively. Source
// snapshots of the method disagree between additive and multiplicative
// combination; this implementation fixes the additive form for every caller.
func CombinedTaxRate(federal, state decimal.Decimal) decimal.Decimal {
	return federal.Add(state)
}

// AIFForYear selects the adjustment multiplier for a calendar year, honoring
// the optional era split.
func AIFForYear(alg domain.Algebraic, split *domain.EraSplit, year int) decimal.Decimal {
	if split != nil && year >= split.Year {
		return alg.AIFPost
	}
	return alg.AIFPre
}
