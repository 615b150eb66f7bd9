package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the damages calculation. Every method is a
// pure transformation of its inputs: the engine never mutates the supplied
// case, performs no I/O, and identical inputs yield bit-identical outputs, so
// concurrent callers need no coordination.
type CalculationEngine struct {
	// Categories is the CPI rate table applied to life-care-plan items.
	// Treated as immutable once set.
	Categories CategoryTable
	// AsOf anchors "current age" derivation. Fixed at construction so a run
	// is reproducible; callers may pin it for testing.
	AsOf   time.Time
	Logger Logger
}

// NewCalculationEngine creates an engine with the shipped category table.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Categories: DefaultCategoryTable(),
		AsOf:       time.Now().UTC(),
		Logger:     NopLogger{},
	}
}

// NewCalculationEngineWithTable creates an engine with an explicit CPI rate
// table, for deterministic testing with alternate rates.
func NewCalculationEngineWithTable(table CategoryTable) *CalculationEngine {
	engine := NewCalculationEngine()
	engine.Categories = table
	return engine
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunCase computes the complete damages result for one case: derived dates,
// the factor breakdown, the earnings-loss projection, household and
// life-care-plan valuations, the retirement-age scenario comparison, and the
// grand total. Insufficient input never fails the run; it degrades the
// affected figures to zero.
func (ce *CalculationEngine) RunCase(ctx context.Context, c *domain.Case) (*domain.CaseResult, error) {
	if c == nil {
		return nil, fmt.Errorf("case is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dates := ComputeDateCalc(c.CaseInfo, ce.AsOf)
	if dates.IsZero() {
		ce.Logger.Warnf("case %q: missing or malformed anchor dates, damages degrade to zero", c.CaseInfo.PlaintiffName)
	}

	alg := ComputeAlgebraic(c.Earnings, dates, c.UnionMode, c.CaseInfo.IsWrongfulDeath())
	proj := ProjectEarnings(c, alg, dates)
	hhs := ValueHouseholdServices(c.Household, dates, c.Earnings.NoDiscount)
	lcp := ValueLifeCarePlan(c.LifeCarePlan, c.Earnings.DiscountRate, ce.Categories, c.Earnings.NoDiscount)
	scenarios := ProjectScenarios(c, dates, ce.Categories)

	result := &domain.CaseResult{
		Dates:        dates,
		Factors:      alg,
		Earnings:     proj,
		Household:    hhs,
		LifeCarePlan: lcp,
		Scenarios:    scenarios,
		GrandTotal:   GrandTotal(proj, hhs, lcp),
	}

	ce.Logger.Debugf("case %q: past loss %s, future PV %s, grand total %s",
		c.CaseInfo.PlaintiffName,
		proj.TotalPastLoss.StringFixed(2),
		proj.TotalFuturePV.StringFixed(2),
		result.GrandTotal.StringFixed(2))

	return result, nil
}

// GrandTotal sums the earnings loss with the household and life-care-plan
// present values. Household services contribute only while the claim is
// active. Pure summation; no independent logic.
func GrandTotal(proj domain.Projection, hhs domain.HhsData, lcp domain.LcpData) decimal.Decimal {
	total := proj.TotalPastLoss.Add(proj.TotalFuturePV)
	if hhs.Active {
		total = total.Add(hhs.TotalPV)
	}
	return total.Add(lcp.TotalPV)
}
