package domain

import (
	"github.com/shopspring/decimal"
)

// DateCalc holds the derived ages and spans for a case. Ages are reported to
// one decimal; spans are unrounded. If any of the three anchor dates is absent
// or malformed every field is zero.
type DateCalc struct {
	AgeAtInjury decimal.Decimal `json:"age_at_injury"`
	AgeAtTrial  decimal.Decimal `json:"age_at_trial"`
	CurrentAge  decimal.Decimal `json:"current_age"`

	// PastYears is the injury-to-trial span; YearsToFinalSeparation is the
	// chronological injury-to-retirement span (unweighted, unlike WLE).
	PastYears              decimal.Decimal `json:"past_years"`
	YearsToFinalSeparation decimal.Decimal `json:"years_to_final_separation"`

	InjuryYear int `json:"injury_year"`
	TrialYear  int `json:"trial_year"`
}

// IsZero reports whether the calculation degenerated for lack of dates.
func (dc DateCalc) IsZero() bool {
	return dc.InjuryYear == 0 && dc.TrialYear == 0 &&
		dc.AgeAtInjury.IsZero() && dc.PastYears.IsZero() &&
		dc.YearsToFinalSeparation.IsZero()
}

// Algebraic is the ordered factor breakdown of the Tinari pipeline. Every
// value except the dollar-denominated FlatFringeAmount is a per-dollar
// fraction of gross base earnings.
type Algebraic struct {
	WorkLifeFactor       decimal.Decimal `json:"work_life_factor"`
	UnemploymentFactor   decimal.Decimal `json:"unemployment_factor"`
	UnemploymentAdjusted decimal.Decimal `json:"unemployment_adjusted"`

	FringeRate       decimal.Decimal `json:"fringe_rate"`
	FringeFactor     decimal.Decimal `json:"fringe_factor"`
	FlatFringeAmount decimal.Decimal `json:"flat_fringe_amount"`
	GrossWithFringes decimal.Decimal `json:"gross_with_fringes"`

	CombinedTaxRate decimal.Decimal `json:"combined_tax_rate"`
	TaxOnBase       decimal.Decimal `json:"tax_on_base"`
	AfterTax        decimal.Decimal `json:"after_tax"`

	ConsumptionPre  decimal.Decimal `json:"consumption_pre"`
	ConsumptionPost decimal.Decimal `json:"consumption_post"`

	// AIFPre and AIFPost are the final adjusted-income-factor multipliers per
	// era. Personal-injury cases carry a single multiplier in both fields.
	AIFPre  decimal.Decimal `json:"aif_pre"`
	AIFPost decimal.Decimal `json:"aif_post"`
}

// PastYearRow is one elapsed year of the earnings-loss projection.
type PastYearRow struct {
	Year           int             `json:"year"`
	YearIndex      int             `json:"year_index"`
	Fraction       decimal.Decimal `json:"fraction"`
	ButForEarnings decimal.Decimal `json:"but_for_earnings"`
	ActualOffset   decimal.Decimal `json:"actual_offset"`
	ManualOverride bool            `json:"manual_override"`
	NetLoss        decimal.Decimal `json:"net_loss"`
}

// FutureYearRow is one remaining year of the earnings-loss projection,
// mid-year discounted to present value.
type FutureYearRow struct {
	Year           int             `json:"year"`
	YearIndex      int             `json:"year_index"`
	Fraction       decimal.Decimal `json:"fraction"`
	ButForEarnings decimal.Decimal `json:"but_for_earnings"`
	ResidualOffset decimal.Decimal `json:"residual_offset"`
	NetLoss        decimal.Decimal `json:"net_loss"`
	DiscountFactor decimal.Decimal `json:"discount_factor"`
	PresentValue   decimal.Decimal `json:"present_value"`
}

// Projection is the full past-and-future earnings-loss schedule.
type Projection struct {
	Past   []PastYearRow   `json:"past"`
	Future []FutureYearRow `json:"future"`

	TotalPastLoss      decimal.Decimal `json:"total_past_loss"`
	TotalFutureNominal decimal.Decimal `json:"total_future_nominal"`
	TotalFuturePV      decimal.Decimal `json:"total_future_pv"`
}

// HhsData is the household-services valuation result.
type HhsData struct {
	Active       bool            `json:"active"`
	Years        int             `json:"years"`
	TotalNominal decimal.Decimal `json:"total_nominal"`
	TotalPV      decimal.Decimal `json:"total_pv"`
}

// LcpItemValuation is the per-item life-care-plan result.
type LcpItemValuation struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CPIRate      decimal.Decimal `json:"cpi_rate"`
	ActiveYears  []int           `json:"active_years"`
	TotalNominal decimal.Decimal `json:"total_nominal"`
	TotalPV      decimal.Decimal `json:"total_pv"`
}

// LcpData is the aggregated life-care-plan valuation.
type LcpData struct {
	Items        []LcpItemValuation `json:"items"`
	TotalNominal decimal.Decimal    `json:"total_nominal"`
	TotalPV      decimal.Decimal    `json:"total_pv"`
}

// ScenarioKind tags how a retirement-age alternative was derived.
type ScenarioKind string

const (
	ScenarioWLE ScenarioKind = "wle"
	ScenarioAge ScenarioKind = "age"
	ScenarioPJI ScenarioKind = "pji"
)

// ScenarioProjection is one retirement-age alternative with its own loss
// figures and combined grand total.
type ScenarioProjection struct {
	Label         string          `json:"label"`
	Kind          ScenarioKind    `json:"kind"`
	RetirementAge decimal.Decimal `json:"retirement_age"`

	YearsToFinalSeparation decimal.Decimal `json:"years_to_final_separation"`
	WorkLifeFactor         decimal.Decimal `json:"work_life_factor"`

	TotalPastLoss  decimal.Decimal `json:"total_past_loss"`
	TotalFuturePV  decimal.Decimal `json:"total_future_pv"`
	HouseholdPV    decimal.Decimal `json:"household_pv"`
	LifeCarePlanPV decimal.Decimal `json:"life_care_plan_pv"`
	GrandTotal     decimal.Decimal `json:"grand_total"`

	Included bool `json:"included"`
}

// CaseResult bundles every engine output for one calculation run.
type CaseResult struct {
	Dates        DateCalc             `json:"dates"`
	Factors      Algebraic            `json:"factors"`
	Earnings     Projection           `json:"earnings"`
	Household    HhsData              `json:"household"`
	LifeCarePlan LcpData              `json:"life_care_plan"`
	Scenarios    []ScenarioProjection `json:"scenarios"`
	GrandTotal   decimal.Decimal      `json:"grand_total"`
}
