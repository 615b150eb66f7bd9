package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CaseType distinguishes the two damages variants. Wrongful-death cases apply a
// personal-consumption offset per era; personal-injury cases never do.
type CaseType string

const (
	PersonalInjury CaseType = "personal_injury"
	WrongfulDeath  CaseType = "wrongful_death"
)

// CaseInfo carries plaintiff identity and the anchor dates of the matter.
// Dates are ISO yyyy-mm-dd strings; an empty or malformed date is treated as
// absent and zeroes the derived date calculations rather than failing.
type CaseInfo struct {
	PlaintiffName string   `yaml:"plaintiff_name" json:"plaintiff_name"`
	Matter        string   `yaml:"matter,omitempty" json:"matter,omitempty"`
	Jurisdiction  string   `yaml:"jurisdiction,omitempty" json:"jurisdiction,omitempty"`
	Venue         string   `yaml:"venue,omitempty" json:"venue,omitempty"`
	CaseType      CaseType `yaml:"case_type" json:"case_type"`

	BirthDate  string `yaml:"birth_date" json:"birth_date"`
	InjuryDate string `yaml:"injury_date" json:"injury_date"`
	TrialDate  string `yaml:"trial_date" json:"trial_date"`

	RetirementAge  decimal.Decimal `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy decimal.Decimal `yaml:"life_expectancy,omitempty" json:"life_expectancy,omitempty"`
}

// IsWrongfulDeath reports whether the consumption offset applies.
func (ci *CaseInfo) IsWrongfulDeath() bool {
	return ci.CaseType == WrongfulDeath
}

// FringeBenefit is one itemized flat-dollar benefit used in union mode.
type FringeBenefit struct {
	Name   string          `yaml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// EraSplit switches the wage-growth rate and adjustment multiplier from the
// given calendar year onward.
type EraSplit struct {
	Year           int             `yaml:"year" json:"year"`
	WageGrowthRate decimal.Decimal `yaml:"wage_growth_rate" json:"wage_growth_rate"`
}

// EarningsParams holds every economic input to the adjustment-factor pipeline
// and the earnings projection. All rates are fractions (0.05 = 5%).
type EarningsParams struct {
	BaseEarnings     decimal.Decimal `yaml:"base_earnings" json:"base_earnings"`
	ResidualEarnings decimal.Decimal `yaml:"residual_earnings" json:"residual_earnings"`

	WorkLifeExpectancy decimal.Decimal `yaml:"work_life_expectancy" json:"work_life_expectancy"`
	WageGrowthRate     decimal.Decimal `yaml:"wage_growth_rate" json:"wage_growth_rate"`
	DiscountRate       decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
	// NoDiscount disables present-value reduction; nominal and PV totals then match.
	NoDiscount bool `yaml:"no_discount,omitempty" json:"no_discount,omitempty"`

	FringeRate     decimal.Decimal `yaml:"fringe_rate,omitempty" json:"fringe_rate,omitempty"`
	FringeBenefits []FringeBenefit `yaml:"fringe_benefits,omitempty" json:"fringe_benefits,omitempty"`

	UnemploymentRate  decimal.Decimal `yaml:"unemployment_rate,omitempty" json:"unemployment_rate,omitempty"`
	UIReplacementRate decimal.Decimal `yaml:"ui_replacement_rate,omitempty" json:"ui_replacement_rate,omitempty"`

	FederalTaxRate decimal.Decimal `yaml:"federal_tax_rate,omitempty" json:"federal_tax_rate,omitempty"`
	StateTaxRate   decimal.Decimal `yaml:"state_tax_rate,omitempty" json:"state_tax_rate,omitempty"`

	EraSplit *EraSplit `yaml:"era_split,omitempty" json:"era_split,omitempty"`

	// Wrongful-death personal consumption, per era. Ignored for personal injury.
	ConsumptionPre  decimal.Decimal `yaml:"consumption_pre,omitempty" json:"consumption_pre,omitempty"`
	ConsumptionPost decimal.Decimal `yaml:"consumption_post,omitempty" json:"consumption_post,omitempty"`

	// PJIAge, when set, adds a permanent-job-incapacity retirement-age scenario.
	PJIAge *decimal.Decimal `yaml:"pji_age,omitempty" json:"pji_age,omitempty"`
}

// HhServices describes lost household-service capacity.
type HhServices struct {
	Active       bool            `yaml:"active" json:"active"`
	HoursPerWeek decimal.Decimal `yaml:"hours_per_week" json:"hours_per_week"`
	HourlyRate   decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
	GrowthRate   decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	DiscountRate decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
}

// Frequency is the closed set of life-care-plan scheduling modes. Exactly one
// variant applies per item; invalid mode/payload combinations cannot be built.
type Frequency interface {
	frequency()
	// Mode returns the wire name of the variant.
	Mode() string
}

// Annual schedules the item every year from its start through its end year.
type Annual struct{}

// OneTime schedules the item in its start year only.
type OneTime struct{}

// Recurring schedules the item every Interval years from its start year.
type Recurring struct {
	Interval int `yaml:"interval" json:"interval"`
}

// CustomYears schedules the item in an explicit set of plan years, overriding
// the item's start/end range entirely.
type CustomYears struct {
	Years []int `yaml:"years" json:"years"`
}

func (Annual) frequency()      {}
func (OneTime) frequency()     {}
func (Recurring) frequency()   {}
func (CustomYears) frequency() {}

func (Annual) Mode() string      { return "annual" }
func (OneTime) Mode() string     { return "onetime" }
func (Recurring) Mode() string   { return "recurring" }
func (CustomYears) Mode() string { return "custom" }

// LcpItem is one life-care-plan entry. Plan years are 1-based: year 1 is the
// first year of care, inflated from the base cost by the category CPI rate.
type LcpItem struct {
	ID        string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name      string          `yaml:"name" json:"name"`
	Category  string          `yaml:"category" json:"category"`
	BaseCost  decimal.Decimal `yaml:"base_cost" json:"base_cost"`
	StartYear int             `yaml:"start_year" json:"start_year"`
	EndYear   int             `yaml:"end_year" json:"end_year"`
	Frequency Frequency       `yaml:"-" json:"-"`
}

// lcpItemWire is the flat serialized form of LcpItem; the frequency variant is
// reconstructed from the mode string plus its payload fields.
type lcpItemWire struct {
	ID          string          `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string          `yaml:"name" json:"name"`
	Category    string          `yaml:"category" json:"category"`
	BaseCost    decimal.Decimal `yaml:"base_cost" json:"base_cost"`
	StartYear   int             `yaml:"start_year" json:"start_year"`
	EndYear     int             `yaml:"end_year" json:"end_year"`
	Frequency   string          `yaml:"frequency" json:"frequency"`
	Interval    int             `yaml:"interval,omitempty" json:"interval,omitempty"`
	CustomYears []int           `yaml:"custom_years,omitempty" json:"custom_years,omitempty"`
}

func (w *lcpItemWire) resolve() (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(w.Frequency)) {
	case "annual", "":
		return Annual{}, nil
	case "onetime", "one-time", "one_time":
		return OneTime{}, nil
	case "recurring":
		return Recurring{Interval: w.Interval}, nil
	case "custom", "custom_years":
		return CustomYears{Years: w.CustomYears}, nil
	default:
		return nil, fmt.Errorf("unknown frequency mode %q", w.Frequency)
	}
}

func (li *LcpItem) fromWire(w *lcpItemWire) error {
	freq, err := w.resolve()
	if err != nil {
		return err
	}
	li.ID = w.ID
	li.Name = w.Name
	li.Category = w.Category
	li.BaseCost = w.BaseCost
	li.StartYear = w.StartYear
	li.EndYear = w.EndYear
	li.Frequency = freq
	return nil
}

func (li LcpItem) toWire() lcpItemWire {
	w := lcpItemWire{
		ID:        li.ID,
		Name:      li.Name,
		Category:  li.Category,
		BaseCost:  li.BaseCost,
		StartYear: li.StartYear,
		EndYear:   li.EndYear,
		Frequency: "annual",
	}
	switch f := li.Frequency.(type) {
	case nil:
	case Recurring:
		w.Frequency = f.Mode()
		w.Interval = f.Interval
	case CustomYears:
		w.Frequency = f.Mode()
		w.CustomYears = f.Years
	default:
		w.Frequency = f.Mode()
	}
	return w
}

// UnmarshalYAML implements custom YAML unmarshaling for LcpItem
func (li *LcpItem) UnmarshalYAML(value *yaml.Node) error {
	var w lcpItemWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return li.fromWire(&w)
}

// MarshalYAML implements custom YAML marshaling for LcpItem
func (li LcpItem) MarshalYAML() (interface{}, error) {
	return li.toWire(), nil
}

// UnmarshalJSON implements custom JSON unmarshaling for LcpItem
func (li *LcpItem) UnmarshalJSON(data []byte) error {
	var w lcpItemWire
	if err := jsonUnmarshal(data, &w); err != nil {
		return err
	}
	return li.fromWire(&w)
}

// MarshalJSON implements custom JSON marshaling for LcpItem
func (li LcpItem) MarshalJSON() ([]byte, error) {
	return jsonMarshal(li.toWire())
}

// Case bundles every engine input for one damages calculation.
type Case struct {
	CaseInfo     CaseInfo       `yaml:"case_info" json:"case_info"`
	Earnings     EarningsParams `yaml:"earnings" json:"earnings"`
	Household    HhServices     `yaml:"household,omitempty" json:"household,omitempty"`
	LifeCarePlan []LcpItem      `yaml:"life_care_plan,omitempty" json:"life_care_plan,omitempty"`

	// ActualEarnings is the sparse calendar-year map of manually entered past
	// actual earnings. Values are raw strings as entered; unparseable entries
	// fall back to the residual-earnings offset.
	ActualEarnings map[int]string `yaml:"actual_earnings,omitempty" json:"actual_earnings,omitempty"`

	// UnionMode derives the fringe rate from itemized flat benefits instead of
	// the direct percentage.
	UnionMode bool `yaml:"union_mode,omitempty" json:"union_mode,omitempty"`
}
