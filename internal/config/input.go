package config

import (
	"fmt"
	"os"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/cskerritt/economic-loss-calculator-sub000/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of case input files. Validation here is
// boundary sanity checking only: the engine itself tolerates degenerate input
// and never fails, so everything rejected here is a courtesy to the operator,
// not a calculation precondition.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a case document from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Case, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates a YAML case document
func (ip *InputParser) Parse(data []byte) (*domain.Case, error) {
	var c domain.Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateCase(&c); err != nil {
		return nil, fmt.Errorf("case validation failed: %w", err)
	}
	return &c, nil
}

// ValidateCase validates the loaded case document
func (ip *InputParser) ValidateCase(c *domain.Case) error {
	if err := ip.validateCaseInfo(&c.CaseInfo); err != nil {
		return err
	}
	if err := ip.validateEarnings(&c.Earnings); err != nil {
		return err
	}
	if err := ip.validateHousehold(&c.Household); err != nil {
		return err
	}
	for i, item := range c.LifeCarePlan {
		if err := ip.validateLcpItem(i, &item); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateCaseInfo(info *domain.CaseInfo) error {
	switch info.CaseType {
	case domain.PersonalInjury, domain.WrongfulDeath, "":
	default:
		return fmt.Errorf("case type must be %q or %q, got %q",
			domain.PersonalInjury, domain.WrongfulDeath, info.CaseType)
	}
	// Dates may be absent (the engine zeroes the derived spans), but a
	// present date must be well-formed so a typo is caught here rather than
	// silently collapsing the damages to zero.
	for name, value := range map[string]string{
		"birth_date":  info.BirthDate,
		"injury_date": info.InjuryDate,
		"trial_date":  info.TrialDate,
	} {
		if value == "" {
			continue
		}
		if _, ok := dateutil.ParseDate(value); !ok {
			return fmt.Errorf("%s %q is not a valid yyyy-mm-dd date", name, value)
		}
	}
	if info.RetirementAge.IsNegative() {
		return fmt.Errorf("retirement age cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateEarnings(ep *domain.EarningsParams) error {
	if ep.BaseEarnings.IsNegative() {
		return fmt.Errorf("base earnings cannot be negative")
	}
	if ep.ResidualEarnings.IsNegative() {
		return fmt.Errorf("residual earnings cannot be negative")
	}
	if ep.WorkLifeExpectancy.IsNegative() {
		return fmt.Errorf("work-life expectancy cannot be negative")
	}
	if ep.DiscountRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("discount rate above 20%% looks unrealistic")
	}
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"unemployment_rate", ep.UnemploymentRate},
		{"ui_replacement_rate", ep.UIReplacementRate},
		{"federal_tax_rate", ep.FederalTaxRate},
		{"state_tax_rate", ep.StateTaxRate},
		{"consumption_pre", ep.ConsumptionPre},
		{"consumption_post", ep.ConsumptionPost},
	} {
		if rate.value.IsNegative() || rate.value.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s must be a fraction between 0 and 1", rate.name)
		}
	}
	for i, fb := range ep.FringeBenefits {
		if fb.Amount.IsNegative() {
			return fmt.Errorf("fringe benefit %d (%s): amount cannot be negative", i, fb.Name)
		}
	}
	if ep.PJIAge != nil && ep.PJIAge.IsNegative() {
		return fmt.Errorf("pji_age cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateHousehold(hh *domain.HhServices) error {
	if !hh.Active {
		return nil
	}
	if hh.HoursPerWeek.IsNegative() {
		return fmt.Errorf("household hours per week cannot be negative")
	}
	if hh.HourlyRate.IsNegative() {
		return fmt.Errorf("household hourly rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateLcpItem(i int, item *domain.LcpItem) error {
	if item.Name == "" {
		return fmt.Errorf("life care plan item %d: name is required", i)
	}
	if item.BaseCost.IsNegative() {
		return fmt.Errorf("life care plan item %d (%s): base cost cannot be negative", i, item.Name)
	}
	if r, ok := item.Frequency.(domain.Recurring); ok && r.Interval < 1 {
		return fmt.Errorf("life care plan item %d (%s): recurring interval must be at least 1", i, item.Name)
	}
	if cy, ok := item.Frequency.(domain.CustomYears); ok && len(cy.Years) == 0 {
		return fmt.Errorf("life care plan item %d (%s): custom frequency requires at least one year", i, item.Name)
	}
	return nil
}
