package calculation

import (
	"time"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/cskerritt/economic-loss-calculator-sub000/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ComputeDateCalc derives ages and projection spans from the case anchor
// dates. If the birth, injury or trial date is absent or malformed the whole
// result is zeroed; downstream factors then collapse to zero instead of
// failing.
//
// Ages are reported to one decimal on a 365.25-day year. PastYears runs from
// injury to trial. YearsToFinalSeparation runs from trial to the assumed
// retirement age, so the future projection horizon picks up exactly where the
// past schedule ends; it is chronological, not probability-weighted.
func ComputeDateCalc(info domain.CaseInfo, asOf time.Time) domain.DateCalc {
	birth, okBirth := dateutil.ParseDate(info.BirthDate)
	injury, okInjury := dateutil.ParseDate(info.InjuryDate)
	trial, okTrial := dateutil.ParseDate(info.TrialDate)
	if !okBirth || !okInjury || !okTrial {
		return domain.DateCalc{}
	}

	ageAtInjury := dateutil.AgeAt(birth, injury)
	ageAtTrial := dateutil.AgeAt(birth, trial)
	currentAge := dateutil.AgeAt(birth, asOf)

	pastYears := dateutil.YearsBetween(injury, trial)
	if pastYears < 0 {
		pastYears = 0
	}

	yfs := info.RetirementAge.InexactFloat64() - ageAtTrial
	if yfs < 0 {
		yfs = 0
	}

	return domain.DateCalc{
		AgeAtInjury:            decimal.NewFromFloat(ageAtInjury).Round(1),
		AgeAtTrial:             decimal.NewFromFloat(ageAtTrial).Round(1),
		CurrentAge:             decimal.NewFromFloat(currentAge).Round(1),
		PastYears:              decimal.NewFromFloat(pastYears),
		YearsToFinalSeparation: decimal.NewFromFloat(yfs),
		InjuryYear:             injury.Year(),
		TrialYear:              trial.Year(),
	}
}
