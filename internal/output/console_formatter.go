package output

import (
	"fmt"
	"strings"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	moneyfmt "github.com/cskerritt/economic-loss-calculator-sub000/pkg/decimal"
)

// ConsoleFormatter renders the on-screen damages summary.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.CaseResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("ECONOMIC LOSS SUMMARY\n")
	b.WriteString(strings.Repeat("=", 74) + "\n\n")

	d := result.Dates
	b.WriteString("Dates and Spans\n")
	fmt.Fprintf(&b, "  Age at injury:              %s\n", d.AgeAtInjury.StringFixed(1))
	fmt.Fprintf(&b, "  Age at trial:               %s\n", d.AgeAtTrial.StringFixed(1))
	fmt.Fprintf(&b, "  Current age:                %s\n", d.CurrentAge.StringFixed(1))
	fmt.Fprintf(&b, "  Past years (injury-trial):  %s\n", d.PastYears.StringFixed(2))
	fmt.Fprintf(&b, "  Years to final separation:  %s\n\n", d.YearsToFinalSeparation.StringFixed(2))

	f := result.Factors
	b.WriteString("Adjustment Factors\n")
	fmt.Fprintf(&b, "  Work-life factor:           %s\n", moneyfmt.FormatFactor(f.WorkLifeFactor))
	fmt.Fprintf(&b, "  Unemployment factor:        %s\n", moneyfmt.FormatFactor(f.UnemploymentFactor))
	fmt.Fprintf(&b, "  Unemployment-adjusted base: %s\n", moneyfmt.FormatFactor(f.UnemploymentAdjusted))
	fmt.Fprintf(&b, "  Fringe rate:                %s\n", moneyfmt.FormatPercent(f.FringeRate))
	fmt.Fprintf(&b, "  Gross with fringes:         %s\n", moneyfmt.FormatFactor(f.GrossWithFringes))
	fmt.Fprintf(&b, "  Combined tax rate:          %s\n", moneyfmt.FormatPercent(f.CombinedTaxRate))
	fmt.Fprintf(&b, "  Tax on base:                %s\n", moneyfmt.FormatFactor(f.TaxOnBase))
	if !f.AIFPre.Equal(f.AIFPost) {
		fmt.Fprintf(&b, "  Adjusted earnings factor:   %s (pre) / %s (post)\n\n",
			moneyfmt.FormatFactor(f.AIFPre), moneyfmt.FormatFactor(f.AIFPost))
	} else {
		fmt.Fprintf(&b, "  Adjusted earnings factor:   %s\n\n", moneyfmt.FormatFactor(f.AIFPre))
	}

	e := result.Earnings
	b.WriteString("Earnings Loss\n")
	fmt.Fprintf(&b, "  Past loss (%d years):        %s\n", len(e.Past), moneyfmt.FormatCurrency(e.TotalPastLoss))
	fmt.Fprintf(&b, "  Future loss, nominal:       %s\n", moneyfmt.FormatCurrency(e.TotalFutureNominal))
	fmt.Fprintf(&b, "  Future loss, present value: %s\n\n", moneyfmt.FormatCurrency(e.TotalFuturePV))

	if result.Household.Active {
		b.WriteString("Household Services\n")
		fmt.Fprintf(&b, "  Nominal (%d years):          %s\n", result.Household.Years, moneyfmt.FormatCurrency(result.Household.TotalNominal))
		fmt.Fprintf(&b, "  Present value:              %s\n\n", moneyfmt.FormatCurrency(result.Household.TotalPV))
	}

	if len(result.LifeCarePlan.Items) > 0 {
		b.WriteString("Life Care Plan\n")
		for _, item := range result.LifeCarePlan.Items {
			fmt.Fprintf(&b, "  %-28s %s (PV %s)\n", item.Name,
				moneyfmt.FormatCurrency(item.TotalNominal), moneyfmt.FormatCurrency(item.TotalPV))
		}
		fmt.Fprintf(&b, "  %-28s %s (PV %s)\n\n", "Total",
			moneyfmt.FormatCurrency(result.LifeCarePlan.TotalNominal),
			moneyfmt.FormatCurrency(result.LifeCarePlan.TotalPV))
	}

	if len(result.Scenarios) > 0 {
		b.WriteString("Retirement Scenarios\n")
		fmt.Fprintf(&b, "  %-26s %9s %10s %14s %14s %16s\n",
			"Scenario", "Ret. age", "YFS", "Past loss", "Future PV", "Grand total")
		for _, s := range result.Scenarios {
			marker := " "
			if !s.Included {
				marker = "x"
			}
			fmt.Fprintf(&b, " %s%-26s %9s %10s %14s %14s %16s\n",
				marker, s.Label,
				s.RetirementAge.StringFixed(1),
				s.YearsToFinalSeparation.StringFixed(2),
				moneyfmt.FormatCurrency(s.TotalPastLoss),
				moneyfmt.FormatCurrency(s.TotalFuturePV),
				moneyfmt.FormatCurrency(s.GrandTotal))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", 74) + "\n")
	fmt.Fprintf(&b, "GRAND TOTAL: %s\n", moneyfmt.FormatCurrency(result.GrandTotal))

	return []byte(b.String()), nil
}
