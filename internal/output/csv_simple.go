package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.CaseResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Kind", "RetirementAge", "YFS", "WLF", "PastLoss", "FuturePV", "HouseholdPV", "LifeCarePlanPV", "GrandTotal", "Included"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range result.Scenarios {
		row := []string{
			s.Label,
			string(s.Kind),
			s.RetirementAge.StringFixed(1),
			s.YearsToFinalSeparation.StringFixed(4),
			s.WorkLifeFactor.StringFixed(4),
			s.TotalPastLoss.StringFixed(2),
			s.TotalFuturePV.StringFixed(2),
			s.HouseholdPV.StringFixed(2),
			s.LifeCarePlanPV.StringFixed(2),
			s.GrandTotal.StringFixed(2),
			strconv.FormatBool(s.Included),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// EarningsScheduleCSV renders the detailed earnings schedule as CSV.
func EarningsScheduleCSV(rows []domain.EarningsScheduleRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "Period", "Fraction", "ButFor", "Offset", "NetLoss", "DiscountFactor", "PresentValue", "CumulativePV"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			r.Age.StringFixed(1),
			string(r.Period),
			r.Fraction.StringFixed(4),
			r.ButForEarnings.StringFixed(2),
			r.Offset.StringFixed(2),
			r.NetLoss.StringFixed(2),
			r.DiscountFactor.StringFixed(6),
			r.PresentValue.StringFixed(2),
			r.CumulativePV.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// HouseholdScheduleCSV renders the household-services schedule as CSV.
func HouseholdScheduleCSV(rows []domain.HouseholdScheduleRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "YearIndex", "Nominal", "DiscountFactor", "PresentValue", "CumulativePV"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.YearIndex),
			r.Nominal.StringFixed(2),
			r.DiscountFactor.StringFixed(6),
			r.PresentValue.StringFixed(2),
			r.CumulativePV.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// LcpScheduleCSV renders the life-care-plan schedule as CSV, one row per plan
// year with aggregate figures.
func LcpScheduleCSV(rows []domain.LcpScheduleRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "PlanYear", "ActiveItems", "Nominal", "PresentValue", "CumulativePV"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.PlanYear),
			strconv.Itoa(len(r.Items)),
			r.Nominal.StringFixed(2),
			r.PresentValue.StringFixed(2),
			r.CumulativePV.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
