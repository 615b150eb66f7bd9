package domain

import (
	"github.com/shopspring/decimal"
)

// SchedulePeriod marks which side of the trial date a schedule row falls on.
type SchedulePeriod string

const (
	PeriodPast   SchedulePeriod = "past"
	PeriodFuture SchedulePeriod = "future"
)

// EarningsScheduleRow is one fully expanded, calendar-year-indexed row of the
// earnings-loss schedule, suitable for direct rendering.
type EarningsScheduleRow struct {
	Year     int             `json:"year"`
	Age      decimal.Decimal `json:"age"`
	Period   SchedulePeriod  `json:"period"`
	Fraction decimal.Decimal `json:"fraction"`

	ButForEarnings decimal.Decimal `json:"but_for_earnings"`
	Offset         decimal.Decimal `json:"offset"`
	NetLoss        decimal.Decimal `json:"net_loss"`

	DiscountFactor decimal.Decimal `json:"discount_factor"`
	PresentValue   decimal.Decimal `json:"present_value"`
	CumulativePV   decimal.Decimal `json:"cumulative_pv"`
}

// HouseholdScheduleRow is one year of the household-services schedule.
type HouseholdScheduleRow struct {
	Year      int `json:"year"`
	YearIndex int `json:"year_index"`

	Nominal        decimal.Decimal `json:"nominal"`
	DiscountFactor decimal.Decimal `json:"discount_factor"`
	PresentValue   decimal.Decimal `json:"present_value"`
	CumulativePV   decimal.Decimal `json:"cumulative_pv"`
}

// LcpRowItem is one item's contribution to a life-care-plan schedule year.
type LcpRowItem struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Nominal      decimal.Decimal `json:"nominal"`
	PresentValue decimal.Decimal `json:"present_value"`
}

// LcpScheduleRow is one plan year of the life-care-plan schedule with every
// active item's inflated cost and present value.
type LcpScheduleRow struct {
	Year      int `json:"year"`
	PlanYear  int `json:"plan_year"`

	Items        []LcpRowItem    `json:"items"`
	Nominal      decimal.Decimal `json:"nominal"`
	PresentValue decimal.Decimal `json:"present_value"`
	CumulativePV decimal.Decimal `json:"cumulative_pv"`
}
