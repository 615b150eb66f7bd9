package dateutil

import (
	"time"
)

// daysPerYear is the average Gregorian year length used for all age and span
// arithmetic. Forensic age figures are conventionally quoted on a 365.25-day year.
const daysPerYear = 365.25

// YearsBetween calculates the fractional number of years between two dates.
// Negative when toDate precedes fromDate.
func YearsBetween(fromDate, toDate time.Time) float64 {
	duration := toDate.Sub(fromDate)
	return duration.Hours() / 24 / daysPerYear
}

// AgeAt calculates the fractional age at a given date.
func AgeAt(birthDate, atDate time.Time) float64 {
	return YearsBetween(birthDate, atDate)
}

// WholeAge calculates the completed-years age at a given date.
func WholeAge(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// ParseDate parses a case date in ISO yyyy-mm-dd form. The zero time and false
// are returned for empty or malformed input; callers treat that as "date absent".
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// BeginningOfYear returns the first day of the year for a given date
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

// EndOfYear returns the last day of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 23, 59, 59, 999999999, date.Location())
}
