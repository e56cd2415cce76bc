// Package ledger derives read-only views from the household and finance
// collections. Every function is pure and takes "today" explicitly.
package ledger

import (
	"time"

	"household-ledger/internal/models"
)

// Day truncates t to a calendar date string.
func Day(t time.Time) string {
	return t.Format(models.DateLayout)
}

// datePart accepts "YYYY-MM-DD" and longer ISO timestamps.
func datePart(s string) string {
	if len(s) > len(models.DateLayout) {
		return s[:len(models.DateLayout)]
	}
	return s
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(models.DateLayout, datePart(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from today to date; negative when
// date is in the past.
func DaysBetween(today time.Time, date string) (int, bool) {
	d, ok := parseDay(date)
	if !ok {
		return 0, false
	}
	return int(d.Sub(midnight(today)).Hours() / 24), true
}

func addDays(today time.Time, n int) string {
	return Day(midnight(today).AddDate(0, 0, n))
}

// DateRange limits agenda views to a calendar period around today.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// ParseDateRange also accepts the Portuguese labels.
func ParseDateRange(s string) DateRange {
	switch s {
	case "today", "hoje":
		return RangeToday
	case "week", "semana":
		return RangeWeek
	case "month", "mes", "mês":
		return RangeMonth
	}
	return RangeAll
}

// Bounds returns the first and last day of r. Weeks start on Sunday.
func (r DateRange) Bounds(today time.Time) (from, to string, ok bool) {
	d := midnight(today)
	switch r {
	case RangeToday:
		return Day(d), Day(d), true
	case RangeWeek:
		start := d.AddDate(0, 0, -int(d.Weekday()))
		return Day(start), Day(start.AddDate(0, 0, 6)), true
	case RangeMonth:
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Day(start), Day(start.AddDate(0, 1, -1)), true
	}
	return "", "", false
}

func isAll(v string) bool {
	switch v {
	case "", "all", "todos", "todas":
		return true
	}
	return false
}
