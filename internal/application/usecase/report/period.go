// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import "time"

// PeriodType represents the reporting period granularity.
type PeriodType string

const (
	PeriodTypeMonthly   PeriodType = "monthly"
	PeriodTypeQuarterly PeriodType = "quarterly"
	PeriodTypeYearly    PeriodType = "yearly"
)

// ResolvePeriod maps a (periodType, year, month) triple to an inclusive
// calendar interval: start at 00:00:00 of the first day and end at 23:59:59
// of the last day, in UTC.
//
// The last day of a period is derived with day-0-of-next-month arithmetic,
// which time.Date normalizes, so variable month lengths need no special
// casing. Out-of-range month or year values are not rejected; they roll
// through the same normalization.
func ResolvePeriod(periodType PeriodType, year, month int) (start, end time.Time) {
	switch periodType {
	case PeriodTypeYearly:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	case PeriodTypeQuarterly:
		quarter := (month + 2) / 3 // ceil(month/3)
		startMonth := (quarter-1)*3 + 1
		start = time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.Month(quarter*3)+1, 0, 23, 59, 59, 0, time.UTC)

	default: // monthly
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)
	}

	return start, end
}

// monthsBefore returns the (year, month) pair that is offset whole calendar
// months before the given pair, rolling year boundaries.
func monthsBefore(year, month, offset int) (int, int) {
	month -= offset
	for month <= 0 {
		month += 12
		year--
	}
	return year, month
}

// monthKey returns the bucket key for the calendar month containing t (UTC).
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
