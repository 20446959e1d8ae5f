// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"testing"
	"time"
)

func TestResolvePeriod_Monthly(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		start, end := ResolvePeriod(PeriodTypeMonthly, 2024, 3)

		wantStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)

		if !start.Equal(wantStart) {
			t.Errorf("expected start %v, got %v", wantStart, start)
		}
		if !end.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, end)
		}
	})

	t.Run("leap February ends on the 29th", func(t *testing.T) {
		_, end := ResolvePeriod(PeriodTypeMonthly, 2024, 2)

		if end.Day() != 29 {
			t.Errorf("expected last day 29, got %d", end.Day())
		}
	})

	t.Run("non-leap February ends on the 28th", func(t *testing.T) {
		_, end := ResolvePeriod(PeriodTypeMonthly, 2023, 2)

		if end.Day() != 28 {
			t.Errorf("expected last day 28, got %d", end.Day())
		}
	})

	t.Run("December rolls into the next year correctly", func(t *testing.T) {
		start, end := ResolvePeriod(PeriodTypeMonthly, 2024, 12)

		if start.Month() != time.December || end.Month() != time.December {
			t.Errorf("expected December bounds, got %v .. %v", start, end)
		}
		if end.Day() != 31 {
			t.Errorf("expected last day 31, got %d", end.Day())
		}
	})
}

func TestResolvePeriod_Quarterly(t *testing.T) {
	cases := []struct {
		month      int
		wantStartM time.Month
		wantEndM   time.Month
		wantEndDay int
	}{
		{1, time.January, time.March, 31},
		{2, time.January, time.March, 31},
		{3, time.January, time.March, 31},
		{4, time.April, time.June, 30},
		{6, time.April, time.June, 30},
		{7, time.July, time.September, 30},
		{10, time.October, time.December, 31},
		{12, time.October, time.December, 31},
	}

	for _, tc := range cases {
		start, end := ResolvePeriod(PeriodTypeQuarterly, 2024, tc.month)

		if start.Month() != tc.wantStartM {
			t.Errorf("month %d: expected quarter start month %v, got %v", tc.month, tc.wantStartM, start.Month())
		}
		if end.Month() != tc.wantEndM || end.Day() != tc.wantEndDay {
			t.Errorf("month %d: expected quarter end %v %d, got %v %d", tc.month, tc.wantEndM, tc.wantEndDay, end.Month(), end.Day())
		}

		// A quarter always spans exactly three calendar months.
		span := int(end.Month()) - int(start.Month()) + 1
		if span != 3 {
			t.Errorf("month %d: expected a 3-month span, got %d", tc.month, span)
		}
	}
}

func TestResolvePeriod_Yearly(t *testing.T) {
	start, end := ResolvePeriod(PeriodTypeYearly, 2024, 7)

	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("expected start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("expected end %v, got %v", wantEnd, end)
	}
}

func TestResolvePeriod_StartNeverAfterEnd(t *testing.T) {
	for _, pt := range []PeriodType{PeriodTypeMonthly, PeriodTypeQuarterly, PeriodTypeYearly} {
		for month := 1; month <= 12; month++ {
			start, end := ResolvePeriod(pt, 2025, month)
			if start.After(end) {
				t.Errorf("%s month %d: start %v after end %v", pt, month, start, end)
			}
		}
	}
}

func TestResolvePeriod_OutOfRangeMonthNormalizes(t *testing.T) {
	// Out-of-range months are not rejected; they roll through time.Date
	// normalization. Month 13 of 2024 is January 2025.
	start, end := ResolvePeriod(PeriodTypeMonthly, 2024, 13)

	if start.Year() != 2025 || start.Month() != time.January {
		t.Errorf("expected Jan 2025 start, got %v", start)
	}
	if start.After(end) {
		t.Errorf("start %v after end %v", start, end)
	}
}

func TestMonthsBefore(t *testing.T) {
	cases := []struct {
		year, month, offset int
		wantYear, wantMonth int
	}{
		{2024, 6, 0, 2024, 6},
		{2024, 6, 5, 2024, 1},
		{2024, 6, 6, 2023, 12},
		{2024, 1, 1, 2023, 12},
		{2024, 3, 15, 2022, 12},
		{2024, 3, 23, 2022, 4},
	}

	for _, tc := range cases {
		gotYear, gotMonth := monthsBefore(tc.year, tc.month, tc.offset)
		if gotYear != tc.wantYear || gotMonth != tc.wantMonth {
			t.Errorf("monthsBefore(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tc.year, tc.month, tc.offset, gotYear, gotMonth, tc.wantYear, tc.wantMonth)
		}
	}
}
