// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/domain/entity"
)

// fakeReportRepository serves canned cards filtered by the requested range.
type fakeReportRepository struct {
	cards  []*entity.StudyCard
	counts GlobalCounts

	// Recorded calls, to assert the single-range-query behavior.
	rangeCalls []struct{ start, end time.Time }
}

func (f *fakeReportRepository) FindCardsInPeriod(_ context.Context, start, end time.Time) ([]*entity.StudyCard, error) {
	f.rangeCalls = append(f.rangeCalls, struct{ start, end time.Time }{start, end})

	var matched []*entity.StudyCard
	for _, c := range f.cards {
		if !c.CreatedAt.Before(start) && !c.CreatedAt.After(end) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeReportRepository) CountCards(_ context.Context) (*GlobalCounts, error) {
	counts := f.counts
	return &counts, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetHistoryUseCase_Execute(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	t.Run("returns exactly N entries most recent first", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewGetHistoryUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetHistoryInput{Months: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Summaries) != 6 {
			t.Fatalf("expected 6 summaries, got %d", len(output.Summaries))
		}

		// Entry i is exactly i calendar months before entry 0.
		for i, s := range output.Summaries {
			wantYear, wantMonth := monthsBefore(2024, 6, i)
			if s.PeriodStart.Year() != wantYear || int(s.PeriodStart.Month()) != wantMonth {
				t.Errorf("entry %d: expected %d-%02d, got %v", i, wantYear, wantMonth, s.PeriodStart)
			}
			if s.PeriodStart.Day() != 1 {
				t.Errorf("entry %d: expected first-of-month start, got %v", i, s.PeriodStart)
			}
		}
	})

	t.Run("issues a single range query for the whole window", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewGetHistoryUseCaseWithClock(repo, fixedClock(now))

		if _, err := uc.Execute(context.Background(), GetHistoryInput{Months: 12}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.rangeCalls) != 1 {
			t.Fatalf("expected 1 range query, got %d", len(repo.rangeCalls))
		}
		call := repo.rangeCalls[0]
		wantStart := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC)
		if !call.start.Equal(wantStart) || !call.end.Equal(wantEnd) {
			t.Errorf("expected window %v .. %v, got %v .. %v", wantStart, wantEnd, call.start, call.end)
		}
	})

	t.Run("buckets cards into their calendar months", func(t *testing.T) {
		mayCost := decimal.RequireFromString("80")
		juneCost := decimal.RequireFromString("20")
		repo := &fakeReportRepository{
			cards: []*entity.StudyCard{
				{Title: "a", EstimatedCost: &juneCost, IsCompleted: true, CreatedAt: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)},
				{Title: "b", EstimatedCost: &mayCost, CreatedAt: time.Date(2024, time.May, 28, 0, 0, 0, 0, time.UTC)},
			},
		}
		uc := NewGetHistoryUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetHistoryInput{Months: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		june := output.Summaries[0]
		if !june.TotalRevenue.Equal(juneCost) {
			t.Errorf("June: expected revenue 20, got %s", june.TotalRevenue)
		}
		may := output.Summaries[1]
		if !may.TotalExpenses.Equal(mayCost) {
			t.Errorf("May: expected expenses 80, got %s", may.TotalExpenses)
		}
		april := output.Summaries[2]
		if !april.TotalExpenses.Equal(decimal.Zero) || april.PeriodItemCount != 0 {
			t.Errorf("April: expected empty summary, got %+v", april)
		}
	})

	t.Run("clamps months to the maximum", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewGetHistoryUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetHistoryInput{Months: 48})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Summaries) != MaxHistoryMonths {
			t.Errorf("expected %d summaries, got %d", MaxHistoryMonths, len(output.Summaries))
		}
	})

	t.Run("non-positive months yield an empty series", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewGetHistoryUseCaseWithClock(repo, fixedClock(now))

		for _, months := range []int{0, -3} {
			output, err := uc.Execute(context.Background(), GetHistoryInput{Months: months})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(output.Summaries) != 0 {
				t.Errorf("months=%d: expected empty series, got %d entries", months, len(output.Summaries))
			}
		}
		if len(repo.rangeCalls) != 0 {
			t.Errorf("expected no queries for empty series, got %d", len(repo.rangeCalls))
		}
	})

	t.Run("window rolls across year boundaries", func(t *testing.T) {
		janNow := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
		repo := &fakeReportRepository{}
		uc := NewGetHistoryUseCaseWithClock(repo, fixedClock(janNow))

		output, err := uc.Execute(context.Background(), GetHistoryInput{Months: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Summaries[1].PeriodStart.Year() != 2024 || output.Summaries[1].PeriodStart.Month() != time.December {
			t.Errorf("expected second entry Dec 2024, got %v", output.Summaries[1].PeriodStart)
		}
	})
}
