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

func TestGetReportUseCase_Execute(t *testing.T) {
	now := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC)

	t.Run("monthly report for the worked example", func(t *testing.T) {
		repo := &fakeReportRepository{
			cards: []*entity.StudyCard{
				testCard("100", false, "", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
				testCard("50", true, "", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)),
			},
			counts: GlobalCounts{TotalItems: 2, TotalCompleted: 1},
		}
		uc := NewGetReportUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetReportInput{
			PeriodType: PeriodTypeMonthly,
			Year:       2024,
			Month:      3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.TotalExpenses.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected totalExpenses 150, got %s", output.Summary.TotalExpenses)
		}
		if !output.Summary.TotalRevenue.Equal(decimal.RequireFromString("50")) {
			t.Errorf("expected totalRevenue 50, got %s", output.Summary.TotalRevenue)
		}
		if !output.Summary.NetProfit.Equal(decimal.RequireFromString("-100")) {
			t.Errorf("expected netProfit -100, got %s", output.Summary.NetProfit)
		}
		if output.Metadata.CompletionRate != 50 {
			t.Errorf("expected completionRate 50, got %d", output.Metadata.CompletionRate)
		}
		if output.Metadata.PeriodItemCount != 2 || output.Metadata.PeriodCompletedCount != 1 {
			t.Errorf("unexpected period counts: %+v", output.Metadata)
		}
	})

	t.Run("defaults to current month and year", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewGetReportUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetReportInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.PeriodType != PeriodTypeMonthly {
			t.Errorf("expected monthly default, got %s", output.PeriodType)
		}
		if output.Summary.PeriodStart.Year() != 2024 || output.Summary.PeriodStart.Month() != time.March {
			t.Errorf("expected March 2024 period, got %v", output.Summary.PeriodStart)
		}
	})

	t.Run("unknown period type falls back to monthly", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewGetReportUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetReportInput{PeriodType: "fortnightly", Year: 2024, Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.PeriodType != PeriodTypeMonthly {
			t.Errorf("expected monthly fallback, got %s", output.PeriodType)
		}
	})

	t.Run("global counts are independent of the period", func(t *testing.T) {
		repo := &fakeReportRepository{
			// All cards live outside the requested period.
			cards: []*entity.StudyCard{
				testCard("10", true, "books", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)),
			},
			counts: GlobalCounts{TotalItems: 40, TotalCompleted: 10},
		}
		uc := NewGetReportUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetReportInput{PeriodType: PeriodTypeMonthly, Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Metadata.TotalItems != 40 || output.Metadata.TotalCompleted != 10 {
			t.Errorf("unexpected global counts: %+v", output.Metadata)
		}
		if output.Metadata.CompletionRate != 25 {
			t.Errorf("expected completionRate 25, got %d", output.Metadata.CompletionRate)
		}
		if output.Metadata.PeriodItemCount != 0 {
			t.Errorf("expected empty period, got %d items", output.Metadata.PeriodItemCount)
		}
	})

	t.Run("quarterly report spans the full quarter", func(t *testing.T) {
		repo := &fakeReportRepository{
			cards: []*entity.StudyCard{
				testCard("30", false, "books", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
				testCard("70", false, "books", time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC)),
			},
		}
		uc := NewGetReportUseCaseWithClock(repo, fixedClock(now))

		output, err := uc.Execute(context.Background(), GetReportInput{PeriodType: PeriodTypeQuarterly, Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Summary.TotalExpenses.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected both quarter months aggregated, got %s", output.Summary.TotalExpenses)
		}
	})
}
