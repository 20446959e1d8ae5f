// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/study-cards/backend/internal/domain/entity"
)

// MaxHistoryMonths is the upper bound on the history window length.
const MaxHistoryMonths = 24

// GetHistoryInput represents the input for the monthly history series.
type GetHistoryInput struct {
	// Months is the number of calendar months to report, most recent first.
	// Values above MaxHistoryMonths are clamped; values below one yield an
	// empty series.
	Months int
}

// GetHistoryOutput represents the output of the monthly history series.
// Summaries are ordered from the current month backwards.
type GetHistoryOutput struct {
	Summaries []FinanceSummary
}

// GetHistoryUseCase builds the sliding-window monthly history series.
//
// The whole window is fetched with a single range query and bucketed by
// calendar month in memory, so every entry is derived from one consistent
// read instead of one query per month.
type GetHistoryUseCase struct {
	reportRepo ReportRepository
	now        func() time.Time
}

// NewGetHistoryUseCase creates a new GetHistoryUseCase instance.
func NewGetHistoryUseCase(reportRepo ReportRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// NewGetHistoryUseCaseWithClock creates a GetHistoryUseCase with an injected
// clock for deterministic tests.
func NewGetHistoryUseCaseWithClock(reportRepo ReportRepository, now func() time.Time) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		reportRepo: reportRepo,
		now:        now,
	}
}

// Execute produces one monthly summary per requested month, entry i covering
// the calendar month exactly i months before the current one.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, input GetHistoryInput) (*GetHistoryOutput, error) {
	months := input.Months
	if months > MaxHistoryMonths {
		months = MaxHistoryMonths
	}
	if months < 1 {
		return &GetHistoryOutput{Summaries: []FinanceSummary{}}, nil
	}

	now := uc.now().UTC()
	curYear, curMonth := now.Year(), int(now.Month())

	// Window spans from the start of the oldest month to the end of the
	// current month.
	oldestYear, oldestMonth := monthsBefore(curYear, curMonth, months-1)
	windowStart, _ := ResolvePeriod(PeriodTypeMonthly, oldestYear, oldestMonth)
	_, windowEnd := ResolvePeriod(PeriodTypeMonthly, curYear, curMonth)

	cards, err := uc.reportRepo.FindCardsInPeriod(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history window: %w", err)
	}

	buckets := make(map[string][]*entity.StudyCard)
	for _, card := range cards {
		key := monthKey(card.CreatedAt)
		buckets[key] = append(buckets[key], card)
	}

	summaries := make([]FinanceSummary, 0, months)
	for i := 0; i < months; i++ {
		year, month := monthsBefore(curYear, curMonth, i)
		start, end := ResolvePeriod(PeriodTypeMonthly, year, month)
		summaries = append(summaries, Aggregate(buckets[monthKey(start)], start, end))
	}

	return &GetHistoryOutput{Summaries: summaries}, nil
}
