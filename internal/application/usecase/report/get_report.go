// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"context"
	"fmt"
	"time"
)

// GetReportInput represents the input for a single-period finance report.
// Zero values for Year and Month default to the current year and month;
// an unknown PeriodType is treated as monthly. Out-of-range values are not
// rejected and propagate through date arithmetic.
type GetReportInput struct {
	PeriodType PeriodType
	Year       int
	Month      int
}

// ReportMetadata holds the table-wide counters attached to a report.
// These are computed over the entire table, independent of the period.
type ReportMetadata struct {
	TotalItems           int
	TotalCompleted       int
	PeriodItemCount      int
	PeriodCompletedCount int
	CompletionRate       int
}

// GetReportOutput represents the output of a single-period finance report.
type GetReportOutput struct {
	PeriodType PeriodType
	Summary    FinanceSummary
	Metadata   ReportMetadata
}

// GetReportUseCase builds the single-period finance report.
type GetReportUseCase struct {
	reportRepo ReportRepository
	now        func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(reportRepo ReportRepository) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// NewGetReportUseCaseWithClock creates a GetReportUseCase with an injected
// clock for deterministic tests.
func NewGetReportUseCaseWithClock(reportRepo ReportRepository, now func() time.Time) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
		now:        now,
	}
}

// Execute resolves the requested period, aggregates the cards within it and
// attaches table-wide counters.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*GetReportOutput, error) {
	periodType := normalizePeriodType(input.PeriodType)

	now := uc.now().UTC()
	year := input.Year
	if year == 0 {
		year = now.Year()
	}
	month := input.Month
	if month == 0 {
		month = int(now.Month())
	}

	start, end := ResolvePeriod(periodType, year, month)

	cards, err := uc.reportRepo.FindCardsInPeriod(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards for period: %w", err)
	}

	summary := Aggregate(cards, start, end)

	counts, err := uc.reportRepo.CountCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch global counts: %w", err)
	}

	return &GetReportOutput{
		PeriodType: periodType,
		Summary:    summary,
		Metadata: ReportMetadata{
			TotalItems:           counts.TotalItems,
			TotalCompleted:       counts.TotalCompleted,
			PeriodItemCount:      summary.PeriodItemCount,
			PeriodCompletedCount: summary.PeriodCompletedCount,
			CompletionRate:       CompletionRate(counts.TotalItems, counts.TotalCompleted),
		},
	}, nil
}

// normalizePeriodType maps unknown period types to monthly instead of
// rejecting them.
func normalizePeriodType(pt PeriodType) PeriodType {
	switch pt {
	case PeriodTypeMonthly, PeriodTypeQuarterly, PeriodTypeYearly:
		return pt
	default:
		return PeriodTypeMonthly
	}
}
