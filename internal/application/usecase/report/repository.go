// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"context"
	"time"

	"github.com/study-cards/backend/internal/domain/entity"
)

// ReportRepository defines the interface for reporting data access.
type ReportRepository interface {
	// FindCardsInPeriod returns all study cards whose created_at falls within
	// [start, end], both ends inclusive, ordered by created_at then id
	// ascending. Category grouping order in summaries follows this order.
	FindCardsInPeriod(ctx context.Context, start, end time.Time) ([]*entity.StudyCard, error)

	// CountCards returns global counts over the entire table, independent of
	// any reporting period.
	CountCards(ctx context.Context) (*GlobalCounts, error)
}

// GlobalCounts holds table-wide card counts.
type GlobalCounts struct {
	TotalItems     int
	TotalCompleted int
}
