// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/study-cards/backend/internal/application/usecase/report"
	"github.com/study-cards/backend/internal/domain/entity"
	"github.com/study-cards/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new reporting repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// FindCardsInPeriod returns all cards created within [start, end] inclusive.
// Rows come back ordered by created_at then id so downstream category
// grouping sees cards in insertion order.
func (r *reportRepository) FindCardsInPeriod(ctx context.Context, start, end time.Time) ([]*entity.StudyCard, error) {
	var cardModels []model.StudyCardModel
	result := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at ASC, id ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.StudyCard, len(cardModels))
	for i := range cardModels {
		card, err := cardModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// CountCards returns table-wide totals independent of any period.
func (r *reportRepository) CountCards(ctx context.Context) (*report.GlobalCounts, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.StudyCardModel{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var completed int64
	if err := r.db.WithContext(ctx).
		Model(&model.StudyCardModel{}).
		Where("is_completed = ?", true).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	return &report.GlobalCounts{
		TotalItems:     int(total),
		TotalCompleted: int(completed),
	}, nil
}
