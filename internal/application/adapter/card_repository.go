// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/study-cards/backend/internal/domain/entity"
)

// CardFilter holds the optional filters for listing study cards.
type CardFilter struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Category    *string
	IsCompleted *bool
	Search      string // Case-insensitive substring match on title and description
}

// CardPagination holds pagination parameters for card listing.
type CardPagination struct {
	Page  int
	Limit int
}

// CardListResult holds a page of study cards plus pagination totals.
type CardListResult struct {
	Cards      []*entity.StudyCard
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// CardRepository defines the interface for study card persistence operations.
type CardRepository interface {
	// Create creates a new study card and assigns its ID.
	Create(ctx context.Context, card *entity.StudyCard) error

	// FindByID retrieves a study card by its ID.
	FindByID(ctx context.Context, id uint) (*entity.StudyCard, error)

	// FindByFilter retrieves study cards matching the filter with pagination.
	FindByFilter(ctx context.Context, filter CardFilter, pagination CardPagination) (*CardListResult, error)

	// Update updates an existing study card.
	Update(ctx context.Context, card *entity.StudyCard) error

	// Delete removes a study card.
	Delete(ctx context.Context, id uint) error
}
