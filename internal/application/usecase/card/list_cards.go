// Package card contains study card-related use cases.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is the number of cards returned per page by default.
	DefaultPageSize = 20
	// MaxPageSize caps the requested page size.
	MaxPageSize = 100
)

// ListCardsInput represents the input for listing study cards.
type ListCardsInput struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Category    *string
	IsCompleted *bool
	Search      string
	Page        int
	Limit       int
}

// ListCardsOutput represents the output of listing study cards.
type ListCardsOutput struct {
	Cards      []*entity.StudyCard
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// ListCardsUseCase handles listing study cards with filters.
type ListCardsUseCase struct {
	cardRepo adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(cardRepo adapter.CardRepository) *ListCardsUseCase {
	return &ListCardsUseCase{
		cardRepo: cardRepo,
	}
}

// Execute retrieves a page of study cards matching the given filters.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filter := adapter.CardFilter{
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
		Category:    input.Category,
		IsCompleted: input.IsCompleted,
		Search:      input.Search,
	}

	result, err := uc.cardRepo.FindByFilter(ctx, filter, adapter.CardPagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list study cards: %w", err)
	}

	return &ListCardsOutput{
		Cards:      result.Cards,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
