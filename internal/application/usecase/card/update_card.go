// Package card contains study card-related use cases.
package card

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
	domainerror "github.com/study-cards/backend/internal/domain/error"
)

// UpdateCardInput represents the input for study card update.
// Nil pointer fields leave the corresponding card field unchanged.
type UpdateCardInput struct {
	CardID        uint
	Title         *string
	Description   *string
	Category      *string
	EstimatedCost *decimal.Decimal
	ClearCost     bool
	IsCompleted   *bool
}

// UpdateCardOutput represents the output of study card update.
type UpdateCardOutput struct {
	Card *entity.StudyCard
}

// UpdateCardUseCase handles study card update logic.
type UpdateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewUpdateCardUseCase creates a new UpdateCardUseCase instance.
func NewUpdateCardUseCase(cardRepo adapter.CardRepository) *UpdateCardUseCase {
	return &UpdateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the study card update.
func (uc *UpdateCardUseCase) Execute(ctx context.Context, input UpdateCardInput) (*UpdateCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeMissingCardTitle,
				"title is required",
				domainerror.ErrMissingCardTitle,
			)
		}
		if len(*input.Title) > MaxTitleLength {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeCardTitleTooLong,
				fmt.Sprintf("title must not exceed %d characters", MaxTitleLength),
				domainerror.ErrCardTitleTooLong,
			)
		}
		card.Title = *input.Title
	}

	if input.Description != nil {
		card.Description = *input.Description
	}

	if input.Category != nil {
		card.Category = *input.Category
	}

	if input.ClearCost {
		card.EstimatedCost = nil
	} else if input.EstimatedCost != nil {
		if input.EstimatedCost.IsNegative() {
			return nil, domainerror.NewCardError(
				domainerror.ErrCodeNegativeEstimatedCost,
				"estimated cost must not be negative",
				domainerror.ErrNegativeEstimatedCost,
			)
		}
		card.EstimatedCost = input.EstimatedCost
	}

	if input.IsCompleted != nil {
		card.IsCompleted = *input.IsCompleted
	}

	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to update study card: %w", err)
	}

	return &UpdateCardOutput{
		Card: card,
	}, nil
}
