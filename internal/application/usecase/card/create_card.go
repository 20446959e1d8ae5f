// Package card contains study card-related use cases.
package card

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
	domainerror "github.com/study-cards/backend/internal/domain/error"
)

// MaxTitleLength is the maximum allowed length for card titles.
const MaxTitleLength = 255

// CreateCardInput represents the input for study card creation.
type CreateCardInput struct {
	Title         string
	Description   string
	Category      string
	EstimatedCost *decimal.Decimal
}

// CreateCardOutput represents the output of study card creation.
type CreateCardOutput struct {
	Card *entity.StudyCard
}

// CreateCardUseCase handles study card creation logic.
type CreateCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(cardRepo adapter.CardRepository) *CreateCardUseCase {
	return &CreateCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute performs the study card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeMissingCardTitle,
			"title is required",
			domainerror.ErrMissingCardTitle,
		)
	}

	if len(input.Title) > MaxTitleLength {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeCardTitleTooLong,
			fmt.Sprintf("title must not exceed %d characters", MaxTitleLength),
			domainerror.ErrCardTitleTooLong,
		)
	}

	if input.EstimatedCost != nil && input.EstimatedCost.IsNegative() {
		return nil, domainerror.NewCardError(
			domainerror.ErrCodeNegativeEstimatedCost,
			"estimated cost must not be negative",
			domainerror.ErrNegativeEstimatedCost,
		)
	}

	card := entity.NewStudyCard(input.Title, input.Description, input.Category, input.EstimatedCost)

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create study card: %w", err)
	}

	return &CreateCardOutput{
		Card: card,
	}, nil
}
