// Package card contains study card-related use cases.
package card

import (
	"context"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
)

// GetCardInput represents the input for retrieving a single study card.
type GetCardInput struct {
	CardID uint
}

// GetCardOutput represents the output of retrieving a single study card.
type GetCardOutput struct {
	Card *entity.StudyCard
}

// GetCardUseCase handles retrieving a single study card.
type GetCardUseCase struct {
	cardRepo adapter.CardRepository
}

// NewGetCardUseCase creates a new GetCardUseCase instance.
func NewGetCardUseCase(cardRepo adapter.CardRepository) *GetCardUseCase {
	return &GetCardUseCase{
		cardRepo: cardRepo,
	}
}

// Execute retrieves the study card with the given ID.
func (uc *GetCardUseCase) Execute(ctx context.Context, input GetCardInput) (*GetCardOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	return &GetCardOutput{
		Card: card,
	}, nil
}
