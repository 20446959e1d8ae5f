// Package card contains study card-related use cases.
package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/study-cards/backend/internal/application/adapter"
)

// DeleteCardInput represents the input for study card deletion.
type DeleteCardInput struct {
	CardID uint
}

// DeleteCardUseCase handles study card deletion logic.
type DeleteCardUseCase struct {
	cardRepo       adapter.CardRepository
	storageService adapter.StorageService
}

// NewDeleteCardUseCase creates a new DeleteCardUseCase instance.
func NewDeleteCardUseCase(cardRepo adapter.CardRepository, storageService adapter.StorageService) *DeleteCardUseCase {
	return &DeleteCardUseCase{
		cardRepo:       cardRepo,
		storageService: storageService,
	}
}

// Execute deletes the study card and its stored attachments. Attachment
// cleanup is best effort; a stale object in storage must not block the
// card deletion.
func (uc *DeleteCardUseCase) Execute(ctx context.Context, input DeleteCardInput) error {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return err
	}

	if err := uc.cardRepo.Delete(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to delete study card: %w", err)
	}

	for _, att := range card.Attachments {
		if err := uc.storageService.Remove(ctx, att.StorageKey); err != nil {
			slog.Warn("Failed to remove attachment object",
				"card_id", card.ID,
				"storage_key", att.StorageKey,
				"error", err,
			)
		}
	}

	return nil
}
