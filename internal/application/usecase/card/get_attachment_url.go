// Package card contains study card-related use cases.
package card

import (
	"context"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
	domainerror "github.com/study-cards/backend/internal/domain/error"
)

// GetAttachmentURLInput represents the input for resolving an attachment URL.
type GetAttachmentURLInput struct {
	CardID     uint
	StorageKey string
}

// GetAttachmentURLOutput represents the output of resolving an attachment URL.
type GetAttachmentURLOutput struct {
	Attachment entity.Attachment
	URL        string
}

// GetAttachmentURLUseCase resolves a time-limited download URL for a
// card attachment.
type GetAttachmentURLUseCase struct {
	cardRepo       adapter.CardRepository
	storageService adapter.StorageService
}

// NewGetAttachmentURLUseCase creates a new GetAttachmentURLUseCase instance.
func NewGetAttachmentURLUseCase(cardRepo adapter.CardRepository, storageService adapter.StorageService) *GetAttachmentURLUseCase {
	return &GetAttachmentURLUseCase{
		cardRepo:       cardRepo,
		storageService: storageService,
	}
}

// Execute looks up the attachment on the card and returns a presigned URL
// for it. The attachment must belong to the requested card.
func (uc *GetAttachmentURLUseCase) Execute(ctx context.Context, input GetAttachmentURLInput) (*GetAttachmentURLOutput, error) {
	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	for _, att := range card.Attachments {
		if att.StorageKey != input.StorageKey {
			continue
		}

		url, err := uc.storageService.PresignedURL(ctx, att.StorageKey)
		if err != nil {
			return nil, err
		}

		return &GetAttachmentURLOutput{
			Attachment: att,
			URL:        url,
		}, nil
	}

	return nil, domainerror.NewStorageError(
		domainerror.ErrCodeAttachmentNotFound,
		"attachment not found",
		domainerror.ErrAttachmentNotFound,
	)
}
