// Package card contains study card-related use cases.
package card

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
	domainerror "github.com/study-cards/backend/internal/domain/error"
)

// MaxAttachmentSize caps uploaded attachment bodies at 10 MiB.
const MaxAttachmentSize = 10 << 20

var allowedContentTypes = map[string]entity.AttachmentKind{
	"image/jpeg":      entity.AttachmentKindImage,
	"image/png":       entity.AttachmentKindImage,
	"image/gif":       entity.AttachmentKindImage,
	"image/webp":      entity.AttachmentKindImage,
	"application/pdf": entity.AttachmentKindDocument,
	"text/plain":      entity.AttachmentKindDocument,
}

// AttachFileInput represents the input for attaching a file to a study card.
type AttachFileInput struct {
	CardID      uint
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AttachFileOutput represents the output of attaching a file.
type AttachFileOutput struct {
	Card       *entity.StudyCard
	Attachment entity.Attachment
}

// AttachFileUseCase handles uploading an attachment and linking it to a card.
type AttachFileUseCase struct {
	cardRepo       adapter.CardRepository
	storageService adapter.StorageService
}

// NewAttachFileUseCase creates a new AttachFileUseCase instance.
func NewAttachFileUseCase(cardRepo adapter.CardRepository, storageService adapter.StorageService) *AttachFileUseCase {
	return &AttachFileUseCase{
		cardRepo:       cardRepo,
		storageService: storageService,
	}
}

// Execute validates the upload, stores the object under a card-scoped key
// and records the attachment on the card.
func (uc *AttachFileUseCase) Execute(ctx context.Context, input AttachFileInput) (*AttachFileOutput, error) {
	if input.Size > MaxAttachmentSize {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeAttachmentTooLarge,
			fmt.Sprintf("attachment must not exceed %d bytes", MaxAttachmentSize),
			domainerror.ErrAttachmentTooLarge,
		)
	}

	contentType := normalizeContentType(input.ContentType)
	kind, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeUnsupportedFileType,
			fmt.Sprintf("unsupported content type: %s", contentType),
			domainerror.ErrUnsupportedFileType,
		)
	}

	card, err := uc.cardRepo.FindByID(ctx, input.CardID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(input.FileName))
	storageKey := fmt.Sprintf("cards/%d/%s%s", card.ID, uuid.New().String(), ext)

	if err := uc.storageService.Put(ctx, storageKey, input.Reader, input.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	attachment := entity.Attachment{
		Kind:        kind,
		StorageKey:  storageKey,
		Name:        input.FileName,
		ContentType: contentType,
		Size:        input.Size,
	}

	card.Attachments = append(card.Attachments, attachment)
	card.UpdatedAt = time.Now().UTC()

	if err := uc.cardRepo.Update(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	return &AttachFileOutput{
		Card:       card,
		Attachment: attachment,
	}, nil
}

func normalizeContentType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
