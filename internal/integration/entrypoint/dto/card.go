// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/study-cards/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for study card creation.
type CreateCardRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=255"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	EstimatedCost *string `json:"estimated_cost,omitempty"`
}

// UpdateCardRequest represents the request body for study card update.
// Omitted fields are left unchanged; estimated_cost set to an empty string
// clears the cost.
type UpdateCardRequest struct {
	Title         *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description   *string `json:"description,omitempty"`
	Category      *string `json:"category,omitempty"`
	EstimatedCost *string `json:"estimated_cost,omitempty"`
	IsCompleted   *bool   `json:"is_completed,omitempty"`
}

// AttachmentResponse represents an attachment in API responses.
type AttachmentResponse struct {
	Kind        string `json:"kind"`
	StorageKey  string `json:"storage_key"`
	URL         string `json:"url,omitempty"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// CardResponse represents a single study card in API responses.
type CardResponse struct {
	ID            uint                 `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      string               `json:"category"`
	EstimatedCost *float64             `json:"estimated_cost"`
	IsCompleted   bool                 `json:"is_completed"`
	Attachments   []AttachmentResponse `json:"attachments"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// CardListResponse represents the response for listing study cards.
type CardListResponse struct {
	Cards      []CardResponse `json:"cards"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// AttachmentURLResponse represents the response for resolving an attachment URL.
type AttachmentURLResponse struct {
	StorageKey string `json:"storage_key"`
	Name       string `json:"name"`
	URL        string `json:"url"`
}

// ToCardResponse converts a domain StudyCard entity to a CardResponse DTO.
func ToCardResponse(card *entity.StudyCard) CardResponse {
	var cost *float64
	if card.EstimatedCost != nil {
		value, _ := card.EstimatedCost.Float64()
		cost = &value
	}

	attachments := make([]AttachmentResponse, len(card.Attachments))
	for i, att := range card.Attachments {
		attachments[i] = AttachmentResponse{
			Kind:        string(att.Kind),
			StorageKey:  att.StorageKey,
			URL:         att.URL,
			Name:        att.Name,
			ContentType: att.ContentType,
			Size:        att.Size,
		}
	}

	return CardResponse{
		ID:            card.ID,
		Title:         card.Title,
		Description:   card.Description,
		Category:      card.Category,
		EstimatedCost: cost,
		IsCompleted:   card.IsCompleted,
		Attachments:   attachments,
		CreatedAt:     card.CreatedAt,
		UpdatedAt:     card.UpdatedAt,
	}
}

// ToCardListResponse converts a page of study cards to a CardListResponse.
func ToCardListResponse(cards []*entity.StudyCard, total, page, limit, totalPages int) CardListResponse {
	responses := make([]CardResponse, len(cards))
	for i, card := range cards {
		responses[i] = ToCardResponse(card)
	}
	return CardListResponse{
		Cards:      responses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
