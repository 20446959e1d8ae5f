// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/domain/entity"
)

// StudyCardModel represents the study_cards table in the database.
type StudyCardModel struct {
	ID            uint             `gorm:"primaryKey;autoIncrement"`
	Title         string           `gorm:"type:varchar(255);not null"`
	Description   string           `gorm:"type:text"`
	Category      string           `gorm:"type:varchar(100);index"`
	EstimatedCost *decimal.Decimal `gorm:"type:decimal(15,2)"`
	IsCompleted   bool             `gorm:"default:false;index"`
	Attachments   string           `gorm:"type:text"` // JSON-encoded attachment list
	CreatedAt     time.Time        `gorm:"not null;index"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the StudyCardModel.
func (StudyCardModel) TableName() string {
	return "study_cards"
}

// ToEntity converts a StudyCardModel to a domain StudyCard entity.
func (m *StudyCardModel) ToEntity() (*entity.StudyCard, error) {
	attachments := []entity.Attachment{}
	if m.Attachments != "" {
		if err := json.Unmarshal([]byte(m.Attachments), &attachments); err != nil {
			return nil, err
		}
	}

	return &entity.StudyCard{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Category:      m.Category,
		EstimatedCost: m.EstimatedCost,
		IsCompleted:   m.IsCompleted,
		Attachments:   attachments,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// StudyCardFromEntity creates a StudyCardModel from a domain StudyCard entity.
func StudyCardFromEntity(card *entity.StudyCard) (*StudyCardModel, error) {
	attachments := card.Attachments
	if attachments == nil {
		attachments = []entity.Attachment{}
	}
	encoded, err := json.Marshal(attachments)
	if err != nil {
		return nil, err
	}

	return &StudyCardModel{
		ID:            card.ID,
		Title:         card.Title,
		Description:   card.Description,
		Category:      card.Category,
		EstimatedCost: card.EstimatedCost,
		IsCompleted:   card.IsCompleted,
		Attachments:   string(encoded),
		CreatedAt:     card.CreatedAt,
		UpdatedAt:     card.UpdatedAt,
	}, nil
}
