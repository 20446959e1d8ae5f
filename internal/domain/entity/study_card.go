// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the category label applied to cards without one
// for reporting purposes.
const UncategorizedLabel = "Uncategorized"

// AttachmentKind represents the kind of an attached file.
type AttachmentKind string

const (
	AttachmentKindImage    AttachmentKind = "image"
	AttachmentKindDocument AttachmentKind = "document"
)

// Attachment represents a file reference stored on a study card.
// Attachments are owned and interpreted by the presentation layer only;
// the reporting aggregator treats them as opaque.
type Attachment struct {
	Kind        AttachmentKind `json:"kind"`
	StorageKey  string         `json:"storage_key"`
	URL         string         `json:"url"`
	Name        string         `json:"name"`
	ContentType string         `json:"content_type"`
	Size        int64          `json:"size"`
}

// StudyCard represents an investment/learning item being tracked.
type StudyCard struct {
	ID            uint
	Title         string
	Description   string
	Category      string           // Optional free text; empty means uncategorized
	EstimatedCost *decimal.Decimal // Optional non-negative amount; nil treated as zero
	IsCompleted   bool
	Attachments   []Attachment
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewStudyCard creates a new StudyCard entity.
func NewStudyCard(title, description, category string, estimatedCost *decimal.Decimal) *StudyCard {
	now := time.Now().UTC()

	return &StudyCard{
		Title:         title,
		Description:   description,
		Category:      category,
		EstimatedCost: estimatedCost,
		IsCompleted:   false,
		Attachments:   []Attachment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CostOrZero returns the estimated cost, treating absence as zero.
func (c *StudyCard) CostOrZero() decimal.Decimal {
	if c.EstimatedCost == nil {
		return decimal.Zero
	}
	return *c.EstimatedCost
}

// CategoryOrDefault returns the category label, defaulting to
// UncategorizedLabel when the card has none.
func (c *StudyCard) CategoryOrDefault() string {
	if c.Category == "" {
		return UncategorizedLabel
	}
	return c.Category
}
