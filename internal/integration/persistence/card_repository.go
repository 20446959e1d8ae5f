// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
	domainerror "github.com/study-cards/backend/internal/domain/error"
	"github.com/study-cards/backend/internal/integration/persistence/model"
)

// cardRepository implements the adapter.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new study card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// Create creates a new study card and assigns the generated ID back to the entity.
func (r *cardRepository) Create(ctx context.Context, card *entity.StudyCard) error {
	cardModel, err := model.StudyCardFromEntity(card)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(cardModel)
	if result.Error != nil {
		return result.Error
	}
	card.ID = cardModel.ID
	return nil
}

// FindByID retrieves a study card by its ID.
func (r *cardRepository) FindByID(ctx context.Context, id uint) (*entity.StudyCard, error) {
	var cardModel model.StudyCardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity()
}

// FindByFilter retrieves study cards based on filter criteria with pagination.
func (r *cardRepository) FindByFilter(ctx context.Context, filter adapter.CardFilter, pagination adapter.CardPagination) (*adapter.CardListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.StudyCardModel{})

	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", filter.CreatedTo)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.IsCompleted != nil {
		query = query.Where("is_completed = ?", *filter.IsCompleted)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchPattern, searchPattern)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var cardModels []model.StudyCardModel
	result := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.StudyCard, len(cardModels))
	for i := range cardModels {
		card, err := cardModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}

	return &adapter.CardListResult{
		Cards:      cards,
		Total:      int(total),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an existing study card.
func (r *cardRepository) Update(ctx context.Context, card *entity.StudyCard) error {
	cardModel, err := model.StudyCardFromEntity(card)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Save(cardModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a study card from the database.
func (r *cardRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.StudyCardModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
