package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/study-cards/backend/internal/application/adapter"
	"github.com/study-cards/backend/internal/domain/entity"
	domainerror "github.com/study-cards/backend/internal/domain/error"
	"github.com/study-cards/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(&model.StudyCardModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, repo adapter.CardRepository, card *entity.StudyCard) *entity.StudyCard {
	t.Helper()
	if err := repo.Create(context.Background(), card); err != nil {
		t.Fatalf("failed to create card: %v", err)
	}
	return card
}

func costPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCardRepositoryCreateAssignsID(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))

	card := mustCreate(t, repo, entity.NewStudyCard("Go course", "", "Education", costPtr("49.90")))

	if card.ID == 0 {
		t.Fatal("expected a generated ID, got 0")
	}

	second := mustCreate(t, repo, entity.NewStudyCard("Rust book", "", "Education", nil))
	if second.ID == card.ID {
		t.Fatalf("expected distinct IDs, both got %d", card.ID)
	}
}

func TestCardRepositoryFindByID(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))

	created := mustCreate(t, repo, entity.NewStudyCard("Go course", "advanced track", "Education", costPtr("49.90")))

	found, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found.Title != "Go course" {
		t.Errorf("expected title %q, got %q", "Go course", found.Title)
	}
	if found.Description != "advanced track" {
		t.Errorf("expected description %q, got %q", "advanced track", found.Description)
	}
	if found.EstimatedCost == nil || !found.EstimatedCost.Equal(decimal.RequireFromString("49.90")) {
		t.Errorf("expected cost 49.90, got %v", found.EstimatedCost)
	}
}

func TestCardRepositoryFindByIDNotFound(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 999)
	if !errors.Is(err, domainerror.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound, got %v", err)
	}
}

func TestCardRepositoryAttachmentsRoundTrip(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))

	card := entity.NewStudyCard("Go course", "", "", nil)
	card.Attachments = []entity.Attachment{
		{
			Kind:        entity.AttachmentKindImage,
			StorageKey:  "cards/1/abc.png",
			Name:        "receipt.png",
			ContentType: "image/png",
			Size:        1024,
		},
	}
	mustCreate(t, repo, card)

	found, err := repo.FindByID(context.Background(), card.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(found.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(found.Attachments))
	}
	att := found.Attachments[0]
	if att.StorageKey != "cards/1/abc.png" || att.Kind != entity.AttachmentKindImage || att.Size != 1024 {
		t.Errorf("attachment did not survive round trip: %+v", att)
	}
}

func TestCardRepositoryUpdate(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))

	card := mustCreate(t, repo, entity.NewStudyCard("Go course", "", "Education", nil))

	card.IsCompleted = true
	card.EstimatedCost = costPtr("120")
	if err := repo.Update(context.Background(), card); err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	found, err := repo.FindByID(context.Background(), card.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.IsCompleted {
		t.Error("expected card to be completed")
	}
	if found.EstimatedCost == nil || !found.EstimatedCost.Equal(decimal.RequireFromString("120")) {
		t.Errorf("expected cost 120, got %v", found.EstimatedCost)
	}
}

func TestCardRepositoryDelete(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))

	card := mustCreate(t, repo, entity.NewStudyCard("Go course", "", "", nil))

	if err := repo.Delete(context.Background(), card.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	_, err := repo.FindByID(context.Background(), card.ID)
	if !errors.Is(err, domainerror.ErrCardNotFound) {
		t.Fatalf("expected ErrCardNotFound after delete, got %v", err)
	}
}

func TestCardRepositoryFindByFilter(t *testing.T) {
	repo := NewCardRepository(newTestDB(t))
	ctx := context.Background()

	mustCreate(t, repo, entity.NewStudyCard("Go course", "backend fundamentals", "Education", costPtr("50")))
	mustCreate(t, repo, entity.NewStudyCard("Standing desk", "office upgrade", "Equipment", costPtr("400")))
	completed := entity.NewStudyCard("Rust book", "systems programming", "Education", costPtr("30"))
	completed.IsCompleted = true
	mustCreate(t, repo, completed)

	t.Run("filters by category", func(t *testing.T) {
		category := "Education"
		result, err := repo.FindByFilter(ctx, adapter.CardFilter{Category: &category}, adapter.CardPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("expected 2 cards, got %d", result.Total)
		}
	})

	t.Run("filters by completion", func(t *testing.T) {
		done := true
		result, err := repo.FindByFilter(ctx, adapter.CardFilter{IsCompleted: &done}, adapter.CardPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("expected 1 card, got %d", result.Total)
		}
		if result.Cards[0].Title != "Rust book" {
			t.Errorf("expected Rust book, got %q", result.Cards[0].Title)
		}
	})

	t.Run("search matches title and description case-insensitively", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.CardFilter{Search: "SYSTEMS"}, adapter.CardPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("expected 1 card, got %d", result.Total)
		}
		if result.Cards[0].Title != "Rust book" {
			t.Errorf("expected Rust book, got %q", result.Cards[0].Title)
		}
	})

	t.Run("paginates results", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.CardFilter{}, adapter.CardPagination{Page: 1, Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Cards) != 2 {
			t.Errorf("expected 2 cards on page 1, got %d", len(result.Cards))
		}
		if result.Total != 3 {
			t.Errorf("expected total 3, got %d", result.Total)
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", result.TotalPages)
		}
	})
}

func TestReportRepositoryFindCardsInPeriod(t *testing.T) {
	db := newTestDB(t)
	cardRepo := NewCardRepository(db)
	reportRepo := NewReportRepository(db)
	ctx := context.Background()

	makeCard := func(title string, created time.Time) {
		card := entity.NewStudyCard(title, "", "", nil)
		card.CreatedAt = created
		card.UpdatedAt = created
		mustCreate(t, cardRepo, card)
	}

	makeCard("june early", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	makeCard("june late", time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC))
	makeCard("july", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	cards, err := reportRepo.FindCardsInPeriod(ctx, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cards) != 2 {
		t.Fatalf("expected 2 cards in June, got %d", len(cards))
	}
	if cards[0].Title != "june early" || cards[1].Title != "june late" {
		t.Errorf("expected ascending creation order, got %q then %q", cards[0].Title, cards[1].Title)
	}
}

func TestReportRepositoryCountCards(t *testing.T) {
	db := newTestDB(t)
	cardRepo := NewCardRepository(db)
	reportRepo := NewReportRepository(db)

	mustCreate(t, cardRepo, entity.NewStudyCard("pending", "", "", nil))
	done := entity.NewStudyCard("done", "", "", nil)
	done.IsCompleted = true
	mustCreate(t, cardRepo, done)

	counts, err := reportRepo.CountCards(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts.TotalItems != 2 {
		t.Errorf("expected 2 total items, got %d", counts.TotalItems)
	}
	if counts.TotalCompleted != 1 {
		t.Errorf("expected 1 completed item, got %d", counts.TotalCompleted)
	}
}
