// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/application/usecase/card"
	domainerror "github.com/study-cards/backend/internal/domain/error"
	"github.com/study-cards/backend/internal/integration/entrypoint/dto"
)

// CardController handles study card endpoints.
type CardController struct {
	createUseCase           *card.CreateCardUseCase
	listUseCase             *card.ListCardsUseCase
	getUseCase              *card.GetCardUseCase
	updateUseCase           *card.UpdateCardUseCase
	deleteUseCase           *card.DeleteCardUseCase
	attachFileUseCase       *card.AttachFileUseCase
	getAttachmentURLUseCase *card.GetAttachmentURLUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	createUseCase *card.CreateCardUseCase,
	listUseCase *card.ListCardsUseCase,
	getUseCase *card.GetCardUseCase,
	updateUseCase *card.UpdateCardUseCase,
	deleteUseCase *card.DeleteCardUseCase,
	attachFileUseCase *card.AttachFileUseCase,
	getAttachmentURLUseCase *card.GetAttachmentURLUseCase,
) *CardController {
	return &CardController{
		createUseCase:           createUseCase,
		listUseCase:             listUseCase,
		getUseCase:              getUseCase,
		updateUseCase:           updateUseCase,
		deleteUseCase:           deleteUseCase,
		attachFileUseCase:       attachFileUseCase,
		getAttachmentURLUseCase: getAttachmentURLUseCase,
	}
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCardTitle),
		})
		return
	}

	cost, err := parseCost(req.EstimatedCost)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid estimated cost format",
			Code:  string(domainerror.ErrCodeNegativeEstimatedCost),
		})
		return
	}

	input := card.CreateCardInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		EstimatedCost: cost,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	input := card.ListCardsInput{
		Search: ctx.Query("search"),
	}

	if fromStr := ctx.Query("createdFrom"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			input.CreatedFrom = &from
		}
	}
	if toStr := ctx.Query("createdTo"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			endOfDay := to.Add(24*time.Hour - time.Second)
			input.CreatedTo = &endOfDay
		}
	}
	if category := ctx.Query("category"); category != "" {
		input.Category = &category
	}
	if completedStr := ctx.Query("isCompleted"); completedStr != "" {
		if completed, err := strconv.ParseBool(completedStr); err == nil {
			input.IsCompleted = &completed
		}
	}

	input.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	input.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve study cards",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardListResponse(output.Cards, output.Total, output.Page, output.Limit, output.TotalPages))
}

// Get handles GET /cards/:id requests.
func (c *CardController) Get(ctx *gin.Context) {
	cardID, ok := c.parseCardID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), card.GetCardInput{CardID: cardID})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Update handles PATCH /cards/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
	cardID, ok := c.parseCardID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := card.UpdateCardInput{
		CardID:      cardID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsCompleted: req.IsCompleted,
	}

	if req.EstimatedCost != nil {
		if *req.EstimatedCost == "" {
			input.ClearCost = true
		} else {
			cost, err := parseCost(req.EstimatedCost)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid estimated cost format",
					Code:  string(domainerror.ErrCodeNegativeEstimatedCost),
				})
				return
			}
			input.EstimatedCost = cost
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	cardID, ok := c.parseCardID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), card.DeleteCardInput{CardID: cardID}); err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Attach handles POST /cards/:id/attachments requests.
func (c *CardController) Attach(ctx *gin.Context) {
	cardID, ok := c.parseCardID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A file form field is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	input := card.AttachFileInput{
		CardID:      cardID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	output, err := c.attachFileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// ListAttachments handles GET /cards/:id/attachments requests.
func (c *CardController) ListAttachments(ctx *gin.Context) {
	cardID, ok := c.parseCardID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), card.GetCardInput{CardID: cardID})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	response := dto.ToCardResponse(output.Card)
	ctx.JSON(http.StatusOK, gin.H{"attachments": response.Attachments})
}

// AttachmentURL handles GET /cards/:id/attachments/:key/url requests.
// The :key segment is the object's file name within the card's prefix.
func (c *CardController) AttachmentURL(ctx *gin.Context) {
	cardID, ok := c.parseCardID(ctx)
	if !ok {
		return
	}

	storageKey := fmt.Sprintf("cards/%d/%s", cardID, ctx.Param("key"))

	output, err := c.getAttachmentURLUseCase.Execute(ctx.Request.Context(), card.GetAttachmentURLInput{
		CardID:     cardID,
		StorageKey: storageKey,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AttachmentURLResponse{
		StorageKey: output.Attachment.StorageKey,
		Name:       output.Attachment.Name,
		URL:        output.URL,
	})
}

// parseCardID parses the :id path parameter, writing a 400 on failure.
func (c *CardController) parseCardID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return 0, false
	}
	return uint(id), true
}

// parseCost parses an optional decimal string from a request body.
func parseCost(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	cost, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// handleCardError maps card and storage errors to HTTP responses.
func (c *CardController) handleCardError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrCardNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Study card not found",
			Code:  string(domainerror.ErrCodeCardNotFound),
		})
		return
	}

	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		ctx.JSON(c.statusForCardError(cardErr.Code), dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	var storageErr *domainerror.StorageError
	if errors.As(err, &storageErr) {
		ctx.JSON(c.statusForStorageError(storageErr.Code), dto.ErrorResponse{
			Error: storageErr.Message,
			Code:  string(storageErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForCardError maps card error codes to HTTP status codes.
func (c *CardController) statusForCardError(code domainerror.CardErrorCode) int {
	switch code {
	case domainerror.ErrCodeCardNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingCardTitle,
		domainerror.ErrCodeNegativeEstimatedCost,
		domainerror.ErrCodeCardTitleTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForStorageError maps storage error codes to HTTP status codes.
func (c *CardController) statusForStorageError(code domainerror.StorageErrorCode) int {
	switch code {
	case domainerror.ErrCodeAttachmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAttachmentTooLarge,
		domainerror.ErrCodeUnsupportedFileType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
