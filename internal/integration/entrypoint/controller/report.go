// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/study-cards/backend/config"
	"github.com/study-cards/backend/internal/application/usecase/report"
	"github.com/study-cards/backend/internal/integration/entrypoint/dto"
)

// defaultHistoryMonths is the history window length when the months query
// parameter is absent or unparseable.
const defaultHistoryMonths = 12

// ReportController handles the read-only executive reporting endpoints.
// Query parameters never produce a 400: unparseable or missing values fall
// back to defaults and out-of-range dates normalize through date arithmetic.
type ReportController struct {
	getReportUseCase  *report.GetReportUseCase
	getHistoryUseCase *report.GetHistoryUseCase
	envelope          dto.ReportEnvelope
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getReportUseCase *report.GetReportUseCase,
	getHistoryUseCase *report.GetHistoryUseCase,
	cfg config.ReportConfig,
) *ReportController {
	return &ReportController{
		getReportUseCase:  getReportUseCase,
		getHistoryUseCase: getHistoryUseCase,
		envelope: dto.ReportEnvelope{
			ProjectCode: cfg.ProjectCode,
			ProjectName: cfg.ProjectName,
			Currency:    cfg.Currency,
		},
	}
}

// GetReport handles GET /reports/finance requests.
func (c *ReportController) GetReport(ctx *gin.Context) {
	input := report.GetReportInput{
		PeriodType: report.PeriodType(ctx.Query("periodType")),
	}

	if year, err := strconv.Atoi(ctx.Query("year")); err == nil {
		input.Year = year
	}
	if month, err := strconv.Atoi(ctx.Query("month")); err == nil {
		input.Month = month
	}

	output, err := c.getReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		slog.Error("Failed to build finance report", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceReportResponse(output, c.envelope, time.Now()))
}

// GetHistory handles GET /reports/finance/history requests.
func (c *ReportController) GetHistory(ctx *gin.Context) {
	months := defaultHistoryMonths
	if parsed, err := strconv.Atoi(ctx.Query("months")); err == nil {
		months = parsed
	}

	output, err := c.getHistoryUseCase.Execute(ctx.Request.Context(), report.GetHistoryInput{Months: months})
	if err != nil {
		slog.Error("Failed to build finance history", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinanceHistoryResponse(output.Summaries, c.envelope, time.Now()))
}
