// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/application/usecase/report"
)

// ReportEnvelope holds the project fields stamped onto every reporting
// response.
type ReportEnvelope struct {
	ProjectCode string
	ProjectName string
	Currency    string
}

// CategorySummaryResponse represents one category bucket in a report.
type CategorySummaryResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// ReportMetadataResponse represents the metadata block of a finance report.
type ReportMetadataResponse struct {
	TotalItems           int `json:"totalItems"`
	TotalCompleted       int `json:"totalCompleted"`
	PeriodItemCount      int `json:"periodItemCount"`
	PeriodCompletedCount int `json:"periodCompletedCount"`
	CompletionRate       int `json:"completionRate"`
}

// FinanceReportResponse represents the response for the finance report API.
type FinanceReportResponse struct {
	ProjectCode       string                    `json:"projectCode"`
	ProjectName       string                    `json:"projectName"`
	PeriodType        string                    `json:"periodType"`
	PeriodStart       string                    `json:"periodStart"`
	PeriodEnd         string                    `json:"periodEnd"`
	Currency          string                    `json:"currency"`
	TotalRevenue      float64                   `json:"totalRevenue"`
	TotalExpenses     float64                   `json:"totalExpenses"`
	NetProfit         float64                   `json:"netProfit"`
	CashInflow        float64                   `json:"cashInflow"`
	CashOutflow       float64                   `json:"cashOutflow"`
	NetCashFlow       float64                   `json:"netCashFlow"`
	RevenueCategories []CategorySummaryResponse `json:"revenueCategories"`
	ExpenseCategories []CategorySummaryResponse `json:"expenseCategories"`
	Metadata          ReportMetadataResponse    `json:"metadata"`
	GeneratedAt       string                    `json:"generatedAt"`
}

// HistoryEntryResponse represents one month in the finance history response.
type HistoryEntryResponse struct {
	PeriodStart       string                    `json:"periodStart"`
	PeriodEnd         string                    `json:"periodEnd"`
	TotalRevenue      float64                   `json:"totalRevenue"`
	TotalExpenses     float64                   `json:"totalExpenses"`
	NetProfit         float64                   `json:"netProfit"`
	CashInflow        float64                   `json:"cashInflow"`
	CashOutflow       float64                   `json:"cashOutflow"`
	NetCashFlow       float64                   `json:"netCashFlow"`
	ExpenseCategories []CategorySummaryResponse `json:"expenseCategories"`
}

// FinanceHistoryResponse represents the response for the finance history API.
type FinanceHistoryResponse struct {
	ProjectCode string                 `json:"projectCode"`
	ProjectName string                 `json:"projectName"`
	PeriodType  string                 `json:"periodType"`
	Currency    string                 `json:"currency"`
	Months      int                    `json:"months"`
	Summaries   []HistoryEntryResponse `json:"summaries"`
	GeneratedAt string                 `json:"generatedAt"`
}

// ToFinanceReportResponse converts a GetReportOutput to a FinanceReportResponse DTO.
func ToFinanceReportResponse(output *report.GetReportOutput, envelope ReportEnvelope, generatedAt time.Time) FinanceReportResponse {
	summary := output.Summary

	return FinanceReportResponse{
		ProjectCode:       envelope.ProjectCode,
		ProjectName:       envelope.ProjectName,
		PeriodType:        string(output.PeriodType),
		PeriodStart:       summary.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         summary.PeriodEnd.Format("2006-01-02"),
		Currency:          envelope.Currency,
		TotalRevenue:      toAmount(summary.TotalRevenue),
		TotalExpenses:     toAmount(summary.TotalExpenses),
		NetProfit:         toAmount(summary.NetProfit),
		CashInflow:        toAmount(summary.CashInflow),
		CashOutflow:       toAmount(summary.CashOutflow),
		NetCashFlow:       toAmount(summary.NetCashFlow),
		RevenueCategories: toCategorySummaries(summary.RevenueCategories),
		ExpenseCategories: toCategorySummaries(summary.ExpenseCategories),
		Metadata: ReportMetadataResponse{
			TotalItems:           output.Metadata.TotalItems,
			TotalCompleted:       output.Metadata.TotalCompleted,
			PeriodItemCount:      output.Metadata.PeriodItemCount,
			PeriodCompletedCount: output.Metadata.PeriodCompletedCount,
			CompletionRate:       output.Metadata.CompletionRate,
		},
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
	}
}

// ToFinanceHistoryResponse converts monthly summaries to a FinanceHistoryResponse DTO.
func ToFinanceHistoryResponse(summaries []report.FinanceSummary, envelope ReportEnvelope, generatedAt time.Time) FinanceHistoryResponse {
	entries := make([]HistoryEntryResponse, len(summaries))
	for i, summary := range summaries {
		entries[i] = HistoryEntryResponse{
			PeriodStart:       summary.PeriodStart.Format("2006-01-02"),
			PeriodEnd:         summary.PeriodEnd.Format("2006-01-02"),
			TotalRevenue:      toAmount(summary.TotalRevenue),
			TotalExpenses:     toAmount(summary.TotalExpenses),
			NetProfit:         toAmount(summary.NetProfit),
			CashInflow:        toAmount(summary.CashInflow),
			CashOutflow:       toAmount(summary.CashOutflow),
			NetCashFlow:       toAmount(summary.NetCashFlow),
			ExpenseCategories: toCategorySummaries(summary.ExpenseCategories),
		}
	}

	return FinanceHistoryResponse{
		ProjectCode: envelope.ProjectCode,
		ProjectName: envelope.ProjectName,
		PeriodType:  string(report.PeriodTypeMonthly),
		Currency:    envelope.Currency,
		Months:      len(summaries),
		Summaries:   entries,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
	}
}

func toAmount(d decimal.Decimal) float64 {
	value, _ := d.Float64()
	return value
}

func toCategorySummaries(categories []report.CategorySummary) []CategorySummaryResponse {
	responses := make([]CategorySummaryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = CategorySummaryResponse{
			Name:   cat.Name,
			Amount: toAmount(cat.Amount),
			Count:  cat.Count,
		}
	}
	return responses
}
