// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/domain/entity"
)

// CategorySummary is one category bucket in a finance summary.
type CategorySummary struct {
	Name   string
	Amount decimal.Decimal
	Count  int
}

// FinanceSummary is a stateless projection over a set of study cards
// restricted to a period interval. It is recomputed on every request and
// never persisted.
//
// Revenue and cash inflow are both defined as the summed cost of completed
// cards, and expenses and cash outflow as the summed cost of all cards, so
// netProfit == totalRevenue - totalExpenses and
// netCashFlow == cashInflow - cashOutflow hold by construction.
type FinanceSummary struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	CashInflow    decimal.Decimal
	CashOutflow   decimal.Decimal
	NetCashFlow   decimal.Decimal

	// Category buckets in first-occurrence order of the input set.
	RevenueCategories []CategorySummary
	ExpenseCategories []CategorySummary

	PeriodItemCount      int
	PeriodCompletedCount int
}

// categoryGrouper accumulates per-category totals while preserving the
// order in which categories first appear. Iteration order is part of the
// reporting contract, not a map-iteration artifact.
type categoryGrouper struct {
	index   map[string]int
	buckets []CategorySummary
}

func newCategoryGrouper() *categoryGrouper {
	return &categoryGrouper{index: make(map[string]int)}
}

func (g *categoryGrouper) add(name string, amount decimal.Decimal) {
	i, ok := g.index[name]
	if !ok {
		i = len(g.buckets)
		g.index[name] = i
		g.buckets = append(g.buckets, CategorySummary{Name: name, Amount: decimal.Zero})
	}
	g.buckets[i].Amount = g.buckets[i].Amount.Add(amount)
	g.buckets[i].Count++
}

func (g *categoryGrouper) summaries() []CategorySummary {
	if g.buckets == nil {
		return []CategorySummary{}
	}
	return g.buckets
}

// Aggregate computes the finance summary for the given cards, which are
// expected to fall within [start, end]. Pure function of its input set.
func Aggregate(cards []*entity.StudyCard, start, end time.Time) FinanceSummary {
	totalExpenses := decimal.Zero
	completedValue := decimal.Zero
	completedCount := 0

	expenseGroups := newCategoryGrouper()
	revenueGroups := newCategoryGrouper()

	for _, card := range cards {
		cost := card.CostOrZero()
		name := card.CategoryOrDefault()

		totalExpenses = totalExpenses.Add(cost)
		expenseGroups.add(name, cost)

		if card.IsCompleted {
			completedValue = completedValue.Add(cost)
			completedCount++
			revenueGroups.add(name, cost)
		}
	}

	// Revenue and cash inflow are the completed value by definition.
	totalRevenue := completedValue
	cashInflow := completedValue
	cashOutflow := totalExpenses

	return FinanceSummary{
		PeriodStart:          start,
		PeriodEnd:            end,
		TotalRevenue:         totalRevenue,
		TotalExpenses:        totalExpenses,
		NetProfit:            totalRevenue.Sub(totalExpenses),
		CashInflow:           cashInflow,
		CashOutflow:          cashOutflow,
		NetCashFlow:          cashInflow.Sub(cashOutflow),
		RevenueCategories:    revenueGroups.summaries(),
		ExpenseCategories:    expenseGroups.summaries(),
		PeriodItemCount:      len(cards),
		PeriodCompletedCount: completedCount,
	}
}

// CompletionRate returns round(100 * completed / total) clamped to [0, 100],
// and 0 when the table is empty.
func CompletionRate(total, completed int) int {
	if total <= 0 {
		return 0
	}
	rate := int(math.Round(100 * float64(completed) / float64(total)))
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}
