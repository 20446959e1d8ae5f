// Package report contains the reporting use cases consumed by the
// executive dashboard.
package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/study-cards/backend/internal/domain/entity"
)

func testCard(cost string, completed bool, category string, created time.Time) *entity.StudyCard {
	var costPtr *decimal.Decimal
	if cost != "" {
		d := decimal.RequireFromString(cost)
		costPtr = &d
	}
	return &entity.StudyCard{
		Title:         "card",
		Category:      category,
		EstimatedCost: costPtr,
		IsCompleted:   completed,
		CreatedAt:     created,
	}
}

func TestAggregate(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)

	t.Run("worked example", func(t *testing.T) {
		cards := []*entity.StudyCard{
			testCard("100", false, "", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
			testCard("50", true, "", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)),
		}

		summary := Aggregate(cards, start, end)

		if !summary.TotalExpenses.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected totalExpenses 150, got %s", summary.TotalExpenses)
		}
		if !summary.TotalRevenue.Equal(decimal.RequireFromString("50")) {
			t.Errorf("expected totalRevenue 50, got %s", summary.TotalRevenue)
		}
		if !summary.NetProfit.Equal(decimal.RequireFromString("-100")) {
			t.Errorf("expected netProfit -100, got %s", summary.NetProfit)
		}
		if len(summary.ExpenseCategories) != 1 {
			t.Fatalf("expected 1 expense category, got %d", len(summary.ExpenseCategories))
		}
		bucket := summary.ExpenseCategories[0]
		if bucket.Name != entity.UncategorizedLabel {
			t.Errorf("expected category %q, got %q", entity.UncategorizedLabel, bucket.Name)
		}
		if !bucket.Amount.Equal(decimal.RequireFromString("150")) || bucket.Count != 2 {
			t.Errorf("expected bucket amount 150 count 2, got %s count %d", bucket.Amount, bucket.Count)
		}
	})

	t.Run("revenue equals completed value and cash flow mirrors profit", func(t *testing.T) {
		cards := []*entity.StudyCard{
			testCard("10.50", true, "books", start),
			testCard("20", false, "books", start),
			testCard("5.25", true, "courses", start),
		}

		summary := Aggregate(cards, start, end)

		completedValue := decimal.RequireFromString("15.75")
		if !summary.TotalRevenue.Equal(completedValue) {
			t.Errorf("expected totalRevenue %s, got %s", completedValue, summary.TotalRevenue)
		}
		if !summary.CashInflow.Equal(summary.TotalRevenue) {
			t.Errorf("expected cashInflow == totalRevenue, got %s vs %s", summary.CashInflow, summary.TotalRevenue)
		}
		if !summary.CashOutflow.Equal(summary.TotalExpenses) {
			t.Errorf("expected cashOutflow == totalExpenses, got %s vs %s", summary.CashOutflow, summary.TotalExpenses)
		}
		if !summary.NetProfit.Equal(summary.TotalRevenue.Sub(summary.TotalExpenses)) {
			t.Errorf("netProfit identity violated: %s", summary.NetProfit)
		}
		if !summary.NetCashFlow.Equal(summary.NetProfit) {
			t.Errorf("expected netCashFlow == netProfit, got %s vs %s", summary.NetCashFlow, summary.NetProfit)
		}
	})

	t.Run("category sums reconcile with totals", func(t *testing.T) {
		cards := []*entity.StudyCard{
			testCard("100", false, "books", start),
			testCard("40", true, "courses", start),
			testCard("60", false, "books", start),
			testCard("", true, "", start),
			testCard("30", true, "books", start),
		}

		summary := Aggregate(cards, start, end)

		sum := decimal.Zero
		count := 0
		for _, c := range summary.ExpenseCategories {
			sum = sum.Add(c.Amount)
			count += c.Count
		}
		if !sum.Equal(summary.TotalExpenses) {
			t.Errorf("expense category amounts sum to %s, want %s", sum, summary.TotalExpenses)
		}
		if count != len(cards) {
			t.Errorf("expense category counts sum to %d, want %d", count, len(cards))
		}

		revSum := decimal.Zero
		for _, c := range summary.RevenueCategories {
			revSum = revSum.Add(c.Amount)
		}
		if !revSum.Equal(summary.TotalRevenue) {
			t.Errorf("revenue category amounts sum to %s, want %s", revSum, summary.TotalRevenue)
		}
	})

	t.Run("categories keep first-occurrence order", func(t *testing.T) {
		cards := []*entity.StudyCard{
			testCard("1", false, "zeta", start),
			testCard("1", false, "alpha", start),
			testCard("1", false, "zeta", start),
			testCard("1", false, "mid", start),
		}

		summary := Aggregate(cards, start, end)

		want := []string{"zeta", "alpha", "mid"}
		if len(summary.ExpenseCategories) != len(want) {
			t.Fatalf("expected %d categories, got %d", len(want), len(summary.ExpenseCategories))
		}
		for i, name := range want {
			if summary.ExpenseCategories[i].Name != name {
				t.Errorf("position %d: expected %q, got %q", i, name, summary.ExpenseCategories[i].Name)
			}
		}
	})

	t.Run("missing cost treated as zero", func(t *testing.T) {
		cards := []*entity.StudyCard{
			testCard("", true, "books", start),
			testCard("25", false, "books", start),
		}

		summary := Aggregate(cards, start, end)

		if !summary.TotalExpenses.Equal(decimal.RequireFromString("25")) {
			t.Errorf("expected totalExpenses 25, got %s", summary.TotalExpenses)
		}
		if !summary.TotalRevenue.Equal(decimal.Zero) {
			t.Errorf("expected totalRevenue 0, got %s", summary.TotalRevenue)
		}
		if summary.PeriodCompletedCount != 1 {
			t.Errorf("expected 1 completed card, got %d", summary.PeriodCompletedCount)
		}
	})

	t.Run("empty input yields zero summary with empty category lists", func(t *testing.T) {
		summary := Aggregate(nil, start, end)

		if !summary.TotalExpenses.Equal(decimal.Zero) || !summary.TotalRevenue.Equal(decimal.Zero) {
			t.Errorf("expected zero totals, got expenses %s revenue %s", summary.TotalExpenses, summary.TotalRevenue)
		}
		if summary.ExpenseCategories == nil || len(summary.ExpenseCategories) != 0 {
			t.Errorf("expected empty (non-nil) expense categories, got %v", summary.ExpenseCategories)
		}
		if summary.RevenueCategories == nil || len(summary.RevenueCategories) != 0 {
			t.Errorf("expected empty (non-nil) revenue categories, got %v", summary.RevenueCategories)
		}
	})
}

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		total, completed int
		want             int
	}{
		{0, 0, 0},
		{10, 0, 0},
		{10, 10, 100},
		{3, 1, 33},
		{3, 2, 67},
		{7, 5, 71},
		{200, 1, 1},
		{10, 12, 100}, // clamped even on inconsistent counts
	}

	for _, tc := range cases {
		got := CompletionRate(tc.total, tc.completed)
		if got != tc.want {
			t.Errorf("CompletionRate(%d, %d) = %d, want %d", tc.total, tc.completed, got, tc.want)
		}
	}
}
