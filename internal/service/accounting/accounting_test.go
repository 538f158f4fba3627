package accounting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

func demoService(t *testing.T) (*Service, *manager.Registry) {
	t.Helper()

	client := farmapi.NewClient(config.FarmAPIConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	store := fallback.NewMemoryStore()
	sess := &session.Session{Token: session.DemoToken, Username: "demo", Mode: session.ModeDemo}
	registry := manager.NewRegistry(client, store, sess, nil)

	return NewService(registry.Expenses, registry.Revenue, nil), registry
}

func seedLedgers(t *testing.T, registry *manager.Registry) {
	t.Helper()
	ctx := context.Background()

	// Replace the demo seeds with a deterministic ledger.
	for _, seeded := range mustList(t, registry) {
		if err := registry.Expenses.Delete(ctx, seeded.ID); err != nil {
			t.Fatalf("clear expense: %v", err)
		}
	}
	revenue, err := registry.Revenue.List(ctx, manager.Filter{})
	if err != nil {
		t.Fatalf("list revenue: %v", err)
	}
	for _, seeded := range revenue {
		if err := registry.Revenue.Delete(ctx, seeded.ID); err != nil {
			t.Fatalf("clear revenue: %v", err)
		}
	}

	expenses := []models.Expense{
		{Category: "feed_supplements", Description: "Hay", Date: "2025-01-15", Amount: decimal.RequireFromString("320.50")},
		{Category: "feed_supplements", Description: "Grain", Date: "2025-02-10", Amount: decimal.RequireFromString("179.50")},
		{Category: "veterinary_health", Description: "Vaccines", Date: "2025-02-20", Amount: decimal.NewFromInt(250)},
		{Category: "utilities", Description: "Prior year power", Date: "2024-12-05", Amount: decimal.NewFromInt(90)},
	}
	for _, e := range expenses {
		if _, err := registry.Expenses.Create(ctx, e); err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	incomes := []models.Revenue{
		{Type: "livestock_sales", Description: "Ram sale", Date: "2025-01-20", Amount: decimal.NewFromInt(450)},
		{Type: "livestock_sales", Description: "Hog sale", Date: "2025-02-25", Amount: decimal.NewFromInt(275)},
		{Type: "wool_fiber", Description: "Fleece", Date: "2025-03-01", Amount: decimal.RequireFromString("125.25")},
	}
	for _, r := range incomes {
		if _, err := registry.Revenue.Create(ctx, r); err != nil {
			t.Fatalf("seed revenue: %v", err)
		}
	}
}

func mustList(t *testing.T, registry *manager.Registry) []models.Expense {
	t.Helper()
	items, err := registry.Expenses.List(context.Background(), manager.Filter{})
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	return items
}

func TestSummaryTotalsAndNetProfit(t *testing.T) {
	svc, registry := demoService(t)
	seedLedgers(t, registry)

	summary, err := svc.Summary(context.Background(), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if !summary.TotalExpenses.Equal(decimal.RequireFromString("840")) {
		t.Fatalf("total expenses = %s, want 840", summary.TotalExpenses)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("850.25")) {
		t.Fatalf("total revenue = %s, want 850.25", summary.TotalRevenue)
	}
	if !summary.NetProfit.Equal(decimal.RequireFromString("10.25")) {
		t.Fatalf("net profit = %s, want 10.25", summary.NetProfit)
	}
	if !summary.ExpenseByCategory["feed_supplements"].Equal(decimal.NewFromInt(500)) {
		t.Fatalf("feed_supplements = %s, want 500", summary.ExpenseByCategory["feed_supplements"])
	}
	if !summary.RevenueByType["livestock_sales"].Equal(decimal.NewFromInt(725)) {
		t.Fatalf("livestock_sales = %s, want 725", summary.RevenueByType["livestock_sales"])
	}
}

func TestSummaryDateWindow(t *testing.T) {
	svc, registry := demoService(t)
	seedLedgers(t, registry)

	start := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)

	summary, err := svc.Summary(context.Background(), start, end)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if !summary.TotalExpenses.Equal(decimal.RequireFromString("429.50")) {
		t.Fatalf("february expenses = %s, want 429.50", summary.TotalExpenses)
	}
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(275)) {
		t.Fatalf("february revenue = %s, want 275", summary.TotalRevenue)
	}
	if summary.ExpenseCount != 2 || summary.RevenueCount != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", summary.ExpenseCount, summary.RevenueCount)
	}
}

func TestMonthlyReport(t *testing.T) {
	svc, registry := demoService(t)
	seedLedgers(t, registry)

	report, err := svc.Monthly(context.Background(), 2025)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}

	if report.Year != 2025 || len(report.Months) != 12 {
		t.Fatalf("report shape %d/%d, want 2025 with 12 months", report.Year, len(report.Months))
	}

	jan := report.Months[0]
	if !jan.Expenses.Equal(decimal.RequireFromString("320.50")) || !jan.Revenue.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("january = %s/%s, want 320.50/450", jan.Expenses, jan.Revenue)
	}
	if !jan.Net.Equal(decimal.RequireFromString("129.50")) {
		t.Fatalf("january net = %s, want 129.50", jan.Net)
	}

	// The 2024 entry must not leak into the 2025 report.
	var total decimal.Decimal
	for _, m := range report.Months {
		total = total.Add(m.Expenses)
	}
	if !total.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("2025 expenses = %s, want 750", total)
	}
}

func TestCategories(t *testing.T) {
	svc, _ := demoService(t)

	expenses, revenue := svc.Categories()
	if len(expenses) != 10 {
		t.Fatalf("expense categories = %d, want 10", len(expenses))
	}
	if len(revenue) != 6 {
		t.Fatalf("revenue types = %d, want 6", len(revenue))
	}
	if expenses[0].ID != "feed_supplements" {
		t.Fatalf("first expense category = %q, want feed_supplements", expenses[0].ID)
	}
}
