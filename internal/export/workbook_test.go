package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/shilohridge/backoffice/internal/demo"
	"github.com/shilohridge/backoffice/internal/service/accounting"
)

func TestWorkbookRoundtrip(t *testing.T) {
	items := demo.Inventory()
	summary := accounting.Summary{
		TotalExpenses: decimal.RequireFromString("840"),
		TotalRevenue:  decimal.RequireFromString("850.25"),
		NetProfit:     decimal.RequireFromString("10.25"),
		ExpenseByCategory: map[string]decimal.Decimal{
			"feed_supplements": decimal.NewFromInt(500),
		},
		RevenueByType: map[string]decimal.Decimal{
			"livestock_sales": decimal.NewFromInt(725),
		},
	}

	data, err := Workbook(items, summary)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("inventory sheet: %v", err)
	}
	if len(rows) != len(items)+1 {
		t.Fatalf("inventory rows = %d, want %d (header + items)", len(rows), len(items)+1)
	}
	if rows[0][0] != "Animal ID" {
		t.Fatalf("header = %q, want Animal ID", rows[0][0])
	}
	if rows[1][0] != items[0].AnimalID {
		t.Fatalf("first row = %q, want %s", rows[1][0], items[0].AnimalID)
	}

	finance, err := f.GetRows("Financial Summary")
	if err != nil {
		t.Fatalf("finance sheet: %v", err)
	}
	var sawNet, sawFeed bool
	for _, row := range finance {
		if len(row) >= 2 && row[0] == "Net Profit" && row[1] == "10.25" {
			sawNet = true
		}
		if len(row) >= 2 && row[0] == "Feed & Supplements" {
			sawFeed = true
		}
	}
	if !sawNet || !sawFeed {
		t.Fatalf("summary sheet missing rows: net=%v feed=%v", sawNet, sawFeed)
	}
}
