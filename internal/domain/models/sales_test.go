package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name     string
		items    []SaleItem
		tax      string
		discount string
		subtotal string
		total    string
	}{
		{
			name:     "single animal no adjustments",
			items:    []SaleItem{{UnitPrice: dec("275.00"), Quantity: 1}},
			tax:      "0",
			discount: "0",
			subtotal: "275",
			total:    "275",
		},
		{
			name: "multiple lines with tax and discount",
			items: []SaleItem{
				{UnitPrice: dec("450.00"), Quantity: 2},
				{UnitPrice: dec("8.50"), Quantity: 4},
			},
			tax:      "77.22",
			discount: "50",
			subtotal: "934",
			total:    "961.22",
		},
		{
			name:     "discount exceeds nothing",
			items:    []SaleItem{{UnitPrice: dec("100"), Quantity: 1}},
			tax:      "8.25",
			discount: "10",
			subtotal: "100",
			total:    "98.25",
		},
		{
			name:     "no items",
			items:    nil,
			tax:      "0",
			discount: "0",
			subtotal: "0",
			total:    "0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sale := SaleRecord{
				Items:          tc.items,
				TaxAmount:      dec(tc.tax),
				DiscountAmount: dec(tc.discount),
			}
			sale.ComputeTotals()

			if !sale.Subtotal.Equal(dec(tc.subtotal)) {
				t.Fatalf("subtotal = %s, want %s", sale.Subtotal, tc.subtotal)
			}
			if !sale.TotalAmount.Equal(dec(tc.total)) {
				t.Fatalf("total = %s, want %s", sale.TotalAmount, tc.total)
			}
		})
	}
}

func TestComputeTotalsOverwritesStaleValues(t *testing.T) {
	sale := SaleRecord{
		Items:    []SaleItem{{UnitPrice: dec("300"), Quantity: 1}},
		Subtotal: dec("999"),
	}
	sale.ComputeTotals()

	if !sale.Subtotal.Equal(dec("300")) {
		t.Fatalf("subtotal = %s, want 300", sale.Subtotal)
	}
	if !sale.TotalAmount.Equal(dec("300")) {
		t.Fatalf("total = %s, want 300", sale.TotalAmount)
	}
}

func TestNewInvoiceID(t *testing.T) {
	now := time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)

	id := NewInvoiceID(now)
	pattern := regexp.MustCompile(`^INV-20250601-[0-9A-F]{8}$`)
	if !pattern.MatchString(id) {
		t.Fatalf("invoice id %q does not match %s", id, pattern)
	}

	if other := NewInvoiceID(now); other == id {
		t.Fatalf("expected unique suffix, got %q twice", id)
	}
}
