package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceCategory is one entry of a closed expense or revenue category list.
type FinanceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ExpenseCategories is the closed list of farm expense categories.
var ExpenseCategories = []FinanceCategory{
	{ID: "feed_supplements", Name: "Feed & Supplements", Description: "Animal feed, hay, grain, mineral supplements"},
	{ID: "veterinary_health", Name: "Veterinary & Health", Description: "Vet visits, medications, vaccinations"},
	{ID: "equipment_supplies", Name: "Equipment & Supplies", Description: "Fencing, tools, farm supplies"},
	{ID: "fuel_maintenance", Name: "Fuel & Maintenance", Description: "Vehicle fuel, equipment maintenance"},
	{ID: "utilities", Name: "Utilities", Description: "Electricity, water, internet, phone"},
	{ID: "labor_services", Name: "Labor & Services", Description: "Hired help, professional services"},
	{ID: "facilities_housing", Name: "Facilities & Housing", Description: "Barn repairs, housing improvements"},
	{ID: "marketing_advertising", Name: "Marketing & Advertising", Description: "Website, advertising, show fees"},
	{ID: "insurance_taxes", Name: "Insurance & Taxes", Description: "Property insurance, business taxes"},
	{ID: "other", Name: "Other Expenses", Description: "Miscellaneous farm expenses"},
}

// RevenueCategories is the closed list of farm revenue types.
var RevenueCategories = []FinanceCategory{
	{ID: "livestock_sales", Name: "Livestock Sales", Description: "Sale of animals"},
	{ID: "wool_fiber", Name: "Wool & Fiber", Description: "Wool, mohair, fiber sales"},
	{ID: "milk_products", Name: "Milk Products", Description: "Milk, cheese, dairy products"},
	{ID: "breeding_fees", Name: "Breeding Fees", Description: "Breeding service fees"},
	{ID: "grants_subsidies", Name: "Grants & Subsidies", Description: "Government payments, grants"},
	{ID: "other_revenue", Name: "Other Revenue", Description: "Miscellaneous income"},
}

// Expense is one operating expense entry in the farm ledger.
type Expense struct {
	ID                 string          `json:"id"`
	Category           string          `json:"category"`
	Subcategory        string          `json:"subcategory,omitempty"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Date               string          `json:"date"` // ISO calendar date
	VendorSupplier     string          `json:"vendor_supplier,omitempty"`
	PaymentMethod      string          `json:"payment_method"` // cash, check, credit_card, bank_transfer, other
	PaymentStatus      string          `json:"payment_status"` // paid, pending, scheduled
	IsRecurring        bool            `json:"is_recurring"`
	RecurringFrequency string          `json:"recurring_frequency,omitempty"` // weekly, monthly, quarterly, annually
	NextDueDate        string          `json:"next_due_date,omitempty"`
	ReferenceID        string          `json:"reference_id,omitempty"`
	ReferenceType      string          `json:"reference_type,omitempty"`
	TaxDeductible      bool            `json:"tax_deductible"`
	Notes              string          `json:"notes,omitempty"`
	Receipts           []string        `json:"receipts"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (e Expense) RecordID() string { return e.ID }

// CreatedTime returns the record creation timestamp.
func (e Expense) CreatedTime() time.Time { return e.CreatedAt }

// Revenue is one income entry in the farm ledger.
type Revenue struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Source        string          `json:"source,omitempty"` // customer name, auction house
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"` // received, pending, overdue
	ReferenceID   string          `json:"reference_id,omitempty"`
	ReferenceType string          `json:"reference_type,omitempty"`
	TaxCategory   string          `json:"tax_category,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (r Revenue) RecordID() string { return r.ID }

// CreatedTime returns the record creation timestamp.
func (r Revenue) CreatedTime() time.Time { return r.CreatedAt }
