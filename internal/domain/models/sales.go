package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerType enumerates buyer classifications.
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
	CustomerBreeder    CustomerType = "breeder"
)

// Customer is an independently owned buyer record. Sales hold a snapshot of
// the customer at sale time, not a live reference, so later edits never
// rewrite historical invoices.
type Customer struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	CustomerType CustomerType `json:"customer_type"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (c Customer) RecordID() string { return c.ID }

// CreatedTime returns the record creation timestamp.
func (c Customer) CreatedTime() time.Time { return c.CreatedAt }

// CustomerSnapshot is the denormalized buyer copy embedded in a sale.
type CustomerSnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// SaleItem is one invoice line referencing an inventory record.
type SaleItem struct {
	InventoryID string          `json:"inventory_id"`
	AnimalID    string          `json:"animal_id"`
	AnimalType  AnimalType      `json:"animal_type"`
	Quantity    FlexInt         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Weight      FlexFloat       `json:"weight,omitempty"`
	WeightUnit  string          `json:"weight_unit,omitempty"`
	Description string          `json:"description"`
}

// PaymentStatus enumerates invoice payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentCancelled PaymentStatus = "cancelled"
)

// PaymentStatuses lists every valid payment status.
var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentOverdue, PaymentCancelled}

// DeliveryStatus enumerates invoice delivery states.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryShipped   DeliveryStatus = "shipped"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryPickup    DeliveryStatus = "pickup"
)

// DeliveryStatuses lists every valid delivery status.
var DeliveryStatuses = []DeliveryStatus{DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryPickup}

// SaleRecord is a completed livestock sale with its generated invoice.
type SaleRecord struct {
	ID             string           `json:"id"`
	InvoiceID      string           `json:"invoice_id"`
	SaleDate       string           `json:"sale_date"`
	CustomerID     string           `json:"customer_id"`
	CustomerInfo   CustomerSnapshot `json:"customer_info"`
	Items          []SaleItem       `json:"items"`
	SaleType       string           `json:"sale_type"` // breeding_stock, meat, show, custom_order, market
	Subtotal       decimal.Decimal  `json:"subtotal"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	PaymentMethod  string           `json:"payment_method"` // cash, check, online, crypto, nft
	PaymentStatus  PaymentStatus    `json:"payment_status"`
	DueDate        string           `json:"due_date,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	DeliveryStatus DeliveryStatus   `json:"delivery_status"`
	DeliveryDate   string           `json:"delivery_date,omitempty"`
	BlockchainTxID string           `json:"blockchain_tx_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (s SaleRecord) RecordID() string { return s.ID }

// CreatedTime returns the record creation timestamp.
func (s SaleRecord) CreatedTime() time.Time { return s.CreatedAt }

// ComputeTotals recomputes subtotal and total from the current line items.
// Invariant: total = subtotal + tax - discount.
func (s *SaleRecord) ComputeTotals() {
	subtotal := decimal.Zero
	for _, item := range s.Items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	s.Subtotal = subtotal
	s.TotalAmount = subtotal.Add(s.TaxAmount).Sub(s.DiscountAmount)
}

// NewInvoiceID generates a unique invoice number of the form INV-YYYYMMDD-XXXXXXXX.
func NewInvoiceID(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
