package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CutPricing maps pricing tier name to price for one cut of meat.
type CutPricing map[string]decimal.Decimal

// Product is a sellable storefront entry. Simple products use PricePerUnit;
// cut-based products (half/whole hog, lamb) price through Cuts.
type Product struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Category          string                `json:"category"` // eggs, hog, sheep, chicken
	Type              string                `json:"type"`     // eggs, half_hog, whole_hog, sheep_meat, lamb_meat
	Description       string                `json:"description"`
	PricePerUnit      decimal.Decimal       `json:"price_per_unit"`
	Unit              string                `json:"unit,omitempty"` // dozen, lb, each
	Cuts              map[string]CutPricing `json:"cuts,omitempty"`
	MinOrderQuantity  FlexInt               `json:"min_order_quantity"`
	MaxOrderQuantity  FlexInt               `json:"max_order_quantity,omitempty"`
	AvailableQuantity FlexInt               `json:"available_quantity,omitempty"`
	IsAvailable       bool                  `json:"is_available"`
	EstimatedLeadTime string                `json:"estimated_lead_time"`
	Photos            []string              `json:"photos"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (p Product) RecordID() string { return p.ID }

// CreatedTime returns the record creation timestamp.
func (p Product) CreatedTime() time.Time { return p.CreatedAt }

// OrderStatus enumerates pre-order fulfillment states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderReady      OrderStatus = "ready"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderProcessing, OrderReady, OrderCompleted, OrderCancelled,
}

// ValidOrderStatus reports whether s is a member of the closed enumeration.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// OrderItem is one cart line; the unit price is resolved and frozen at order time.
type OrderItem struct {
	ProductID    string          `json:"product_id"`
	Quantity     FlexInt         `json:"quantity"`
	Cut          string          `json:"cut,omitempty"`
	PricingTier  string          `json:"pricing_tier,omitempty"` // normalized, premium
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// Order is a customer-submitted pre-order cart.
type Order struct {
	ID                 string          `json:"id"`
	CustomerName       string          `json:"customer_name"`
	CustomerEmail      string          `json:"customer_email"`
	CustomerPhone      string          `json:"customer_phone"`
	CustomerAddress    string          `json:"customer_address"`
	OrderItems         []OrderItem     `json:"order_items"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	Status             OrderStatus     `json:"status"`
	Notes              string          `json:"notes,omitempty"`
	DeliveryMethod     string          `json:"delivery_method,omitempty"`
	PreferredPickup    string          `json:"preferred_pickup_date,omitempty"`
	EstimatedDelivery  string          `json:"estimated_delivery,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RecordID returns the immutable collection identity.
func (o Order) RecordID() string { return o.ID }

// CreatedTime returns the record creation timestamp.
func (o Order) CreatedTime() time.Time { return o.CreatedAt }

// ComputeTotal recomputes the order total from resolved line prices.
func (o *Order) ComputeTotal() {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.PricePerUnit.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	o.TotalAmount = total
}
