package orders

import (
	"context"
	"errors"
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

	return NewService(registry.Orders, registry.Products, nil), registry
}

func draftOrder(items ...models.OrderItem) models.Order {
	return models.Order{
		CustomerName:  "Mary Jensen",
		CustomerEmail: "mary@example.com",
		OrderItems:    items,
	}
}

func TestCreateOrderResolvesUnitPrice(t *testing.T) {
	svc, _ := demoService(t)

	// Submitted price is ignored; the catalog price wins.
	order, err := svc.CreateOrder(context.Background(), draftOrder(models.OrderItem{
		ProductID:    "demo-prod-1",
		Quantity:     3,
		PricePerUnit: decimal.NewFromInt(1),
	}))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if !order.OrderItems[0].PricePerUnit.Equal(decimal.RequireFromString("8.00")) {
		t.Fatalf("resolved price = %s, want catalog 8.00", order.OrderItems[0].PricePerUnit)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(24)) {
		t.Fatalf("total = %s, want 24", order.TotalAmount)
	}
	if order.Status != models.OrderPending {
		t.Fatalf("status = %q, want pending default", order.Status)
	}
}

func TestCreateOrderResolvesCutTierPrice(t *testing.T) {
	svc, _ := demoService(t)

	cases := []struct {
		name string
		item models.OrderItem
		want string
	}{
		{
			name: "explicit premium tier",
			item: models.OrderItem{ProductID: "demo-prod-2", Quantity: 10, Cut: "loin", PricingTier: "premium"},
			want: "4.50",
		},
		{
			name: "tier defaults to normalized",
			item: models.OrderItem{ProductID: "demo-prod-2", Quantity: 10, Cut: "ribs"},
			want: "4.00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := svc.CreateOrder(context.Background(), draftOrder(tc.item))
			if err != nil {
				t.Fatalf("create order: %v", err)
			}
			if !order.OrderItems[0].PricePerUnit.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("price = %s, want %s", order.OrderItems[0].PricePerUnit, tc.want)
			}
		})
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, registry := demoService(t)
	ctx := context.Background()

	// Make a seeded product unavailable.
	product, err := registry.Products.Get(ctx, "demo-prod-1")
	if err != nil {
		t.Fatalf("load product: %v", err)
	}
	product.IsAvailable = false
	if _, err := registry.Products.Update(ctx, product.ID, product); err != nil {
		t.Fatalf("update product: %v", err)
	}

	cases := []struct {
		name string
		item models.OrderItem
	}{
		{name: "unavailable product", item: models.OrderItem{ProductID: "demo-prod-1", Quantity: 1}},
		{name: "zero quantity", item: models.OrderItem{ProductID: "demo-prod-2", Quantity: 0, Cut: "loin"}},
		{name: "cut required", item: models.OrderItem{ProductID: "demo-prod-2", Quantity: 1}},
		{name: "unknown cut", item: models.OrderItem{ProductID: "demo-prod-2", Quantity: 1, Cut: "hooves"}},
		{name: "unknown tier", item: models.OrderItem{ProductID: "demo-prod-2", Quantity: 1, Cut: "loin", PricingTier: "bargain"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateOrder(ctx, draftOrder(tc.item)); !errors.Is(err, manager.ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
		})
	}

	if _, err := svc.CreateOrder(ctx, draftOrder(models.OrderItem{ProductID: "nope", Quantity: 1})); !errors.Is(err, manager.ErrNotFound) {
		t.Fatalf("unknown product: %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, registry := demoService(t)
	ctx := context.Background()

	if err := svc.UpdateStatus(ctx, "demo-order-1", "not-a-status"); !errors.Is(err, manager.ErrValidation) {
		t.Fatalf("invalid status: %v, want ErrValidation", err)
	}

	if err := svc.UpdateStatus(ctx, "demo-order-1", models.OrderConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	order, err := registry.Orders.Get(ctx, "demo-order-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if order.Status != models.OrderConfirmed {
		t.Fatalf("status = %q, want confirmed", order.Status)
	}
}
