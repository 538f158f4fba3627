package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/manager"
)

// Service resolves pre-order carts against the product catalog.
type Service struct {
	orders   *manager.Collection[models.Order]
	products *manager.Collection[models.Product]
	logger   *zap.Logger
}

// NewService wires a new orders service instance.
func NewService(orders *manager.Collection[models.Order], products *manager.Collection[models.Product], logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{orders: orders, products: products, logger: logger}
}

// CreateOrder resolves each line against the catalog (availability, minimum
// quantity, unit or per-cut price), freezes the resolved prices, computes the
// total, and persists the order. Submitted prices are ignored; the catalog is
// the authority.
func (s *Service) CreateOrder(ctx context.Context, draft models.Order) (models.Order, error) {
	for i, item := range draft.OrderItems {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return models.Order{}, err
		}
		if !product.IsAvailable {
			return models.Order{}, manager.Invalidf("product %s is not available", product.Name)
		}
		if item.Quantity < 1 {
			return models.Order{}, manager.Invalidf("quantity for %s must be at least 1", product.Name)
		}
		if product.MinOrderQuantity > 0 && item.Quantity < product.MinOrderQuantity {
			return models.Order{}, manager.Invalidf("minimum order for %s is %d", product.Name, product.MinOrderQuantity)
		}
		if product.MaxOrderQuantity > 0 && item.Quantity > product.MaxOrderQuantity {
			return models.Order{}, manager.Invalidf("maximum order for %s is %d", product.Name, product.MaxOrderQuantity)
		}

		price, err := resolvePrice(product, item)
		if err != nil {
			return models.Order{}, err
		}
		draft.OrderItems[i].PricePerUnit = price
	}

	draft.ComputeTotal()
	if draft.Status == "" {
		draft.Status = models.OrderPending
	}

	order, err := s.orders.Create(ctx, draft)
	if err != nil {
		return models.Order{}, err
	}

	s.logger.Info("order recorded",
		zap.String("order_id", order.ID),
		zap.String("customer", order.CustomerName),
		zap.String("total", order.TotalAmount.String()))
	return order, nil
}

// UpdateStatus moves an order through the fulfillment enumeration.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(string(status)) {
		return manager.Invalidf("invalid order status %q", status)
	}
	return s.orders.Patch(ctx, id, "/status", string(status), func(order *models.Order) {
		order.Status = status
	})
}

// resolvePrice picks the catalog price for a line: cut-based products price
// through the named cut and tier, everything else through the flat unit price.
func resolvePrice(product models.Product, item models.OrderItem) (price decimal.Decimal, err error) {
	if len(product.Cuts) == 0 {
		return product.PricePerUnit, nil
	}

	if item.Cut == "" {
		return price, manager.Invalidf("product %s requires a cut selection", product.Name)
	}
	tiers, ok := product.Cuts[item.Cut]
	if !ok {
		return price, manager.Invalidf("product %s has no cut %q", product.Name, item.Cut)
	}

	tier := item.PricingTier
	if tier == "" {
		tier = "normalized"
	}
	resolved, ok := tiers[tier]
	if !ok {
		return price, manager.Invalidf("cut %q has no pricing tier %q", item.Cut, tier)
	}
	return resolved, nil
}
