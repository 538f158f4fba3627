package sales

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/manager"
)

// Service coordinates invoice creation across the sales, customer, and
// inventory managers.
type Service struct {
	sales     *manager.Collection[models.SaleRecord]
	customers *manager.Collection[models.Customer]
	inventory *manager.Collection[models.InventoryItem]
	logger    *zap.Logger
}

// NewService wires a new sales service instance.
func NewService(sales *manager.Collection[models.SaleRecord], customers *manager.Collection[models.Customer], inventory *manager.Collection[models.InventoryItem], logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sales: sales, customers: customers, inventory: inventory, logger: logger}
}

// CreateSale validates the draft against the customer and inventory managers,
// snapshots the customer, computes invoice totals, persists the sale, and
// marks each referenced animal sold at its line-item price.
func (s *Service) CreateSale(ctx context.Context, draft models.SaleRecord) (models.SaleRecord, error) {
	customer, err := s.customers.Get(ctx, draft.CustomerID)
	if err != nil {
		return models.SaleRecord{}, fmt.Errorf("load customer %s: %w", draft.CustomerID, err)
	}
	draft.CustomerInfo = models.CustomerSnapshot{
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Address: customer.Address,
	}

	for i, item := range draft.Items {
		if item.InventoryID == "" {
			continue // ad-hoc line item, nothing to cross-check
		}
		animal, err := s.inventory.Get(ctx, item.InventoryID)
		if err != nil {
			return models.SaleRecord{}, fmt.Errorf("load inventory %s: %w", item.InventoryID, err)
		}
		if animal.Status == models.StatusSold {
			return models.SaleRecord{}, manager.Invalidf("animal %s is already sold", animal.AnimalID)
		}
		if item.AnimalID == "" {
			draft.Items[i].AnimalID = animal.AnimalID
		}
		if item.AnimalType == "" {
			draft.Items[i].AnimalType = animal.AnimalType
		}
	}

	draft.ComputeTotals()
	if draft.PaymentStatus == "" {
		draft.PaymentStatus = models.PaymentPending
	}
	if draft.DeliveryStatus == "" {
		draft.DeliveryStatus = models.DeliveryPending
	}

	sale, err := s.sales.Create(ctx, draft)
	if err != nil {
		return models.SaleRecord{}, err
	}

	for _, item := range sale.Items {
		if item.InventoryID == "" {
			continue
		}
		price := item.UnitPrice
		if _, err := s.inventory.Mutate(ctx, item.InventoryID, func(animal *models.InventoryItem) {
			animal.Status = models.StatusSold
			animal.SalePrice = price
		}); err != nil {
			// The invoice is already persisted; report the stale animal and move on.
			s.logger.Warn("mark animal sold failed",
				zap.String("invoice_id", sale.InvoiceID),
				zap.String("inventory_id", item.InventoryID),
				zap.Error(err))
		}
	}

	s.logger.Info("sale recorded",
		zap.String("invoice_id", sale.InvoiceID),
		zap.String("customer", sale.CustomerInfo.Name),
		zap.String("total", sale.TotalAmount.String()))
	return sale, nil
}

// UpdatePaymentStatus applies a narrow payment-state transition.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) error {
	if !validPayment(status) {
		return manager.Invalidf("invalid payment status %q", status)
	}
	return s.sales.Patch(ctx, id, "/payment-status", string(status), func(sale *models.SaleRecord) {
		sale.PaymentStatus = status
	})
}

// UpdateDeliveryStatus applies a narrow delivery-state transition.
func (s *Service) UpdateDeliveryStatus(ctx context.Context, id string, status models.DeliveryStatus) error {
	if !validDelivery(status) {
		return manager.Invalidf("invalid delivery status %q", status)
	}
	return s.sales.Patch(ctx, id, "/delivery-status", string(status), func(sale *models.SaleRecord) {
		sale.DeliveryStatus = status
	})
}

func validPayment(status models.PaymentStatus) bool {
	for _, known := range models.PaymentStatuses {
		if status == known {
			return true
		}
	}
	return false
}

func validDelivery(status models.DeliveryStatus) bool {
	for _, known := range models.DeliveryStatuses {
		if status == known {
			return true
		}
	}
	return false
}
