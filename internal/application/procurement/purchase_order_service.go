package procurement

import (
	"context"
	"errors"
	"fmt"

	"github.com/granhotel/backend/internal/domain/catalog"
	"github.com/granhotel/backend/internal/domain/inventory"
	"github.com/granhotel/backend/internal/domain/procurement"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseOrderService handles purchase order operations. Receiving goods
// routes the stock change through the inventory StockUpdater inside the
// same transaction that updates the order.
type PurchaseOrderService struct {
	scope     TransactionScope
	updater   *inventory.StockUpdater
	orders    procurement.PurchaseOrderRepository
	suppliers procurement.SupplierRepository
	products  catalog.ProductRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	scope TransactionScope,
	orders procurement.PurchaseOrderRepository,
	suppliers procurement.SupplierRepository,
	products catalog.ProductRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		scope:     scope,
		updater:   inventory.NewStockUpdater(),
		orders:    orders,
		suppliers: suppliers,
		products:  products,
	}
}

// Create validates supplier and products and persists the order with its
// lines atomically. Lines without an explicit price take the product's
// current catalog price.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "A purchase order requires at least one item")
	}

	if _, err := s.suppliers.FindByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainErrorf("NOT_FOUND", "Supplier %s not found", req.SupplierID)
		}
		return nil, err
	}

	po, err := procurement.NewPurchaseOrder(req.SupplierID, req.ExpectedDeliveryDate, req.Notes)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Items {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainErrorf("NOT_FOUND", "Product %s not found", line.ProductID)
			}
			return nil, err
		}

		unitPrice := product.Price
		if line.UnitPricePaid != nil {
			unitPrice = *line.UnitPricePaid
		}
		if err := po.AddItem(line.ProductID, line.QuantityOrdered, unitPrice); err != nil {
			return nil, err
		}
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.PurchaseOrders().Save(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// ReceiveItem records a delivery against one line. The line increment, the
// derived order status and the stock ledger entry commit in a single
// transaction, with both the order and the inventory aggregate row-locked.
func (s *PurchaseOrderService) ReceiveItem(ctx context.Context, itemID uuid.UUID, quantity int64) (*PurchaseOrderResponse, error) {
	var received *procurement.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		po, err := repos.PurchaseOrders().FindByItemIDForUpdate(ctx, itemID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainErrorf("NOT_FOUND", "Purchase order item %s not found", itemID)
			}
			return err
		}

		item, err := po.ReceiveItem(itemID, quantity)
		if err != nil {
			return err
		}

		poItemID := item.ID
		_, err = s.updater.Apply(ctx, repos.InventoryItems(), repos.StockMovements(), inventory.StockUpdate{
			ProductID:           item.ProductID,
			QuantityChanged:     quantity,
			MovementType:        inventory.MovementPurchaseReceipt,
			Reason:              fmt.Sprintf("Received against PO item %s (PO %s)", item.ID, po.ID),
			PurchaseOrderItemID: &poItemID,
		})
		if err != nil {
			return err
		}

		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}

		received = po
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(received)
	return &response, nil
}

// UpdateStatus performs a manual status change on an order
func (s *PurchaseOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*PurchaseOrderResponse, error) {
	target := procurement.PurchaseOrderStatus(status)
	if !target.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_INPUT", "Unknown purchase order status: %s", status)
	}

	var updated *procurement.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		po, err := repos.PurchaseOrders().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := po.TransitionTo(target); err != nil {
			return err
		}
		if err := repos.PurchaseOrders().Save(ctx, po); err != nil {
			return err
		}
		updated = po
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(updated)
	return &response, nil
}

// GetByID returns one order with its lines
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// List returns orders matching the filter, newest first
func (s *PurchaseOrderService) List(ctx context.Context, listFilter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	if listFilter.Status != "" && !procurement.PurchaseOrderStatus(listFilter.Status).IsValid() {
		return nil, 0, shared.NewDomainErrorf("INVALID_INPUT", "Unknown purchase order status: %s", listFilter.Status)
	}

	filter := shared.DefaultFilter()
	filter.OrderBy = "order_date"
	if listFilter.Page > 0 {
		filter.Page = listFilter.Page
	}
	if listFilter.PageSize > 0 {
		filter.PageSize = listFilter.PageSize
	}
	if listFilter.SupplierID != nil {
		filter.Filters["supplier_id"] = *listFilter.SupplierID
	}
	if listFilter.Status != "" {
		filter.Filters["status"] = listFilter.Status
	}
	if listFilter.DateFrom != nil {
		filter.Filters["order_date_from"] = *listFilter.DateFrom
	}
	if listFilter.DateTo != nil {
		filter.Filters["order_date_to"] = *listFilter.DateTo
	}

	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orders.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(orders), total, nil
}
