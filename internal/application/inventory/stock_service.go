package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/granhotel/backend/internal/domain/inventory"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockService exposes the stock ledger operations. Every write goes
// through the StockUpdater choke point inside a transaction scope; reads
// use the plain repositories.
type StockService struct {
	scope     TransactionScope
	updater   *inventory.StockUpdater
	items     inventory.InventoryItemRepository
	movements inventory.StockMovementRepository
}

// NewStockService creates a new StockService
func NewStockService(
	scope TransactionScope,
	items inventory.InventoryItemRepository,
	movements inventory.StockMovementRepository,
) *StockService {
	return &StockService{
		scope:     scope,
		updater:   inventory.NewStockUpdater(),
		items:     items,
		movements: movements,
	}
}

// UpdateStock applies one signed stock change and its ledger entry atomically
func (s *StockService) UpdateStock(ctx context.Context, req UpdateStockRequest) (*InventoryItemResponse, error) {
	movementType := inventory.StockMovementType(req.MovementType)
	if !movementType.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_MOVEMENT_TYPE", "Unknown stock movement type: %s", req.MovementType)
	}

	var updated *inventory.InventoryItem
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := s.updater.Apply(ctx, repos.InventoryItems(), repos.StockMovements(), inventory.StockUpdate{
			ProductID:           req.ProductID,
			QuantityChanged:     req.QuantityChanged,
			MovementType:        movementType,
			Reason:              req.Reason,
			PurchaseOrderItemID: req.PurchaseOrderItemID,
		})
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(updated)
	return &response, nil
}

// ProvisionInventoryItem creates the inventory record for a product if one
// does not exist yet. Calling it again for the same product returns the
// existing record untouched. A non-zero initial quantity is recorded as an
// INITIAL_STOCK ledger entry.
func (s *StockService) ProvisionInventoryItem(ctx context.Context, req ProvisionInventoryItemRequest) (*InventoryItemResponse, error) {
	if req.InitialQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial quantity cannot be negative")
	}

	var result *inventory.InventoryItem
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.InventoryItems().FindByProductID(ctx, req.ProductID)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		item, err := inventory.NewInventoryItem(req.ProductID)
		if err != nil {
			return err
		}
		if err := item.SetLowStockThreshold(req.LowStockThreshold); err != nil {
			return err
		}

		now := time.Now()
		var movement *inventory.StockMovement
		if req.InitialQuantity != 0 {
			if err := item.ApplyMovement(req.InitialQuantity, inventory.MovementInitialStock, now); err != nil {
				return err
			}
			movement, err = inventory.NewStockMovement(req.ProductID, req.InitialQuantity,
				inventory.MovementInitialStock, "Initial stock on provisioning", nil, now)
			if err != nil {
				return err
			}
		}

		if err := repos.InventoryItems().Save(ctx, item); err != nil {
			// lost a provisioning race: the record exists now, return it
			if errors.Is(err, shared.ErrAlreadyExists) {
				existing, findErr := repos.InventoryItems().FindByProductID(ctx, req.ProductID)
				if findErr != nil {
					return findErr
				}
				result = existing
				return nil
			}
			return err
		}
		if movement != nil {
			if err := repos.StockMovements().Save(ctx, movement); err != nil {
				return err
			}
		}

		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(result)
	return &response, nil
}

// SetLowStockThreshold updates the alert threshold, provisioning the
// inventory record first if the product has none.
func (s *StockService) SetLowStockThreshold(ctx context.Context, productID uuid.UUID, threshold int64) (*InventoryItemResponse, error) {
	var result *inventory.InventoryItem
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.InventoryItems().FindByProductIDForUpdate(ctx, productID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return err
			}
			item, err = inventory.NewInventoryItem(productID)
			if err != nil {
				return err
			}
		}

		if err := item.SetLowStockThreshold(threshold); err != nil {
			return err
		}
		if err := repos.InventoryItems().Save(ctx, item); err != nil {
			return err
		}

		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(result)
	return &response, nil
}

// GetByProduct returns the inventory record for a product
func (s *StockService) GetByProduct(ctx context.Context, productID uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.items.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToInventoryItemResponse(item)
	return &response, nil
}

// ListLowStock returns inventory records for active products at or below a
// positive threshold.
func (s *StockService) ListLowStock(ctx context.Context, page, pageSize int) ([]InventoryItemResponse, error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	items, err := s.items.FindLowStock(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToInventoryItemResponses(items), nil
}

// GetMovementHistory lists a product's ledger entries newest first
func (s *StockService) GetMovementHistory(ctx context.Context, productID uuid.UUID, historyFilter MovementHistoryFilter) ([]StockMovementResponse, int64, error) {
	query := inventory.MovementHistoryQuery{
		DateFrom: historyFilter.DateFrom,
		DateTo:   historyFilter.DateTo,
	}
	if historyFilter.MovementType != "" {
		movementType := inventory.StockMovementType(historyFilter.MovementType)
		if !movementType.IsValid() {
			return nil, 0, shared.NewDomainErrorf("INVALID_MOVEMENT_TYPE", "Unknown stock movement type: %s", historyFilter.MovementType)
		}
		query.MovementType = &movementType
	}

	filter := shared.DefaultFilter()
	if historyFilter.Page > 0 {
		filter.Page = historyFilter.Page
	}
	if historyFilter.PageSize > 0 {
		filter.PageSize = historyFilter.PageSize
	}

	movements, err := s.movements.FindByProduct(ctx, productID, query, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.movements.CountByProduct(ctx, productID, query)
	if err != nil {
		return nil, 0, err
	}

	return ToStockMovementResponses(movements), total, nil
}

// AuditProduct compares an aggregate's on-hand quantity against the sum of
// its ledger. The two are updated in the same transaction, so any mismatch
// points at out-of-band writes.
func (s *StockService) AuditProduct(ctx context.Context, productID uuid.UUID) (*StockAuditResponse, error) {
	item, err := s.items.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	total, err := s.movements.SumQuantityByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &StockAuditResponse{
		ProductID:      productID,
		QuantityOnHand: item.QuantityOnHand,
		LedgerTotal:    total,
		Consistent:     item.QuantityOnHand == total,
	}, nil
}
