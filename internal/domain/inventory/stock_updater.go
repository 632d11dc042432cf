package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockUpdate describes one requested change to a product's stock level
type StockUpdate struct {
	ProductID           uuid.UUID
	QuantityChanged     int64
	MovementType        StockMovementType
	Reason              string
	PurchaseOrderItemID *uuid.UUID
}

// StockUpdater is the single choke point through which every stock level
// change flows. It loads the aggregate under a row lock, applies the delta
// and appends the matching ledger entry, so the two always commit together.
// Callers are expected to run Apply inside a transaction scope and pass the
// transaction-bound repositories.
type StockUpdater struct{}

// NewStockUpdater creates the stock update domain service
func NewStockUpdater() *StockUpdater {
	return &StockUpdater{}
}

// Apply performs one stock update. It returns the mutated aggregate.
func (u *StockUpdater) Apply(
	ctx context.Context,
	items InventoryItemRepository,
	movements StockMovementRepository,
	update StockUpdate,
) (*InventoryItem, error) {
	if update.QuantityChanged == 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity change cannot be zero")
	}
	if !update.MovementType.IsValid() {
		return nil, shared.NewDomainErrorf("INVALID_MOVEMENT_TYPE", "Unknown stock movement type: %s", update.MovementType)
	}

	item, err := items.FindByProductIDForUpdate(ctx, update.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainErrorf("NOT_FOUND", "No inventory record for product %s", update.ProductID)
		}
		return nil, err
	}

	now := time.Now()
	if err := item.ApplyMovement(update.QuantityChanged, update.MovementType, now); err != nil {
		return nil, err
	}

	movement, err := NewStockMovement(update.ProductID, update.QuantityChanged, update.MovementType, update.Reason, update.PurchaseOrderItemID, now)
	if err != nil {
		return nil, err
	}

	if err := items.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := movements.Save(ctx, movement); err != nil {
		return nil, err
	}

	return item, nil
}
