package inventory

import (
	"context"
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InventoryItemRepository defines the persistence interface for inventory aggregates
type InventoryItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	FindByProductID(ctx context.Context, productID uuid.UUID) (*InventoryItem, error)
	// FindByProductIDForUpdate acquires a row lock on the aggregate so that
	// concurrent stock updates for the same product serialize. Must be
	// called inside a transaction.
	FindByProductIDForUpdate(ctx context.Context, productID uuid.UUID) (*InventoryItem, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)
	// FindLowStock returns items for active products whose quantity has
	// fallen to or below a positive threshold.
	FindLowStock(ctx context.Context, filter shared.Filter) ([]InventoryItem, error)
	Save(ctx context.Context, item *InventoryItem) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// MovementHistoryQuery narrows a movement history listing
type MovementHistoryQuery struct {
	DateFrom     *time.Time
	DateTo       *time.Time // inclusive end of day
	MovementType *StockMovementType
}

// StockMovementRepository defines the persistence interface for the stock ledger
type StockMovementRepository interface {
	Save(ctx context.Context, movement *StockMovement) error
	// FindByProduct lists movements newest first (movement_date desc, id desc)
	FindByProduct(ctx context.Context, productID uuid.UUID, query MovementHistoryQuery, filter shared.Filter) ([]StockMovement, error)
	CountByProduct(ctx context.Context, productID uuid.UUID, query MovementHistoryQuery) (int64, error)
	// SumQuantityByProduct returns the ledger total for consistency checks
	SumQuantityByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
