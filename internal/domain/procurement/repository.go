package procurement

import (
	"context"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines the persistence interface for suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
	FindByName(ctx context.Context, name string) (*Supplier, error)
}

// PurchaseOrderRepository defines the persistence interface for purchase
// orders. Orders always load with their items.
type PurchaseOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	// FindByIDForUpdate locks the order row for the duration of the
	// surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	// FindByItemIDForUpdate resolves the order owning the given line and
	// locks it.
	FindByItemIDForUpdate(ctx context.Context, itemID uuid.UUID) (*PurchaseOrder, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)
	Save(ctx context.Context, po *PurchaseOrder) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)
}
