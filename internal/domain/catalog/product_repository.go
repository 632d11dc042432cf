package catalog

import (
	"context"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	shared.Repository[Product]
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, error)
}
