package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/granhotel/backend/internal/domain/inventory"
	"github.com/granhotel/backend/internal/domain/shared"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// The ledger is append-only; there are no update or delete operations.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Save appends a movement to the ledger
func (r *GormStockMovementRepository) Save(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByProduct lists a product's movements newest first
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, query inventory.MovementHistoryQuery, filter shared.Filter) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	q := r.applyHistoryQuery(
		r.db.WithContext(ctx).Model(&inventory.StockMovement{}).Where("product_id = ?", productID),
		query,
	)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		q = q.Offset(offset).Limit(filter.PageSize)
	}

	// id breaks ties between movements sharing a timestamp so pages are stable
	if err := q.Order("movement_date DESC, id DESC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// CountByProduct counts a product's movements matching the query
func (r *GormStockMovementRepository) CountByProduct(ctx context.Context, productID uuid.UUID, query inventory.MovementHistoryQuery) (int64, error) {
	var count int64
	q := r.applyHistoryQuery(
		r.db.WithContext(ctx).Model(&inventory.StockMovement{}).Where("product_id = ?", productID),
		query,
	)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumQuantityByProduct returns the signed sum of all ledger entries for a product
func (r *GormStockMovementRepository) SumQuantityByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var result struct {
		Total int64
	}
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Select("COALESCE(SUM(quantity_changed), 0) as total").
		Where("product_id = ?", productID).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

// applyHistoryQuery narrows the query by date range and movement type.
// DateTo is inclusive, so the cutoff is the start of the following day.
func (r *GormStockMovementRepository) applyHistoryQuery(q *gorm.DB, query inventory.MovementHistoryQuery) *gorm.DB {
	if query.DateFrom != nil {
		q = q.Where("movement_date >= ?", *query.DateFrom)
	}
	if query.DateTo != nil {
		q = q.Where("movement_date < ?", query.DateTo.Add(24*time.Hour))
	}
	if query.MovementType != nil {
		q = q.Where("movement_type = ?", *query.MovementType)
	}
	return q
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
