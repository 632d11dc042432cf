package persistence

import (
	"context"

	"gorm.io/gorm"

	approc "github.com/granhotel/backend/internal/application/procurement"
	"github.com/granhotel/backend/internal/domain/inventory"
	"github.com/granhotel/backend/internal/domain/procurement"
)

// GormProcurementTransactionScope implements the procurement TransactionScope
// using GORM transactions. Receiving goods updates the order line, the
// inventory aggregate, and the stock ledger in one transaction.
type GormProcurementTransactionScope struct {
	db *gorm.DB
}

// NewGormProcurementTransactionScope creates a new GormProcurementTransactionScope
func NewGormProcurementTransactionScope(db *gorm.DB) *GormProcurementTransactionScope {
	return &GormProcurementTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormProcurementTransactionScope) Execute(ctx context.Context, fn func(repos approc.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormProcurementRepositories{tx: tx})
	})
}

// gormProcurementRepositories provides repositories bound to one transaction
type gormProcurementRepositories struct {
	tx *gorm.DB
}

// PurchaseOrders returns the purchase order repository scoped to the current transaction
func (r *gormProcurementRepositories) PurchaseOrders() procurement.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// InventoryItems returns the inventory item repository scoped to the current transaction
func (r *gormProcurementRepositories) InventoryItems() inventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// StockMovements returns the stock ledger repository scoped to the current transaction
func (r *gormProcurementRepositories) StockMovements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Ensure GormProcurementTransactionScope implements TransactionScope
var _ approc.TransactionScope = (*GormProcurementTransactionScope)(nil)

// Ensure gormProcurementRepositories implements TransactionalRepositories
var _ approc.TransactionalRepositories = (*gormProcurementRepositories)(nil)
