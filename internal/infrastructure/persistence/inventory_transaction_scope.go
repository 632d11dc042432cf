package persistence

import (
	"context"

	"gorm.io/gorm"

	appinv "github.com/granhotel/backend/internal/application/inventory"
	"github.com/granhotel/backend/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. The aggregate write and its ledger row commit or
// roll back together.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

// gormInventoryRepositories provides repositories bound to one transaction
type gormInventoryRepositories struct {
	tx *gorm.DB
}

// InventoryItems returns the inventory item repository scoped to the current transaction
func (r *gormInventoryRepositories) InventoryItems() inventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

// StockMovements returns the stock ledger repository scoped to the current transaction
func (r *gormInventoryRepositories) StockMovements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Ensure GormInventoryTransactionScope implements TransactionScope
var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)

// Ensure gormInventoryRepositories implements TransactionalRepositories
var _ appinv.TransactionalRepositories = (*gormInventoryRepositories)(nil)
