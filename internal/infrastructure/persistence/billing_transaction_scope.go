package persistence

import (
	"context"

	"gorm.io/gorm"

	appbill "github.com/granhotel/backend/internal/application/billing"
	"github.com/granhotel/backend/internal/domain/billing"
)

// GormBillingTransactionScope implements the billing TransactionScope using
// GORM transactions. A posted entry and the resynced folio totals commit
// atomically.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbill.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormBillingRepositories{tx: tx})
	})
}

// gormBillingRepositories provides repositories bound to one transaction
type gormBillingRepositories struct {
	tx *gorm.DB
}

// Folios returns the folio repository scoped to the current transaction
func (r *gormBillingRepositories) Folios() billing.GuestFolioRepository {
	return NewGormGuestFolioRepository(r.tx)
}

// Ensure GormBillingTransactionScope implements TransactionScope
var _ appbill.TransactionScope = (*GormBillingTransactionScope)(nil)

// Ensure gormBillingRepositories implements TransactionalRepositories
var _ appbill.TransactionalRepositories = (*gormBillingRepositories)(nil)
