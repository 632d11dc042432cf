package inventory

import (
	"context"

	"github.com/granhotel/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction. Both repositories share the same underlying
// database transaction, which is what keeps the aggregate and its ledger
// in lockstep.
type TransactionalRepositories interface {
	// InventoryItems returns the inventory item repository scoped to the current transaction
	InventoryItems() inventory.InventoryItemRepository
	// StockMovements returns the stock ledger repository scoped to the current transaction
	StockMovements() inventory.StockMovementRepository
}

// NoOpTransactionScope runs the function against plain repositories without
// a real transaction. Useful for tests.
type NoOpTransactionScope struct {
	items     inventory.InventoryItemRepository
	movements inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(items inventory.InventoryItemRepository, movements inventory.StockMovementRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{items: items, movements: movements}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// InventoryItems returns the inventory item repository
func (s *NoOpTransactionScope) InventoryItems() inventory.InventoryItemRepository {
	return s.items
}

// StockMovements returns the stock ledger repository
func (s *NoOpTransactionScope) StockMovements() inventory.StockMovementRepository {
	return s.movements
}
