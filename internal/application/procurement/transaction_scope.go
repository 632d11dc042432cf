package procurement

import (
	"context"

	"github.com/granhotel/backend/internal/domain/inventory"
	"github.com/granhotel/backend/internal/domain/procurement"
)

// TransactionScope provides transactional access to the repositories a
// procurement operation touches. Receiving goods spans the purchase order
// aggregate and the stock ledger, and both must commit together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the procurement and
// inventory repositories within a transaction
type TransactionalRepositories interface {
	// PurchaseOrders returns the purchase order repository scoped to the current transaction
	PurchaseOrders() procurement.PurchaseOrderRepository
	// InventoryItems returns the inventory item repository scoped to the current transaction
	InventoryItems() inventory.InventoryItemRepository
	// StockMovements returns the stock ledger repository scoped to the current transaction
	StockMovements() inventory.StockMovementRepository
}

// NoOpTransactionScope runs the function against plain repositories without
// a real transaction. Useful for tests.
type NoOpTransactionScope struct {
	orders    procurement.PurchaseOrderRepository
	items     inventory.InventoryItemRepository
	movements inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	orders procurement.PurchaseOrderRepository,
	items inventory.InventoryItemRepository,
	movements inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{orders: orders, items: items, movements: movements}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseOrders returns the purchase order repository
func (s *NoOpTransactionScope) PurchaseOrders() procurement.PurchaseOrderRepository {
	return s.orders
}

// InventoryItems returns the inventory item repository
func (s *NoOpTransactionScope) InventoryItems() inventory.InventoryItemRepository {
	return s.items
}

// StockMovements returns the stock ledger repository
func (s *NoOpTransactionScope) StockMovements() inventory.StockMovementRepository {
	return s.movements
}
