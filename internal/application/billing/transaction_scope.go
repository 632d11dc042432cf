package billing

import (
	"context"

	"github.com/granhotel/backend/internal/domain/billing"
)

// TransactionScope provides transactional access to the folio repository.
// Adding an entry and resyncing the folio totals must commit atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the billing repositories
// within a transaction
type TransactionalRepositories interface {
	// Folios returns the folio repository scoped to the current transaction
	Folios() billing.GuestFolioRepository
}

// NoOpTransactionScope runs the function against a plain repository without
// a real transaction. Useful for tests.
type NoOpTransactionScope struct {
	folios billing.GuestFolioRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repository
func NewNoOpTransactionScope(folios billing.GuestFolioRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{folios: folios}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Folios returns the folio repository
func (s *NoOpTransactionScope) Folios() billing.GuestFolioRepository {
	return s.folios
}
