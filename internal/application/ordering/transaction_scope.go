package ordering

import (
	"context"

	"github.com/dyqani/backend/internal/domain/ordering"
	"github.com/dyqani/backend/internal/domain/stock"
)

// TransactionScope provides transactional access to the repositories the
// placement flow writes. When a function is executed within a transaction
// scope, all repository operations are part of the same database transaction
// and commit or roll back atomically. A batch checkout reserves every line's
// stock and inserts every order row inside one scope, so a failure on any
// line leaves no partial batch behind.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the order and stock
// repositories within a transaction. Both repositories share the same
// underlying database transaction, which is what makes the stock decrement
// and the order insert a single atomic step.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() ordering.OrderRepository
	// StockRepo returns the stock ledger scoped to the current transaction
	StockRepo() stock.LedgerRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	orderRepo ordering.OrderRepository
	stockRepo stock.LedgerRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(orderRepo ordering.OrderRepository, stockRepo stock.LedgerRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo: orderRepo,
		stockRepo: stockRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository.
func (s *NoOpTransactionScope) OrderRepo() ordering.OrderRepository {
	return s.orderRepo
}

// StockRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) StockRepo() stock.LedgerRepository {
	return s.stockRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
