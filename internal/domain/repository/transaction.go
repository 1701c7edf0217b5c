package repository

import "context"

// TransactionManager runs use case work inside a single database transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error (or panic) rolls back,
	// otherwise the transaction commits. Every repository obtained from the factory
	// shares the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	GuestRepo() GuestRepository
	StoreRepo() StoreRepository
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository

	// Savepoint runs fn in a nested transaction. A failure inside fn rolls back to
	// the savepoint and leaves the outer transaction usable, which lets callers
	// recover from constraint violations (e.g. retry an insert as an update).
	Savepoint(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// Page is an offset/limit window for list queries.
type Page struct {
	Skip  int
	Limit int
}
