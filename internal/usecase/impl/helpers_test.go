package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Orders: &config.OrdersConfig{DefaultPageSize: 100, MaxPageSize: 500},
	}
}

// txFixture wires a mocked transaction that runs the callback against
// transaction-scoped repository mocks.
type txFixture struct {
	factory *mockRepo.MockRepositoryFactory
	users   *mockRepo.MockUserRepository
	guests  *mockRepo.MockGuestRepository
	stores  *mockRepo.MockStoreRepository
	catalog *mockRepo.MockProductRepository
	orders  *mockRepo.MockOrderRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	tx := &txFixture{
		factory: mockRepo.NewMockRepositoryFactory(t),
		users:   mockRepo.NewMockUserRepository(t),
		guests:  mockRepo.NewMockGuestRepository(t),
		stores:  mockRepo.NewMockStoreRepository(t),
		catalog: mockRepo.NewMockProductRepository(t),
		orders:  mockRepo.NewMockOrderRepository(t),
	}
	tx.factory.EXPECT().UserRepo().Return(tx.users).Maybe()
	tx.factory.EXPECT().GuestRepo().Return(tx.guests).Maybe()
	tx.factory.EXPECT().StoreRepo().Return(tx.stores).Maybe()
	tx.factory.EXPECT().ProductRepo().Return(tx.catalog).Maybe()
	tx.factory.EXPECT().OrderRepo().Return(tx.orders).Maybe()

	return tx
}

// expectExecute makes txManager run its callback once against the fixture.
func (tx *txFixture) expectExecute(txManager *mockRepo.MockTransactionManager) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		}).
		Once()
}

// expectSavepoint runs nested callbacks against the same fixture.
func (tx *txFixture) expectSavepoint() {
	tx.factory.EXPECT().
		Savepoint(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		})
}
