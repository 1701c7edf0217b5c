package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists order aggregates. Reads eager-load the customer
// identity and the items with their products.
type OrderRepository interface {
	// Create inserts the order and all of its items in one statement set.
	// Generated ids and the creation timestamp are written back.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByStore returns a store's orders, newest first.
	ListByStore(ctx context.Context, storeID uuid.UUID, page Page) ([]*entity.Order, error)

	// ListByCustomerUser returns the orders placed by a registered user, newest first.
	ListByCustomerUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus changes only the status column.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
