package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository persists stores.
type StoreRepository interface {
	// FindByID retrieves a store without products.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindByIDWithProducts retrieves a store and its catalog.
	FindByIDWithProducts(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// List returns every store (admin view) with products.
	List(ctx context.Context, page Page) ([]*entity.Store, error)

	// ListByOwner returns the stores owned by ownerID with products.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*entity.Store, error)

	Create(ctx context.Context, store *entity.Store) error

	// Update writes name, description, logo and owner.
	Update(ctx context.Context, store *entity.Store) error
}
