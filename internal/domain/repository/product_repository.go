package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists the store catalogs.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	// Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	ListByStore(ctx context.Context, storeID uuid.UUID, page Page) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error

	// Update writes name, description, price and image.
	Update(ctx context.Context, product *entity.Product) error
}
