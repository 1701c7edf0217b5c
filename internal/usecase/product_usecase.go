package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       *Upload
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *Upload
}

type ProductUsecase interface {
	CreateProduct(ctx context.Context, principal entity.Principal, storeID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	ListStoreProducts(ctx context.Context, storeID uuid.UUID, page Pagination) ([]*entity.Product, error)
}
