package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateStoreInput struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
	Logo        *Upload
}

// UpdateStoreInput is a partial update; nil fields are left untouched.
type UpdateStoreInput struct {
	Name        *string
	Description *string
	OwnerID     *uuid.UUID
	Logo        *Upload
}

// StoreUsecase manages stores and their storefront QR codes.
type StoreUsecase interface {
	CreateStore(ctx context.Context, principal entity.Principal, input CreateStoreInput) (*entity.Store, error)
	ListStores(ctx context.Context, principal entity.Principal, page Pagination) ([]*entity.Store, error)
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)
	UpdateStore(ctx context.Context, principal entity.Principal, storeID uuid.UUID, input UpdateStoreInput) (*entity.Store, error)
	StoreQRCode(ctx context.Context, principal entity.Principal, storeID uuid.UUID) ([]byte, error)
}
