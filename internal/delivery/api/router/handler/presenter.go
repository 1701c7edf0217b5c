package handler

import (
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       uuid.UUID        `json:"id"`
	Email    string           `json:"email"`
	IsActive bool             `json:"is_active"`
	Role     entity.Role      `json:"role"`
	Stores   []*StoreResponse `json:"stores"`
}

type StoreResponse struct {
	ID          uuid.UUID                  `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	OwnerID     uuid.UUID                  `json:"owner_id"`
	LogoURL     *string                    `json:"logo_url"`
	Products    []*usecase.ProductSnapshot `json:"products"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func newUserResponse(u *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
		Role:     u.Role,
		Stores:   make([]*StoreResponse, 0, len(u.Stores)),
	}
	for _, s := range u.Stores {
		resp.Stores = append(resp.Stores, newStoreResponse(s))
	}

	return resp
}

func newUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}

	return out
}

func newStoreResponse(s *entity.Store) *StoreResponse {
	return &StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		OwnerID:     s.OwnerID,
		LogoURL:     s.LogoURL,
		Products:    newProductResponses(s.Products),
	}
}

func newStoreResponses(stores []*entity.Store) []*StoreResponse {
	out := make([]*StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, newStoreResponse(s))
	}

	return out
}

func newProductResponses(products []*entity.Product) []*usecase.ProductSnapshot {
	out := make([]*usecase.ProductSnapshot, 0, len(products))
	for _, p := range products {
		out = append(out, usecase.NewProductSnapshot(p))
	}

	return out
}

func newOrderResponses(orders []*entity.Order) []*usecase.OrderSnapshot {
	out := make([]*usecase.OrderSnapshot, 0, len(orders))
	for _, o := range orders {
		out = append(out, usecase.NewOrderSnapshot(o))
	}

	return out
}
