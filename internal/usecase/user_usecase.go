package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
	User         *entity.User
}

// UserUsecase covers registration, login and admin user management.
type UserUsecase interface {
	// Register creates a CUSTOMER account; the very first account becomes ADMIN.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate turns an access token into an active user.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	ListUsers(ctx context.Context, principal entity.Principal, page Pagination) ([]*entity.User, error)
	GetUser(ctx context.Context, principal entity.Principal, userID uuid.UUID) (*entity.User, error)
	SetRole(ctx context.Context, principal entity.Principal, userID uuid.UUID, role entity.Role) (*entity.User, error)
}
