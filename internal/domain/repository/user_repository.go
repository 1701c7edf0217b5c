// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a user with the stores they own.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, without stores.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users ordered by creation, with their stores.
	List(ctx context.Context, page Page) ([]*entity.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)

	// Create persists a new user; the generated id is written back.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role of an existing user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
