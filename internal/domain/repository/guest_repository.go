package repository

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

var (
	// ErrGuestNotFound is returned when no guest has the given phone.
	ErrGuestNotFound = errors.New("guest not found")
	// ErrDuplicateGuest is returned when another guest already holds the phone.
	ErrDuplicateGuest = errors.New("guest phone already exists")
)

// GuestRepository persists guest customers, keyed by phone.
type GuestRepository interface {
	FindByPhone(ctx context.Context, phone string) (*entity.GuestUser, error)

	// Create inserts a guest. A concurrent insert of the same phone surfaces as ErrDuplicateGuest.
	Create(ctx context.Context, guest *entity.GuestUser) error

	// Update overwrites name, address and national id of guest.ID.
	Update(ctx context.Context, guest *entity.GuestUser) error
}
