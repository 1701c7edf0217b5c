// Package access implements the role and ownership rules shared by every
// store-scoped mutation: store update, product create/update, store order
// listing and order status changes.
//
// Rules are evaluated in order: ADMIN is always allowed, then the store owner,
// everything else is denied with ErrForbidden.
package access

import (
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
)

// AuthorizeStore allows ADMIN or the owner of store.
func AuthorizeStore(p entity.Principal, store *entity.Store) error {
	if p.IsAdmin() {
		return nil
	}
	if store != nil && p.UserID != uuid.Nil && store.OwnerID == p.UserID {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("principal is neither admin nor store owner")
}

// AuthorizeOwnerChange allows only ADMIN, even for the current owner.
func AuthorizeOwnerChange(p entity.Principal) error {
	if p.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("only an admin can change a store owner")
}

// RequireAdmin allows only ADMIN.
func RequireAdmin(p entity.Principal) error {
	if p.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails("admin role required")
}

// AuthorizeGuestTracking authenticates an anonymous tracker by phone. Orders
// without a loaded guest identity cannot be tracked this way.
func AuthorizeGuestTracking(order *entity.Order, phone string) error {
	guest, ok := order.Guest()
	if !ok || guest.Guest == nil {
		return domainerrors.ErrForbidden.WithDetails("order has no guest customer")
	}

	phone = strings.TrimSpace(phone)
	if phone == "" || guest.Guest.Phone != phone {
		return domainerrors.ErrForbidden.WithDetails("phone does not match order")
	}

	return nil
}
