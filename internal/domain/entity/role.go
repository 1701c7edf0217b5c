// Package entity contains the core business objects of the marketplace.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Role is the single authorization role carried by a user.
type Role string

const (
	// RoleAdmin can act on every store, user and order.
	RoleAdmin Role = "ADMIN"
	// RoleOwner owns at least one store.
	RoleOwner Role = "OWNER"
	// RoleCustomer is the default role of a registered user.
	RoleCustomer Role = "CUSTOMER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleCustomer:
		return true
	default:
		return false
	}
}

// ParseRole accepts any letter case ("admin", "Owner").
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Principal is the verified identity attached to a request by the auth boundary.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
