package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Role is mutable: the first user ever created is
// ADMIN and a CUSTOMER becomes OWNER when a store is assigned to them.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
	Role         Role
	Stores       []*Store // populated only by detail reads
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PromoteToOwner turns a CUSTOMER into an OWNER. ADMIN and OWNER are left as is.
// It reports whether the role changed.
func (u *User) PromoteToOwner() bool {
	if u.Role != RoleCustomer {
		return false
	}
	u.Role = RoleOwner

	return true
}

// Principal returns the identity used by the access guard.
func (u *User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

// GuestUser is an unauthenticated customer identified by phone number.
type GuestUser struct {
	ID         uuid.UUID
	Phone      string
	Name       string
	Address    string
	NationalID *string
}

// Overwrite replaces every non-key field with the latest submission.
// No partial merge: blank values replace stored ones.
func (g *GuestUser) Overwrite(name, address string, nationalID *string) {
	g.Name = name
	g.Address = address
	g.NationalID = nationalID
}
