package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	Role         string    `gorm:"type:varchar(20);not null;default:'CUSTOMER'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Stores []*StoreModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}

// GuestUserModel mirrors the 'guest_users' table. Phone is the natural key.
type GuestUserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone      string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Address    string    `gorm:"type:varchar(255);not null"`
	NationalID *string   `gorm:"type:varchar(20)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestUserModel) TableName() string {
	return "guest_users"
}

func (m *GuestUserModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
