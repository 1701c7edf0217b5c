package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerCheckConstraint names the CHECK that keeps exactly one customer reference per order.
const CustomerCheckConstraint = "orders_customer_exactly_one"

// OrderModel mirrors the 'orders' table. Exactly one of CustomerUserID and
// GuestCustomerID is set.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerUserID  *uuid.UUID      `gorm:"type:uuid;index;check:orders_customer_exactly_one,(customer_user_id IS NULL) <> (guest_customer_id IS NULL)"`
	GuestCustomerID *uuid.UUID      `gorm:"type:uuid;index"`
	StoreID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time       `gorm:"index"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(32);not null;default:'REQUESTED'"`
	PaymentMethod   string          `gorm:"type:varchar(50);not null"`

	CustomerUser  *UserModel        `gorm:"foreignKey:CustomerUserID"`
	GuestCustomer *GuestUserModel   `gorm:"foreignKey:GuestCustomerID"`
	Store         *StoreModel       `gorm:"foreignKey:StoreID"`
	Items         []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

func (m *OrderModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}

// OrderItemModel mirrors the 'order_items' table. PriceAtPurchase is a snapshot
// and is never joined back to the product price.
type OrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null;check:order_items_quantity_positive,quantity > 0"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

func (m *OrderItemModel) BeforeCreate(_ *gorm.DB) error {
	return newID(&m.ID)
}
