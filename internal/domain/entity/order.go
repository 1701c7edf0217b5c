package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is the identity an order is placed for. Exactly one of the two
// variants exists per order, so a missing or doubled identity cannot be built.
type Customer interface {
	customer()
	// ID returns the referenced user or guest id.
	ID() uuid.UUID
}

// RegisteredCustomer references a registered User.
type RegisteredCustomer struct {
	UserID uuid.UUID
	User   *User // eager-loaded on reads, may be nil on writes
}

func (RegisteredCustomer) customer() {}

// ID returns the user id.
func (c RegisteredCustomer) ID() uuid.UUID { return c.UserID }

// GuestCustomer references a GuestUser.
type GuestCustomer struct {
	GuestID uuid.UUID
	Guest   *GuestUser // eager-loaded on reads
}

func (GuestCustomer) customer() {}

// ID returns the guest id.
func (c GuestCustomer) ID() uuid.UUID { return c.GuestID }

// Order is the aggregate root for a purchase. Items and TotalPrice are frozen at
// creation; only Status changes afterwards.
type Order struct {
	ID            uuid.UUID
	Customer      Customer
	StoreID       uuid.UUID
	CreatedAt     time.Time
	TotalPrice    decimal.Decimal
	Status        OrderStatus
	PaymentMethod string
	Items         []*OrderItem
}

// OrderItem is one priced line of an order.
type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Product         *Product // eager-loaded on reads; reflects the live catalog row
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// Subtotal is PriceAtPurchase × Quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Guest returns the guest identity if the order was placed by a guest.
func (o *Order) Guest() (GuestCustomer, bool) {
	g, ok := o.Customer.(GuestCustomer)

	return g, ok
}

// Registered returns the user identity if the order was placed by a registered user.
func (o *Order) Registered() (RegisteredCustomer, bool) {
	r, ok := o.Customer.(RegisteredCustomer)

	return r, ok
}
