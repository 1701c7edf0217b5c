package usecase

import (
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSnapshot is the full wire representation of an order. The same shape is
// returned by the HTTP API and pushed over the realtime channel. Exactly one of
// CustomerUser and GuestCustomer is set.
type OrderSnapshot struct {
	ID            uuid.UUID           `json:"id"`
	StoreID       uuid.UUID           `json:"store_id"`
	CreatedAt     time.Time           `json:"created_at"`
	TotalPrice    string              `json:"total_price"`
	Status        entity.OrderStatus  `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Items         []OrderItemSnapshot `json:"items"`
	CustomerUser  *UserSnapshot       `json:"customer_user"`
	GuestCustomer *GuestSnapshot      `json:"guest_customer"`
}

type OrderItemSnapshot struct {
	ID              uuid.UUID        `json:"id"`
	Product         *ProductSnapshot `json:"product"`
	Quantity        int              `json:"quantity"`
	PriceAtPurchase string           `json:"price_at_purchase"`
}

type ProductSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"image_url"`
	StoreID     uuid.UUID `json:"store_id"`
}

type UserSnapshot struct {
	ID       uuid.UUID   `json:"id"`
	Email    string      `json:"email"`
	IsActive bool        `json:"is_active"`
	Role     entity.Role `json:"role"`
}

type GuestSnapshot struct {
	ID         uuid.UUID `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	NationalID *string   `json:"national_id"`
}

// Money renders amounts with two decimals, e.g. "12.60".
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewProductSnapshot(p *entity.Product) *ProductSnapshot {
	if p == nil {
		return nil
	}

	return &ProductSnapshot{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       Money(p.Price),
		ImageURL:    p.ImageURL,
		StoreID:     p.StoreID,
	}
}

func NewUserSnapshot(u *entity.User) *UserSnapshot {
	if u == nil {
		return nil
	}

	return &UserSnapshot{ID: u.ID, Email: u.Email, IsActive: u.IsActive, Role: u.Role}
}

func NewOrderSnapshot(o *entity.Order) *OrderSnapshot {
	snap := &OrderSnapshot{
		ID:            o.ID,
		StoreID:       o.StoreID,
		CreatedAt:     o.CreatedAt,
		TotalPrice:    Money(o.TotalPrice),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Items:         make([]OrderItemSnapshot, 0, len(o.Items)),
	}

	for _, item := range o.Items {
		product := NewProductSnapshot(item.Product)
		if product == nil {
			product = &ProductSnapshot{ID: item.ProductID}
		}
		snap.Items = append(snap.Items, OrderItemSnapshot{
			ID:              item.ID,
			Product:         product,
			Quantity:        item.Quantity,
			PriceAtPurchase: Money(item.PriceAtPurchase),
		})
	}

	switch c := o.Customer.(type) {
	case entity.RegisteredCustomer:
		snap.CustomerUser = NewUserSnapshot(c.User)
		if snap.CustomerUser == nil {
			snap.CustomerUser = &UserSnapshot{ID: c.UserID}
		}
	case entity.GuestCustomer:
		snap.GuestCustomer = &GuestSnapshot{ID: c.GuestID}
		if c.Guest != nil {
			snap.GuestCustomer.Phone = c.Guest.Phone
			snap.GuestCustomer.Name = c.Guest.Name
			snap.GuestCustomer.Address = c.Guest.Address
			snap.GuestCustomer.NationalID = c.Guest.NationalID
		}
	}

	return snap
}
