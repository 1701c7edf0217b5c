package entity

import (
	"time"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money columns are numeric(12,2).
const MoneyScale = 2

// MaxMoney is the largest amount a price or order total column can hold.
//
//nolint:gochecknoglobals
var MaxMoney = decimal.New(1, 12-MoneyScale).Sub(decimal.New(1, -MoneyScale))

// Store is owned by one user and exclusively owns its products.
type Store struct {
	ID          uuid.UUID
	Name        string
	Description string
	LogoURL     *string
	OwnerID     uuid.UUID
	Products    []*Product
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product belongs to exactly one store. Price edits never affect existing orders.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    *string
	StoreID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelongsTo reports whether the product is listed by the given store.
func (p *Product) BelongsTo(storeID uuid.UUID) bool {
	return p != nil && p.StoreID == storeID
}

// ValidatePrice accepts non-negative amounts with at most two decimal places
// that fit the price column.
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if !price.Equal(price.Truncate(MoneyScale)) {
		return domainerrors.ErrValidationFailed.WithDetailsf("price must have at most %d decimal places", MoneyScale)
	}
	if price.GreaterThan(MaxMoney) {
		return domainerrors.ErrValidationFailed.WithDetailsf("price must not exceed %s", MaxMoney.StringFixed(MoneyScale))
	}

	return nil
}
