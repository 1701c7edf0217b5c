package entity

import (
	"strings"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxItemQuantity caps a single order line.
const MaxItemQuantity = 10000

// OrderLine is one requested (product, quantity) pair.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderDraft carries everything needed to price and assemble an order.
type OrderDraft struct {
	StoreID       uuid.UUID
	Customer      Customer
	PaymentMethod string
	Lines         []OrderLine
}

// ProductIDs returns the distinct product ids in first-seen order.
func (d OrderDraft) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(d.Lines))
	ids := make([]uuid.UUID, 0, len(d.Lines))
	for _, line := range d.Lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}

// AssembleOrder prices draft against catalog and returns the unsaved aggregate.
// It fails on the first invalid line, in input order, so nothing is built
// partially: each price_at_purchase is the catalog price at this instant and the
// total is the sum of price × quantity.
func AssembleOrder(draft OrderDraft, catalog map[uuid.UUID]*Product) (*Order, error) {
	if draft.Customer == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order has no customer")
	}
	if len(draft.Lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}
	if strings.TrimSpace(draft.PaymentMethod) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment method is required")
	}

	total := decimal.Zero
	items := make([]*OrderItem, 0, len(draft.Lines))
	for _, line := range draft.Lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf(
				"quantity for product %s must be positive, got %d", line.ProductID, line.Quantity)
		}
		if line.Quantity > MaxItemQuantity {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf(
				"quantity for product %s must not exceed %d, got %d", line.ProductID, MaxItemQuantity, line.Quantity)
		}

		product, ok := catalog[line.ProductID]
		if !ok || !product.BelongsTo(draft.StoreID) {
			return nil, domainerrors.ErrValidationFailed.WithDetailsf(
				"product %s not found in store %s", line.ProductID, draft.StoreID)
		}

		item := &OrderItem{
			ProductID:       product.ID,
			Product:         product,
			Quantity:        line.Quantity,
			PriceAtPurchase: product.Price,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}
	if total.GreaterThan(MaxMoney) {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf(
			"order total %s exceeds %s", total.StringFixed(MoneyScale), MaxMoney.StringFixed(MoneyScale))
	}

	return &Order{
		Customer:      draft.Customer,
		StoreID:       draft.StoreID,
		TotalPrice:    total,
		Status:        OrderStatusRequested,
		PaymentMethod: strings.TrimSpace(draft.PaymentMethod),
		Items:         items,
	}, nil
}
