package entity

import (
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogProduct(storeID uuid.UUID, price string) *Product {
	return &Product{
		ID:      uuid.New(),
		Name:    "item",
		Price:   decimal.RequireFromString(price),
		StoreID: storeID,
	}
}

func catalogOf(products ...*Product) map[uuid.UUID]*Product {
	catalog := make(map[uuid.UUID]*Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	return catalog
}

func TestAssembleOrder_ComputesTotalAndSnapshots(t *testing.T) {
	storeID := uuid.New()
	burger := newCatalogProduct(storeID, "12.50")
	soda := newCatalogProduct(storeID, "3.99")

	draft := OrderDraft{
		StoreID:       storeID,
		Customer:      GuestCustomer{GuestID: uuid.New()},
		PaymentMethod: "pix",
		Lines: []OrderLine{
			{ProductID: burger.ID, Quantity: 2},
			{ProductID: soda.ID, Quantity: 3},
		},
	}

	order, err := AssembleOrder(draft, catalogOf(burger, soda))
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("36.97").Equal(order.TotalPrice), "got %s", order.TotalPrice)
	assert.Equal(t, OrderStatusRequested, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, burger.ID, order.Items[0].ProductID)
	assert.True(t, burger.Price.Equal(order.Items[0].PriceAtPurchase))
	assert.Equal(t, 3, order.Items[1].Quantity)

	// Later catalog edits must not leak into the assembled order.
	burger.Price = decimal.RequireFromString("99.00")
	assert.True(t, decimal.RequireFromString("12.50").Equal(order.Items[0].PriceAtPurchase))
	assert.True(t, decimal.RequireFromString("36.97").Equal(order.TotalPrice))
}

func TestAssembleOrder_ProductFromAnotherStore(t *testing.T) {
	storeA := uuid.New()
	storeB := uuid.New()
	own := newCatalogProduct(storeA, "1.00")
	foreign := newCatalogProduct(storeB, "2.00")

	draft := OrderDraft{
		StoreID:       storeA,
		Customer:      GuestCustomer{GuestID: uuid.New()},
		PaymentMethod: "cash",
		Lines: []OrderLine{
			{ProductID: own.ID, Quantity: 1},
			{ProductID: foreign.ID, Quantity: 1},
		},
	}

	order, err := AssembleOrder(draft, catalogOf(own, foreign))
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), foreign.ID.String())
	assert.Contains(t, err.Error(), storeA.String())
}

func TestAssembleOrder_FailsOnFirstInvalidLine(t *testing.T) {
	storeID := uuid.New()
	missing := uuid.New()
	product := newCatalogProduct(storeID, "5.00")

	draft := OrderDraft{
		StoreID:       storeID,
		Customer:      RegisteredCustomer{UserID: uuid.New()},
		PaymentMethod: "card",
		Lines: []OrderLine{
			{ProductID: missing, Quantity: 1},
			{ProductID: product.ID, Quantity: 0},
		},
	}

	_, err := AssembleOrder(draft, catalogOf(product))
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing.String())
}

func TestAssembleOrder_RejectsInvalidInput(t *testing.T) {
	storeID := uuid.New()
	product := newCatalogProduct(storeID, "5.00")
	catalog := catalogOf(product)

	tests := []struct {
		name  string
		draft OrderDraft
	}{
		{
			name: "no items",
			draft: OrderDraft{
				StoreID: storeID, Customer: GuestCustomer{GuestID: uuid.New()}, PaymentMethod: "cash",
			},
		},
		{
			name: "zero quantity",
			draft: OrderDraft{
				StoreID: storeID, Customer: GuestCustomer{GuestID: uuid.New()}, PaymentMethod: "cash",
				Lines: []OrderLine{{ProductID: product.ID, Quantity: 0}},
			},
		},
		{
			name: "negative quantity",
			draft: OrderDraft{
				StoreID: storeID, Customer: GuestCustomer{GuestID: uuid.New()}, PaymentMethod: "cash",
				Lines: []OrderLine{{ProductID: product.ID, Quantity: -2}},
			},
		},
		{
			name: "missing customer",
			draft: OrderDraft{
				StoreID: storeID, PaymentMethod: "cash",
				Lines: []OrderLine{{ProductID: product.ID, Quantity: 1}},
			},
		},
		{
			name: "blank payment method",
			draft: OrderDraft{
				StoreID: storeID, Customer: GuestCustomer{GuestID: uuid.New()}, PaymentMethod: "  ",
				Lines: []OrderLine{{ProductID: product.ID, Quantity: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := AssembleOrder(tt.draft, catalog)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderDraft_ProductIDsDeduplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	draft := OrderDraft{Lines: []OrderLine{{ProductID: a}, {ProductID: b}, {ProductID: a}}}

	assert.Equal(t, []uuid.UUID{a, b}, draft.ProductIDs())
}

func TestAssembleOrder_RejectsAmountsBeyondMoneyColumn(t *testing.T) {
	storeID := uuid.New()
	pricey := newCatalogProduct(storeID, "9999999999.99")
	cheap := newCatalogProduct(storeID, "1.00")

	t.Run("quantity over the line cap", func(t *testing.T) {
		_, err := AssembleOrder(OrderDraft{
			StoreID:       storeID,
			Customer:      GuestCustomer{GuestID: uuid.New()},
			PaymentMethod: "cash",
			Lines:         []OrderLine{{ProductID: cheap.ID, Quantity: MaxItemQuantity + 1}},
		}, catalogOf(cheap))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("total overflows numeric(12,2)", func(t *testing.T) {
		_, err := AssembleOrder(OrderDraft{
			StoreID:       storeID,
			Customer:      GuestCustomer{GuestID: uuid.New()},
			PaymentMethod: "cash",
			Lines:         []OrderLine{{ProductID: pricey.ID, Quantity: 2}},
		}, catalogOf(pricey))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("largest total fits", func(t *testing.T) {
		order, err := AssembleOrder(OrderDraft{
			StoreID:       storeID,
			Customer:      GuestCustomer{GuestID: uuid.New()},
			PaymentMethod: "cash",
			Lines:         []OrderLine{{ProductID: pricey.ID, Quantity: 1}},
		}, catalogOf(pricey))
		require.NoError(t, err)
		assert.True(t, MaxMoney.Equal(order.TotalPrice))
	})
}

func TestValidatePrice(t *testing.T) {
	for _, ok := range []string{"0", "0.01", "12.5", "9999999999.99"} {
		assert.NoError(t, ValidatePrice(decimal.RequireFromString(ok)), ok)
	}
	for _, bad := range []string{"-0.01", "1.005", "10000000000"} {
		err := ValidatePrice(decimal.RequireFromString(bad))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, bad)
	}
}
