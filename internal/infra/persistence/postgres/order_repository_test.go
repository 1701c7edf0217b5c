package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	seed
	owner  *entity.User
	shop   *entity.Store
	latte  *entity.Product
	cookie *entity.Product
}

func newOrderFixture(t *testing.T) orderFixture {
	db := newTestDB(t)
	s := seed{db: db, t: t}
	owner := s.user("owner@example.com", entity.RoleOwner)
	store := s.store("Coffee", owner.ID)

	return orderFixture{
		seed:   s,
		owner:  owner,
		shop:   store,
		latte:  s.product(store.ID, "Latte", "4.50"),
		cookie: s.product(store.ID, "Cookie", "1.20"),
	}
}

func (f orderFixture) assemble(customer entity.Customer) *entity.Order {
	order, err := entity.AssembleOrder(entity.OrderDraft{
		StoreID:       f.shop.ID,
		Customer:      customer,
		PaymentMethod: "cash",
		Lines: []entity.OrderLine{
			{ProductID: f.latte.ID, Quantity: 2},
			{ProductID: f.cookie.ID, Quantity: 3},
		},
	}, map[uuid.UUID]*entity.Product{f.latte.ID: f.latte, f.cookie.ID: f.cookie})
	require.NoError(f.t, err)

	return order
}

func TestOrderRepository_CreateAndFindGuestOrder(t *testing.T) {
	f := newOrderFixture(t)
	repo := NewOrderRepository(f.db)
	ctx := context.Background()

	guest := f.guest("555-0199", "Gina")
	order := f.assemble(entity.GuestCustomer{GuestID: guest.ID})
	require.NoError(t, repo.Create(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	for _, item := range order.Items {
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, order.ID, item.OrderID)
	}

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.60").Equal(found.TotalPrice))
	assert.Equal(t, entity.OrderStatusRequested, found.Status)
	assert.Equal(t, "cash", found.PaymentMethod)

	g, ok := found.Guest()
	require.True(t, ok)
	require.NotNil(t, g.Guest)
	assert.Equal(t, "555-0199", g.Guest.Phone)
	_, registered := found.Registered()
	assert.False(t, registered)

	require.Len(t, found.Items, 2)
	assert.Equal(t, f.latte.ID, found.Items[0].ProductID)
	assert.Equal(t, 2, found.Items[0].Quantity)
	require.NotNil(t, found.Items[0].Product)
	assert.Equal(t, "Latte", found.Items[0].Product.Name)
	assert.Equal(t, f.cookie.ID, found.Items[1].ProductID)
}

func TestOrderRepository_PriceSnapshotSurvivesCatalogChange(t *testing.T) {
	f := newOrderFixture(t)
	repo := NewOrderRepository(f.db)
	ctx := context.Background()

	buyer := f.user("buyer@example.com", entity.RoleCustomer)
	order := f.assemble(entity.RegisteredCustomer{UserID: buyer.ID})
	require.NoError(t, repo.Create(ctx, order))

	f.latte.Price = decimal.RequireFromString("99.00")
	require.NoError(t, NewProductRepository(f.db).Update(ctx, f.latte))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.60").Equal(found.TotalPrice))
	assert.True(t, decimal.RequireFromString("4.50").Equal(found.Items[0].PriceAtPurchase))
	assert.True(t, decimal.RequireFromString("99.00").Equal(found.Items[0].Product.Price))

	r, ok := found.Registered()
	require.True(t, ok)
	require.NotNil(t, r.User)
	assert.Equal(t, "buyer@example.com", r.User.Email)
}

func TestOrderRepository_ListAndUpdateStatus(t *testing.T) {
	f := newOrderFixture(t)
	repo := NewOrderRepository(f.db)
	ctx := context.Background()

	buyer := f.user("buyer@example.com", entity.RoleCustomer)
	guest := f.guest("555-0100", "G")
	first := f.assemble(entity.RegisteredCustomer{UserID: buyer.ID})
	require.NoError(t, repo.Create(ctx, first))
	second := f.assemble(entity.GuestCustomer{GuestID: guest.ID})
	require.NoError(t, repo.Create(ctx, second))

	otherStore := f.store("Other", f.owner.ID)
	other := f.product(otherStore.ID, "Tea", "2.00")
	foreign, err := entity.AssembleOrder(entity.OrderDraft{
		StoreID:       otherStore.ID,
		Customer:      entity.GuestCustomer{GuestID: guest.ID},
		PaymentMethod: "card",
		Lines:         []entity.OrderLine{{ProductID: other.ID, Quantity: 1}},
	}, map[uuid.UUID]*entity.Product{other.ID: other})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, foreign))

	listed, err := repo.ListByStore(ctx, f.shop.ID, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID, "newest first")
	assert.Equal(t, first.ID, listed[1].ID)

	paged, err := repo.ListByStore(ctx, f.shop.ID, repository.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, first.ID, paged[0].ID)

	mine, err := repo.ListByCustomerUser(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, first.ID, entity.OrderStatusAccepted))
	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, found.Status)
	assert.True(t, first.TotalPrice.Equal(found.TotalPrice))

	err = repo.UpdateStatus(ctx, uuid.New(), entity.OrderStatusAccepted)
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderRepository_CreateWithoutCustomer(t *testing.T) {
	f := newOrderFixture(t)
	repo := NewOrderRepository(f.db)

	order := f.assemble(entity.GuestCustomer{GuestID: uuid.New()})
	order.Customer = nil

	err := repo.Create(context.Background(), order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
