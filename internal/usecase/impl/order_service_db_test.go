package impl

import (
	"context"
	"sync/atomic"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/persistence/model"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type countingNotifier struct {
	created atomic.Int32
	changed atomic.Int32
}

func (n *countingNotifier) OrderCreated(context.Context, *entity.Order) { n.created.Add(1) }

func (n *countingNotifier) OrderStatusChanged(context.Context, *entity.Order) { n.changed.Add(1) }

func openOrderDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db = postgres.Configure(db, newDiscardLogger(), &config.Config{})
	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func countOf(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)

	return n
}

func TestOrderService_CreateGuestOrder_RollsBackOnForeignProduct(t *testing.T) {
	ctx := context.Background()
	db := openOrderDB(t)

	admin := &entity.User{Email: "admin@example.com", PasswordHash: "hash", IsActive: true, Role: entity.RoleAdmin}
	require.NoError(t, postgres.NewUserRepository(db).Create(ctx, admin))

	stores := postgres.NewStoreRepository(db)
	bakery := &entity.Store{Name: "Bakery", OwnerID: admin.ID}
	butcher := &entity.Store{Name: "Butcher", OwnerID: admin.ID}
	require.NoError(t, stores.Create(ctx, bakery))
	require.NoError(t, stores.Create(ctx, butcher))

	products := postgres.NewProductRepository(db)
	bread := &entity.Product{Name: "Bread", Price: decimal.RequireFromString("4.20"), StoreID: bakery.ID}
	steak := &entity.Product{Name: "Steak", Price: decimal.RequireFromString("30.00"), StoreID: butcher.ID}
	require.NoError(t, products.Create(ctx, bread))
	require.NoError(t, products.Create(ctx, steak))

	notifier := &countingNotifier{}
	srv := NewOrderService(OrderServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		OrderRepo: postgres.NewOrderRepository(db),
		StoreRepo: stores,
		Notifier:  notifier,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	input := usecase.CreateGuestOrderInput{
		StoreID: bakery.ID,
		Items: []usecase.OrderItemInput{
			{ProductID: bread.ID, Quantity: 2},
			{ProductID: steak.ID, Quantity: 1},
		},
		Customer:      usecase.GuestDetails{Phone: "555-0100", Name: "Ana", Address: "Rua 1"},
		PaymentMethod: "cash",
	}

	order, err := srv.CreateGuestOrder(ctx, input)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Zero(t, countOf(t, db, &model.OrderModel{}))
	assert.Zero(t, countOf(t, db, &model.OrderItemModel{}))
	assert.Zero(t, countOf(t, db, &model.GuestUserModel{}), "guest created inside the failed transaction must be rolled back")
	assert.Zero(t, notifier.created.Load())

	adminPrincipal := entity.Principal{UserID: admin.ID, Role: entity.RoleAdmin}
	listed, err := srv.ListOrdersForStore(ctx, adminPrincipal, bakery.ID, usecase.Pagination{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The same request without the foreign line goes through.
	input.Items = input.Items[:1]
	order, err = srv.CreateGuestOrder(ctx, input)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("8.40").Equal(order.TotalPrice))

	assert.Equal(t, int64(1), countOf(t, db, &model.OrderModel{}))
	assert.Equal(t, int64(1), countOf(t, db, &model.OrderItemModel{}))
	assert.Equal(t, int64(1), countOf(t, db, &model.GuestUserModel{}))
	assert.Equal(t, int32(1), notifier.created.Load())

	listed, err = srv.ListOrdersForStore(ctx, adminPrincipal, bakery.ID, usecase.Pagination{Limit: 100})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, order.ID, listed[0].ID)
}
