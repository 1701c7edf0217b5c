package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps the memory database alive and serializes access.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db = Configure(db, slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

type seed struct {
	db *gorm.DB
	t  *testing.T
}

func (s seed) user(email string, role entity.Role) *entity.User {
	user := &entity.User{Email: email, PasswordHash: "hash", IsActive: true, Role: role}
	require.NoError(s.t, NewUserRepository(s.db).Create(context.Background(), user))

	return user
}

func (s seed) store(name string, ownerID uuid.UUID) *entity.Store {
	store := &entity.Store{Name: name, Description: name + " description", OwnerID: ownerID}
	require.NoError(s.t, NewStoreRepository(s.db).Create(context.Background(), store))

	return store
}

func (s seed) product(storeID uuid.UUID, name, price string) *entity.Product {
	product := &entity.Product{Name: name, Price: decimal.RequireFromString(price), StoreID: storeID}
	require.NoError(s.t, NewProductRepository(s.db).Create(context.Background(), product))

	return product
}

func (s seed) guest(phone, name string) *entity.GuestUser {
	guest := &entity.GuestUser{Phone: phone, Name: name, Address: "Main St 1"}
	require.NoError(s.t, NewGuestRepository(s.db).Create(context.Background(), guest))

	return guest
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)

	return n
}
