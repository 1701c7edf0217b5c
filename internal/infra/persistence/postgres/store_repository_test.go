package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRepository_FindWithAndWithoutProducts(t *testing.T) {
	db := newTestDB(t)
	s := seed{db: db, t: t}
	repo := NewStoreRepository(db)
	ctx := context.Background()

	owner := s.user("owner@example.com", entity.RoleOwner)
	store := s.store("Cupcakes", owner.ID)
	s.product(store.ID, "Vanilla", "3.50")
	s.product(store.ID, "Chocolate", "4.00")

	plain, err := repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Nil(t, plain.Products)
	assert.Equal(t, owner.ID, plain.OwnerID)

	full, err := repo.FindByIDWithProducts(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, full.Products, 2)
	assert.Equal(t, "Vanilla", full.Products[0].Name)
	assert.True(t, decimal.RequireFromString("3.50").Equal(full.Products[0].Price))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrStoreNotFound))
}

func TestStoreRepository_ListByOwner(t *testing.T) {
	db := newTestDB(t)
	s := seed{db: db, t: t}
	repo := NewStoreRepository(db)
	ctx := context.Background()

	alice := s.user("alice@example.com", entity.RoleOwner)
	bob := s.user("bob@example.com", entity.RoleOwner)
	s.store("A1", alice.ID)
	s.store("A2", alice.ID)
	s.store("B1", bob.ID)

	all, err := repo.List(ctx, repository.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ListByOwner(ctx, alice.ID, repository.Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "A1", mine[0].Name)
	assert.Equal(t, "A2", mine[1].Name)

	limited, err := repo.ListByOwner(ctx, alice.ID, repository.Page{Skip: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "A2", limited[0].Name)
}

func TestStoreRepository_Update(t *testing.T) {
	db := newTestDB(t)
	s := seed{db: db, t: t}
	repo := NewStoreRepository(db)
	ctx := context.Background()

	alice := s.user("alice@example.com", entity.RoleOwner)
	bob := s.user("bob@example.com", entity.RoleCustomer)
	store := s.store("Old", alice.ID)

	logo := "/static/store_logos/x.png"
	store.Name = "New"
	store.LogoURL = &logo
	store.OwnerID = bob.ID
	require.NoError(t, repo.Update(ctx, store))

	found, err := repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Name)
	require.NotNil(t, found.LogoURL)
	assert.Equal(t, logo, *found.LogoURL)
	assert.Equal(t, bob.ID, found.OwnerID)

	err = repo.Update(ctx, &entity.Store{ID: uuid.New(), Name: "x", OwnerID: bob.ID})
	assert.True(t, errors.Is(err, repository.ErrStoreNotFound))
}

func TestStoreRepository_DeleteCascadesProducts(t *testing.T) {
	db := newTestDB(t)
	s := seed{db: db, t: t}

	owner := s.user("owner@example.com", entity.RoleOwner)
	store := s.store("Gone", owner.ID)
	s.product(store.ID, "P", "1.00")
	require.Equal(t, int64(1), countRows(t, db, &model.ProductModel{}))

	require.NoError(t, db.Delete(&model.StoreModel{ID: store.ID}).Error)
	assert.Zero(t, countRows(t, db, &model.ProductModel{}))
}
