package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		if err := repos.GuestRepo().Create(context.Background(), &entity.GuestUser{Phone: "1", Name: "x", Address: "y"}); err != nil {
			return err
		}

		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countRows(t, db, &model.GuestUserModel{}))
}

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	err := tm.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		return repos.GuestRepo().Create(context.Background(), &entity.GuestUser{Phone: "2", Name: "x", Address: "y"})
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, db, &model.GuestUserModel{}))
}

func TestTransactionManager_SavepointKeepsOuterTransaction(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	seed{db: db, t: t}.guest("3", "first")

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		spErr := repos.Savepoint(ctx, func(nested repository.RepositoryFactory) error {
			return nested.GuestRepo().Create(ctx, &entity.GuestUser{Phone: "3", Name: "second", Address: "z"})
		})
		require.True(t, errors.Is(spErr, repository.ErrDuplicateGuest))

		existing, err := repos.GuestRepo().FindByPhone(ctx, "3")
		if err != nil {
			return err
		}
		existing.Overwrite("second", "z", nil)

		return repos.GuestRepo().Update(ctx, existing)
	})
	require.NoError(t, err)

	found, err := NewGuestRepository(db).FindByPhone(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "second", found.Name)
	assert.Equal(t, int64(1), countRows(t, db, &model.GuestUserModel{}))
}
