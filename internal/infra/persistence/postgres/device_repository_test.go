package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	phone := &entity.UserDevice{UserID: userID, FCMToken: "tok-1", DeviceID: "phone", Platform: entity.PlatformIOS, IsActive: true}
	tablet := &entity.UserDevice{UserID: userID, FCMToken: "tok-2", DeviceID: "tablet", Platform: entity.PlatformAndroid, IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, phone))
	require.NoError(t, repo.CreateDevice(ctx, tablet))

	active, err := repo.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	n, err := repo.DeactivateByTokens(ctx, []string{"tok-2", "unknown"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err = repo.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, phone.ID, active[0].ID)

	all, err := repo.FindDevicesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.UpdateFCMToken(ctx, tablet.ID, "tok-3"))
	refreshed, err := repo.FindDeviceByID(ctx, tablet.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok-3", refreshed.FCMToken)
	assert.True(t, refreshed.IsActive)

	require.NoError(t, repo.DeleteDevice(ctx, phone.ID))
	_, err = repo.FindDeviceByID(ctx, phone.ID)
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))

	err = repo.DeleteDevice(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
}
