package main

import (
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, migrate(db, logger))
	require.NoError(t, migrate(db, logger))

	for _, m := range model.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasConstraint(&model.OrderModel{}, model.CustomerCheckConstraint))
}
