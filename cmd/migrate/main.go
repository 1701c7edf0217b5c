// Command migrate creates or upgrades the marketplace schema.
package main

import (
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/errors"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/persistence/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migration completed")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.Migration == nil || cfg.Migration.DSN == "" {
		return errors.New("migration.dsn is required")
	}

	db, err := gorm.Open(postgres.Open(cfg.Migration.DSN), &gorm.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	return migrate(db, logger)
}

// migrate is split from run so it can be exercised against any gorm dialect.
func migrate(db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	logger.Info("Running AutoMigrate", slog.Int("models", len(models)))
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	// An order belongs to exactly one of a registered user or a guest.
	migrator := db.Migrator()
	if !migrator.HasConstraint(&model.OrderModel{}, model.CustomerCheckConstraint) {
		logger.Info("Adding constraint", slog.String("name", model.CustomerCheckConstraint))
		if err := migrator.CreateConstraint(&model.OrderModel{}, model.CustomerCheckConstraint); err != nil {
			return errors.Wrapf(err, "create constraint %s", model.CustomerCheckConstraint)
		}
	}

	return nil
}
