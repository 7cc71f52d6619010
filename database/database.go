package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jvk36/cafes-with-wifi/config"
	"github.com/jvk36/cafes-with-wifi/model"
)

// Connect opens the Postgres connection, verifies it is reachable, and makes
// sure the cafe table with its unique name index exists. TranslateError lets
// the store layer recognize unique-constraint violations as
// gorm.ErrDuplicatedKey instead of driver-specific error codes.
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.AutoMigrate(&model.Cafe{}); err != nil {
		return nil, fmt.Errorf("migrate cafe table: %w", err)
	}

	return db, nil
}
