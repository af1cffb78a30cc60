package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates all application tables, including the
// casbin_rules table used by the policy adapter.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBRefreshToken{},
		&repositories.DBPasswordReset{},
		&repositories.DBMovie{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
