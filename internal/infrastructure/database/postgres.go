package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/accountsvc/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError turns driver
// unique-violation errors into gorm.ErrDuplicatedKey, which the account
// repository maps to the domain error.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for the account tables. Casbin
// policy tables are migrated by its gorm adapter.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&repositories.DBAccount{})
}
