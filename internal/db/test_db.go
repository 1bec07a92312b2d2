package db

import (
	"fmt"
	"testing"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing and
// closes it when the test finishes.
func SetupTestDB(t *testing.T) (*gorm.DB, error) {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Vendor{},
		&model.Restaurant{},
		&model.Item{},
		&model.Package{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := testDB.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return testDB, nil
}
