package database

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"backend/database/entities"
)

// Connect opens the sqlite file at path, creating parent directories and the
// schema if absent, and returns the handle. TranslateError is on so a unique
// index violation comes back as gorm.ErrDuplicatedKey.
func Connect(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entities.Lead{}); err != nil {
		return nil, err
	}
	return db, nil
}
