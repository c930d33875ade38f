package repositories

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fittrack/internal/models"
)

// OpenDB opens the SQLite store at path and migrates the schema. The handle
// is created once at process start, injected into every repository, and
// closed at shutdown by CloseDB.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// Unique-constraint violations must surface as gorm.ErrDuplicatedKey
		// for the upsert conflict fallback.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WeightEntry{},
		&models.BodyMeasurement{},
		&models.WorkoutSet{},
		&models.Supplement{},
		&models.JournalEntry{},
		&models.Routine{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// CloseDB closes the underlying connection of a GORM handle.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	return sqlDB.Close()
}
