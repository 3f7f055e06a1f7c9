package database

import (
	"fmt"

	"academy_backend/internal/logger"
	"academy_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Models carry
// uuid_generate_v4() defaults, so the uuid-ossp extension has to exist
// before AutoMigrate runs.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.TrainerProfile{},
		&models.StudentProfile{},
		&models.Video{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}
