package database

import (
	"fmt"

	"moovsafe/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the fleet tables. The unique indexes on VIN,
// license plate and engine number are declared on the model tags and back
// the application-level conflict check.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Inspection{},
		&models.MaintenanceRecord{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
