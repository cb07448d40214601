package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the users and plans tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserSchema{}, &PlanSchema{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
