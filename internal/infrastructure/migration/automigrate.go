package migration

import (
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model covered by schema migration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
	}
}

// Run applies gorm auto-migration for all registered models.
func Run(db *gorm.DB, log logger.Interface) error {
	log.Infow("running database migrations")

	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Infow("database migrations completed")
	return nil
}
