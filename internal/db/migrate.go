package db

import (
	"fmt"

	"github.com/rtservizi/fieldtrack/internal/models"
	"gorm.io/gorm"
)

// Migrate applies the schema for all entities on the current dialect. The
// unique indexes on clients.name, commissions.code, users.username and
// users.email back up the application-level pre-checks, which are not atomic
// on their own.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errAutoMigrate := conn.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Plant{},
		&models.Machine{},
		&models.Commission{},
		&models.Report{},
	); errAutoMigrate != nil {
		return fmt.Errorf("db: auto migrate: %w", errAutoMigrate)
	}
	return nil
}
