package postgres

import (
	"kds/internal/adapters/out/postgres/auditrepo"
	"kds/internal/adapters/out/postgres/orderrepo"
	"kds/internal/adapters/out/postgres/settingsrepo"
	"kds/internal/adapters/out/postgres/stationrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&stationrepo.StationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&settingsrepo.SettingsDTO{},
		&auditrepo.AuditEntryDTO{},
	)
}
