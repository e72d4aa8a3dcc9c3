package ports

import (
	"context"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/settings"
)

// SettingsRepository stores the single settings row of each hub.
type SettingsRepository interface {
	// GetOrCreate returns the hub's settings, inserting defaults on first
	// access. Concurrent first calls leave exactly one row.
	GetOrCreate(ctx context.Context, hubID kernel.UUID) (*settings.Settings, error)

	// Save overwrites the stored values (last writer wins).
	Save(ctx context.Context, s *settings.Settings) error

	// ListAutoBumpEnabled returns the settings of every hub with auto-bump on.
	ListAutoBumpEnabled(ctx context.Context) ([]*settings.Settings, error)
}
