package settingsrepo

import (
	"context"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetOrCreate inserts the defaults unless the hub already has a row and then
// reads the row back, so two concurrent first calls both see the winner.
func (r *GormSettingsRepository) GetOrCreate(ctx context.Context, hubID kernel.UUID) (*settings.Settings, error) {
	if err := hubID.Validate(); err != nil {
		return nil, err
	}

	defaults := fromValues(hubID, settings.Defaults())
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "hub_id"}}, DoNothing: true}).
		Create(&defaults).Error; err != nil {
		return nil, err
	}

	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "hub_id = ?", hubID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Save writes every column; the last writer wins.
func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromValues(s.HubID(), s.Values())
	return r.db.WithContext(ctx).Save(&dto).Error
}

// ListAutoBumpEnabled returns the hubs the auto-bump job has to visit.
func (r *GormSettingsRepository) ListAutoBumpEnabled(ctx context.Context) ([]*settings.Settings, error) {
	var dtos []SettingsDTO
	if err := r.db.WithContext(ctx).
		Where("auto_bump_enabled = ?", true).
		Order("hub_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	list := make([]*settings.Settings, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}

	return list, nil
}
