// Package settingsrepo stores the settings row of each hub.
package settingsrepo

import (
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/settings"

	"github.com/google/uuid"
)

// SettingsDTO is one row per hub; hub_id is the primary key, which is what
// makes the lazy creation race-free.
type SettingsDTO struct {
	HubID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	AutoAcceptOrders     bool      `gorm:"not null"`
	ShowTimer            bool      `gorm:"not null"`
	WarningTimeMinutes   int       `gorm:"type:int;not null"`
	CriticalTimeMinutes  int       `gorm:"type:int;not null"`
	ItemsPerPage         int       `gorm:"type:int;not null"`
	AutoRefreshSeconds   int       `gorm:"type:int;not null"`
	SoundEnabled         bool      `gorm:"not null"`
	SoundOnNewOrder      bool      `gorm:"not null"`
	SoundOnRush          bool      `gorm:"not null"`
	AutoBumpEnabled      bool      `gorm:"not null;index"`
	AutoBumpDelaySeconds int       `gorm:"type:int;not null"`
	ColorCodingEnabled   bool      `gorm:"not null"`
}

func (SettingsDTO) TableName() string {
	return "kitchen_settings"
}

func fromValues(hubID kernel.UUID, v settings.Values) SettingsDTO {
	return SettingsDTO{
		HubID:                hubID.Bytes(),
		AutoAcceptOrders:     v.AutoAcceptOrders,
		ShowTimer:            v.ShowTimer,
		WarningTimeMinutes:   v.WarningTimeMinutes,
		CriticalTimeMinutes:  v.CriticalTimeMinutes,
		ItemsPerPage:         v.ItemsPerPage,
		AutoRefreshSeconds:   v.AutoRefreshSeconds,
		SoundEnabled:         v.SoundEnabled,
		SoundOnNewOrder:      v.SoundOnNewOrder,
		SoundOnRush:          v.SoundOnRush,
		AutoBumpEnabled:      v.AutoBumpEnabled,
		AutoBumpDelaySeconds: v.AutoBumpDelaySeconds,
		ColorCodingEnabled:   v.ColorCodingEnabled,
	}
}

// ToValues converts a row into plain values. The settings query reuses it.
func (dto SettingsDTO) ToValues() settings.Values {
	return settings.Values{
		AutoAcceptOrders:     dto.AutoAcceptOrders,
		ShowTimer:            dto.ShowTimer,
		WarningTimeMinutes:   dto.WarningTimeMinutes,
		CriticalTimeMinutes:  dto.CriticalTimeMinutes,
		ItemsPerPage:         dto.ItemsPerPage,
		AutoRefreshSeconds:   dto.AutoRefreshSeconds,
		SoundEnabled:         dto.SoundEnabled,
		SoundOnNewOrder:      dto.SoundOnNewOrder,
		SoundOnRush:          dto.SoundOnRush,
		AutoBumpEnabled:      dto.AutoBumpEnabled,
		AutoBumpDelaySeconds: dto.AutoBumpDelaySeconds,
		ColorCodingEnabled:   dto.ColorCodingEnabled,
	}
}

func toDomain(dto SettingsDTO) (*settings.Settings, error) {
	hubID, err := kernel.UUIDFromGoogle(dto.HubID)
	if err != nil {
		return nil, err
	}
	return settings.RestoreSettings(hubID, dto.ToValues())
}
