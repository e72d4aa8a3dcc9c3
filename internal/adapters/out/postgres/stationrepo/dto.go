// Package stationrepo maps kitchen stations to the stations table.
package stationrepo

import (
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO is the stations row. Code is unique per hub.
type StationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stations_hub_code,priority:1"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Code      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_stations_hub_code,priority:2"`
	Color     string    `gorm:"type:varchar(7);not null"`
	SortOrder int       `gorm:"type:int;not null"`
	IsActive  bool      `gorm:"not null"`
}

func (StationDTO) TableName() string {
	return "stations"
}

func fromDomain(s *station.Station) StationDTO {
	return StationDTO{
		ID:        s.ID().Bytes(),
		HubID:     s.HubID().Bytes(),
		Name:      s.Name(),
		Code:      s.Code(),
		Color:     s.Color(),
		SortOrder: s.SortOrder(),
		IsActive:  s.IsActive(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	hubID, err := kernel.UUIDFromGoogle(dto.HubID)
	if err != nil {
		return nil, err
	}

	return station.RestoreStation(id, hubID, station.Attributes{
		Name:      dto.Name,
		Code:      dto.Code,
		Color:     dto.Color,
		SortOrder: dto.SortOrder,
		IsActive:  dto.IsActive,
	})
}
