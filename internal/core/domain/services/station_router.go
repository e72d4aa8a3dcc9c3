package services

import (
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"
)

// StationRouter maps station codes sent by the point of sale to the stations
// of one hub.
//
// Business rules:
//   - codes match case-insensitively and ignore surrounding blanks
//   - inactive stations never receive items
//   - an unknown or blank code leaves the item without a station, it still
//     shows on the main board
//
// Example:
//
//	router, err := services.NewStationRouter(stations)
//	stationID := router.Route("grl") // *kernel.UUID or nil
type StationRouter struct {
	byCode map[string]kernel.UUID
}

// NewStationRouter indexes the active stations. Every station must be valid.
func NewStationRouter(stations []*station.Station) (StationRouter, error) {
	byCode := make(map[string]kernel.UUID, len(stations))
	for _, s := range stations {
		if err := s.Validate(); err != nil {
			return StationRouter{}, err
		}
		if !s.IsActive() {
			continue
		}
		byCode[s.Code()] = s.ID()
	}
	return StationRouter{byCode: byCode}, nil
}

// Route returns the station for code, or nil when there is none.
func (r StationRouter) Route(code string) *kernel.UUID {
	normalized := station.NormalizeCode(code)
	if normalized == "" {
		return nil
	}
	id, ok := r.byCode[normalized]
	if !ok {
		return nil
	}
	return &id
}
