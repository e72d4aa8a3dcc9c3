package ports

import (
	"context"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"
)

// StationRepository defines the persistence contract for stations.
// Add and Update report a duplicate code within a hub as ErrValueIsInvalid.
type StationRepository interface {
	Add(ctx context.Context, s *station.Station) error
	Update(ctx context.Context, s *station.Station) error
	Get(ctx context.Context, hubID, id kernel.UUID) (*station.Station, error)

	// Delete removes the station; items routed to it keep existing without a station.
	Delete(ctx context.Context, hubID, id kernel.UUID) error

	// ListByHub returns the stations ordered by sort order, then name.
	ListByHub(ctx context.Context, hubID kernel.UUID) ([]*station.Station, error)
}
