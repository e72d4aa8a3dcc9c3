package queries

import (
	"errors"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists the pending and preparing orders of a hub, rush
// and VIP first, then oldest first. With station ids set, only orders having at
// least one item routed to one of those stations are returned.
type GetActiveOrdersQuery struct {
	hubID      kernel.UUID
	stationIDs []kernel.UUID
	now        time.Time

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates the query; now is the instant elapsed times
// are measured against.
func NewGetActiveOrdersQuery(hubID kernel.UUID, stationIDs []kernel.UUID, now time.Time) (GetActiveOrdersQuery, error) {
	if err := hubID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	for _, id := range stationIDs {
		if err := id.Validate(); err != nil {
			return GetActiveOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("station id", err)
		}
	}
	return GetActiveOrdersQuery{
		hubID:      hubID,
		stationIDs: stationIDs,
		now:        now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}
