package order

import (
	"time"

	"kds/internal/core/domain/model/kernel"
)

// StatusChanged is recorded every time an order changes status. Events are
// collected on the aggregate and published after the transaction commits.
type StatusChanged struct {
	OrderID    kernel.UUID
	HubID      kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return append([]StatusChanged(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) recordStatusChange(from, to Status, now time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		HubID:      o.hubID,
		From:       from,
		To:         to,
		OccurredAt: now,
	})
}
