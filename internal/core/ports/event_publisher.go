package ports

import (
	"context"

	"kds/internal/core/domain/model/order"
)

// EventPublisher delivers order status changes to other systems. It is called
// after the transaction that produced the events has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
