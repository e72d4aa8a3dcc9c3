// Package ports defines the contracts between the kitchen domain and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every lookup is scoped to a hub; an order of another hub is reported as
// not found.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row and the status of each item.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves the complete order including items.
	Get(ctx context.Context, hubID, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// Item transitions use it so that the all-items-ready check sees the
	// committed state of every sibling item.
	GetForUpdate(ctx context.Context, hubID, id kernel.UUID) (*order.Order, error)

	// GetByItemForUpdate locks and returns the order that owns itemID.
	GetByItemForUpdate(ctx context.Context, hubID, itemID kernel.UUID) (*order.Order, error)

	// ListReadyBefore returns the ready orders of a hub that entered ready, most
	// recently, not after the given instant. Oldest first.
	ListReadyBefore(ctx context.Context, hubID kernel.UUID, readyBefore time.Time) ([]*order.Order, error)
}
