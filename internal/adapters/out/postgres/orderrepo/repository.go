package orderrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable order columns and upserts the item states.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND hub_id = ?", dto.ID, dto.HubID).
		Select("status", "priority", "table_number", "notes",
			"accepted_at", "ready_at", "served_at", "paid_at", "cancelled_at", "cancel_reason").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "started_at", "ready_at"}),
			}).
			Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order of the hub with its items.
func (r *GormOrderRepository) Get(ctx context.Context, hubID, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, hubID, id)
}

// GetForUpdate retrieves an order and holds its row lock until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, hubID, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), hubID, id)
}

// GetByItemForUpdate locks the order owning the item. The items are read after
// the lock is granted, so they reflect every sibling update committed before.
func (r *GormOrderRepository) GetByItemForUpdate(
	ctx context.Context,
	hubID, itemID kernel.UUID,
) (*order.Order, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var orderID uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT i.order_id
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE i.id = ? AND o.hub_id = ?
	`, itemID.Bytes(), hubID.Bytes()).Row().Scan(&orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("item", itemID.String())
		}
		return nil, err
	}

	id, err := kernel.UUIDFromGoogle(orderID)
	if err != nil {
		return nil, err
	}

	return r.GetForUpdate(ctx, hubID, id)
}

// ListReadyBefore locks and returns the hub's orders that have been ready since
// at or before the cutoff. The wait is measured from the last entry into ready,
// so a recalled order waits again. Rows locked by another transaction are
// skipped.
func (r *GormOrderRepository) ListReadyBefore(
	ctx context.Context,
	hubID kernel.UUID,
	readyBefore time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Preload("Items", orderedItems).
		Where("hub_id = ? AND status = ? AND status_changed_at <= ?", hubID.Bytes(), int(order.Ready), readyBefore).
		Order("status_changed_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, hubID, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&dto, "id = ? AND hub_id = ?", id.Bytes(), hubID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
