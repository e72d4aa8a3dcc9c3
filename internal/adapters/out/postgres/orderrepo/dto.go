// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kds/internal/adapters/out/postgres/stationrepo"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are deleted together with their order.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID        uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_hub_status,priority:1"`
	SaleID       string    `gorm:"type:varchar(64);not null"`
	OrderNumber  string    `gorm:"type:varchar(50);not null"`
	TableNumber  string    `gorm:"type:varchar(50);not null"`
	Notes        string    `gorm:"type:text;not null"`
	Status       int       `gorm:"type:smallint;not null;index:idx_orders_hub_status,priority:2"`
	Priority     int       `gorm:"type:smallint;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	AcceptedAt   *time.Time
	ReadyAt      *time.Time
	ServedAt     *time.Time
	PaidAt       *time.Time
	CancelledAt  *time.Time
	CancelReason string         `gorm:"type:text;not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	StatusChangedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one ticket line. Deleting its station sets StationID to null.
type OrderItemDTO struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	Position    int                     `gorm:"type:int;not null"`
	ProductID   string                  `gorm:"type:varchar(64);not null"`
	ProductName string                  `gorm:"type:varchar(255);not null"`
	Quantity    int                     `gorm:"type:int;not null"`
	Modifiers   pq.StringArray          `gorm:"type:text[]"`
	Notes       string                  `gorm:"type:text;not null"`
	StationID   *uuid.UUID              `gorm:"type:uuid;index"`
	Station     *stationrepo.StationDTO `gorm:"foreignKey:StationID;constraint:OnDelete:SET NULL"`
	Status      int                     `gorm:"type:smallint;not null"`
	CreatedAt   time.Time               `gorm:"not null"`
	StartedAt   *time.Time
	ReadyAt     *time.Time
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate and its items to database rows.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for position, item := range o.Items() {
		var stationID *uuid.UUID
		if id := item.StationID(); id != nil {
			raw := id.Bytes()
			stationID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			Position:    position,
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Modifiers:   pq.StringArray(item.Modifiers()),
			Notes:       item.Notes(),
			StationID:   stationID,
			Status:      int(item.Status()),
			CreatedAt:   item.CreatedAt(),
			StartedAt:   item.StartedAt(),
			ReadyAt:     item.ReadyAt(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		HubID:        o.HubID().Bytes(),
		SaleID:       o.SaleID(),
		OrderNumber:  o.OrderNumber(),
		TableNumber:  o.TableNumber(),
		Notes:        o.Notes(),
		Status:       int(o.Status()),
		Priority:     int(o.Priority()),
		CreatedAt:    o.CreatedAt(),
		AcceptedAt:   o.AcceptedAt(),
		ReadyAt:      o.ReadyAt(),
		ServedAt:     o.ServedAt(),
		PaidAt:       o.PaidAt(),
		CancelledAt:  o.CancelledAt(),
		CancelReason: o.CancelReason(),
		Items:        items,

		StatusChangedAt: o.StatusChangedAt(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Timestamps come back in UTC.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	hubID, err := kernel.UUIDFromGoogle(dto.HubID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:    id,
		HubID: hubID,
		Details: order.Details{
			SaleID:      dto.SaleID,
			OrderNumber: dto.OrderNumber,
			TableNumber: dto.TableNumber,
			Notes:       dto.Notes,
			Priority:    order.Priority(dto.Priority),
		},
		Status:       order.Status(dto.Status),
		CreatedAt:    dto.CreatedAt.UTC(),
		AcceptedAt:   utc(dto.AcceptedAt),
		ReadyAt:      utc(dto.ReadyAt),
		ServedAt:     utc(dto.ServedAt),
		PaidAt:       utc(dto.PaidAt),
		CancelledAt:  utc(dto.CancelledAt),
		CancelReason: dto.CancelReason,
		Items:        items,

		StatusChangedAt: dto.StatusChangedAt.UTC(),
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var stationID *kernel.UUID
	if dto.StationID != nil {
		sID, stationErr := kernel.UUIDFromGoogle(*dto.StationID)
		if stationErr != nil {
			return nil, stationErr
		}
		stationID = &sID
	}

	return order.RestoreItem(order.RestoreItemParams{
		ID:          id,
		ProductID:   dto.ProductID,
		ProductName: dto.ProductName,
		Quantity:    dto.Quantity,
		Modifiers:   dto.Modifiers,
		Notes:       dto.Notes,
		StationID:   stationID,
		Status:      order.ItemStatus(dto.Status),
		CreatedAt:   dto.CreatedAt.UTC(),
		StartedAt:   utc(dto.StartedAt),
		ReadyAt:     utc(dto.ReadyAt),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
