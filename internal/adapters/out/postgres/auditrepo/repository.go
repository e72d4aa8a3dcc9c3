// Package auditrepo appends kitchen audit entries to the kitchen_audit_log table.
package auditrepo

import (
	"context"
	"time"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditEntryDTO is one audit row. Rows are only ever inserted.
type AuditEntryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HubID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID    *uuid.UUID `gorm:"type:uuid"`
	StationID *uuid.UUID `gorm:"type:uuid"`
	Action    string     `gorm:"type:varchar(32);not null"`
	Actor     string     `gorm:"type:varchar(100);not null"`
	Note      string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

func (AuditEntryDTO) TableName() string {
	return "kitchen_audit_log"
}

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts one entry.
func (r *GormAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := AuditEntryDTO{
		ID:        entry.ID().Bytes(),
		HubID:     entry.HubID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		ItemID:    optional(entry.ItemID()),
		StationID: optional(entry.StationID()),
		Action:    string(entry.Action()),
		Actor:     entry.Actor(),
		Note:      entry.Note(),
		CreatedAt: entry.CreatedAt(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

func optional(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
