package ports

import (
	"context"

	"kds/internal/core/domain/model/audit"
)

// AuditLogRepository appends audit entries. Entries are never updated or deleted.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *audit.Entry) error
}
