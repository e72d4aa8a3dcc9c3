package commands

import (
	"context"
	"strings"
	"time"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/ports"
	"kds/internal/pkg/errs"
)

func validateHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	return nil
}

func normalizeActor(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return audit.SystemActor
	}
	return actor
}

func appendAudit(
	ctx context.Context,
	repo ports.AuditLogRepository,
	subject audit.Subject,
	action audit.Action,
	actor, note string,
	now time.Time,
) error {
	entry, err := audit.NewEntry(subject, action, actor, note, now)
	if err != nil {
		return err
	}
	return repo.Append(ctx, entry)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
