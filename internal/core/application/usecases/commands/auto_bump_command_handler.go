package commands

import (
	"context"
	"errors"
	"time"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/settings"
)

// AutoBumpReadyOrdersCommandHandler runs one transaction per hub so a failing
// hub does not hold back the others.
type AutoBumpReadyOrdersCommandHandler struct {
	uowFactory AutoBumpUoWFactory
}

func NewAutoBumpReadyOrdersCommandHandler(uowFactory AutoBumpUoWFactory) AutoBumpReadyOrdersCommandHandler {
	return AutoBumpReadyOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many orders were served. Errors of individual hubs are
// joined and returned after every hub was tried.
func (h *AutoBumpReadyOrdersCommandHandler) Handle(ctx context.Context, cmd AutoBumpReadyOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hubs, err := h.uowFactory.Create().SettingsRepository().ListAutoBumpEnabled(ctx)
	if err != nil {
		return 0, err
	}

	served := 0
	var errList []error
	for _, hub := range hubs {
		count, hubErr := h.bumpHub(ctx, hub, cmd.Now())
		served += count
		if hubErr != nil {
			errList = append(errList, hubErr)
		}
	}

	return served, errors.Join(errList...)
}

func (h *AutoBumpReadyOrdersCommandHandler) bumpHub(ctx context.Context, hub *settings.Settings, now time.Time) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := now.Add(-time.Duration(hub.AutoBumpDelaySeconds()) * time.Second)
	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.ListReadyBefore(ctx, hub.HubID(), cutoff)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	auditRepo := uow.AuditLogRepository()
	served := 0
	for _, o := range orders {
		if o.StatusChangedAt().After(cutoff) {
			continue
		}
		if err = o.Serve(now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		subject := audit.Subject{HubID: hub.HubID(), OrderID: o.ID()}
		if err = appendAudit(ctx, auditRepo, subject, audit.Served, audit.SystemActor, "auto-bump", now); err != nil {
			return 0, err
		}
		served++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return served, nil
}
