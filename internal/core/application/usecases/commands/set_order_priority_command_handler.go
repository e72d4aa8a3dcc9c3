package commands

import (
	"context"
	"fmt"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/order"
)

type SetOrderPriorityCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetOrderPriorityCommandHandler(uowFactory OrderUoWFactory) SetOrderPriorityCommandHandler {
	return SetOrderPriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the priority and records "priority_changed" with the old and
// new value. It returns the order's (unchanged) status.
func (h *SetOrderPriorityCommandHandler) Handle(ctx context.Context, cmd SetOrderPriorityCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.HubID(), cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	previous := o.Priority()
	if err = o.SetPriority(cmd.Priority()); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	note := fmt.Sprintf("%s -> %s", previous, cmd.Priority())
	subject := audit.Subject{HubID: cmd.HubID(), OrderID: o.ID()}
	if err = appendAudit(ctx, uow.AuditLogRepository(), subject, audit.PriorityChanged, cmd.Actor(), note, utcNow()); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
