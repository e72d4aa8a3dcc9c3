package commands

import (
	"context"
	"fmt"
	"time"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/order"
)

// OrderTransitionCommandHandler runs one lifecycle action under a row lock and
// writes the matching audit entry in the same transaction.
type OrderTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewOrderTransitionCommandHandler(uowFactory OrderUoWFactory) OrderTransitionCommandHandler {
	return OrderTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the status the order ends in. Invalid transitions surface
// as errs.ErrTransitionIsInvalid and nothing is written.
func (h *OrderTransitionCommandHandler) Handle(ctx context.Context, cmd OrderTransitionCommand) (order.Status, error) {
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

	now := utcNow()
	from := o.Status()
	if err = applyOrderAction(o, cmd, now); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	subject := audit.Subject{HubID: cmd.HubID(), OrderID: o.ID()}
	if err = appendAudit(ctx, uow.AuditLogRepository(), subject, cmd.Action().AuditAction(),
		cmd.Actor(), transitionNote(cmd, from, o.Status()), now); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}

func applyOrderAction(o *order.Order, cmd OrderTransitionCommand, now time.Time) error {
	switch cmd.Action() {
	case ActionAccept:
		return o.Accept(now)
	case ActionReady:
		return o.MarkReady(now)
	case ActionServe:
		return o.Serve(now)
	case ActionRecall:
		return o.Recall(now)
	case ActionPay:
		return o.Pay(now)
	case ActionCancel:
		return o.Cancel(cmd.Reason(), now)
	case ActionBump:
		_, err := o.Bump(now)
		return err
	default:
		return ErrOrderTransitionCommandIsNotConstructed
	}
}

func transitionNote(cmd OrderTransitionCommand, from, to order.Status) string {
	switch cmd.Action() {
	case ActionCancel:
		return cmd.Reason()
	case ActionBump:
		return fmt.Sprintf("%s -> %s", from, to)
	default:
		return ""
	}
}
