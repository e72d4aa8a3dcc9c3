package commands

import (
	"context"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/order"
)

// ItemTransitionResult reports the item and order status after the command.
type ItemTransitionResult struct {
	ItemStatus  order.ItemStatus
	OrderStatus order.Status
}

// ItemTransitionCommandHandler starts or finishes an item. The owning order is
// loaded under a row lock, so the all-items-ready check and the resulting
// order transition see every sibling item as committed by earlier commands.
type ItemTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewItemTransitionCommandHandler(uowFactory OrderUoWFactory) ItemTransitionCommandHandler {
	return ItemTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle writes nothing when the item is already in the requested state.
// When the last item becomes ready the order moves to ready and a "completed"
// entry is written next to "item_ready".
func (h *ItemTransitionCommandHandler) Handle(ctx context.Context, cmd ItemTransitionCommand) (ItemTransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ItemTransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ItemTransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByItemForUpdate(ctx, cmd.HubID(), cmd.ItemID())
	if err != nil {
		return ItemTransitionResult{}, err
	}

	now := utcNow()
	var changed, orderBecameReady bool
	var auditAction audit.Action

	switch cmd.Action() {
	case ItemActionPreparing:
		auditAction = audit.ItemStarted
		changed, err = o.MarkItemPreparing(cmd.ItemID(), now)
	default:
		auditAction = audit.ItemReady
		var outcome order.ItemReadyOutcome
		outcome, err = o.MarkItemReady(cmd.ItemID(), now)
		changed, orderBecameReady = outcome.ItemChanged, outcome.OrderBecameReady
	}
	if err != nil {
		return ItemTransitionResult{}, err
	}

	item, err := o.Item(cmd.ItemID())
	if err != nil {
		return ItemTransitionResult{}, err
	}
	result := ItemTransitionResult{ItemStatus: item.Status(), OrderStatus: o.Status()}

	if !changed && !orderBecameReady {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ItemTransitionResult{}, err
	}

	auditRepo := uow.AuditLogRepository()
	itemID := item.ID()
	itemSubject := audit.Subject{HubID: cmd.HubID(), OrderID: o.ID(), ItemID: &itemID, StationID: item.StationID()}
	if changed {
		if err = appendAudit(ctx, auditRepo, itemSubject, auditAction, cmd.Actor(), item.ProductName(), now); err != nil {
			return ItemTransitionResult{}, err
		}
	}
	if orderBecameReady {
		orderSubject := audit.Subject{HubID: cmd.HubID(), OrderID: o.ID()}
		if err = appendAudit(ctx, auditRepo, orderSubject, audit.Completed, cmd.Actor(), "all items ready", now); err != nil {
			return ItemTransitionResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ItemTransitionResult{}, err
	}

	return result, nil
}
