package commands

import (
	"context"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/services"
)

// CreateOrderResult identifies the created order and the status it starts in.
type CreateOrderResult struct {
	OrderID kernel.UUID
	Status  order.Status
}

// CreateOrderCommandHandler turns a sale into a kitchen order with one item per
// line. Lines are routed to stations by code, and the order starts in
// preparing when the hub auto-accepts orders.
type CreateOrderCommandHandler struct {
	uowFactory IngestUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory IngestUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order, its items and the "received" audit entry (plus
// "accepted" when auto-accept is on) in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubSettings, err := uow.SettingsRepository().GetOrCreate(ctx, cmd.HubID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	stations, err := uow.StationRepository().ListByHub(ctx, cmd.HubID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	router, err := services.NewStationRouter(stations)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := utcNow()
	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.HubID(), order.Details{
		SaleID:      cmd.SaleID(),
		OrderNumber: cmd.OrderNumber(),
		TableNumber: cmd.TableNumber(),
		Notes:       cmd.Notes(),
		Priority:    cmd.Priority(),
	}, now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	for _, line := range cmd.Lines() {
		item, itemErr := order.NewItem(kernel.NewUUID(), order.ItemLine{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Modifiers:   line.Modifiers,
			Notes:       line.Notes,
			StationID:   router.Route(line.StationCode),
		}, now)
		if itemErr != nil {
			return CreateOrderResult{}, itemErr
		}
		if err = newOrder.AddItem(item); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if hubSettings.AutoAcceptOrders() {
		if err = newOrder.Accept(now); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	subject := audit.Subject{HubID: cmd.HubID(), OrderID: newOrder.ID()}
	auditRepo := uow.AuditLogRepository()
	if err = appendAudit(ctx, auditRepo, subject, audit.Received, cmd.Actor(), "", now); err != nil {
		return CreateOrderResult{}, err
	}
	if hubSettings.AutoAcceptOrders() {
		if err = appendAudit(ctx, auditRepo, subject, audit.Accepted, cmd.Actor(), "auto-accept", now); err != nil {
			return CreateOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: newOrder.ID(), Status: newOrder.Status()}, nil
}
