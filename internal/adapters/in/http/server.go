// Package http exposes the kitchen use cases over the echo server generated
// from api/openapi.yml.
package http

import (
	"context"
	"net/http"
	"time"

	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/application/usecases/queries"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/model/settings"
	"kds/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Use case contracts the server depends on. The command and query handlers
// satisfy them.
type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}
	OrderTransitioner interface {
		Handle(ctx context.Context, cmd commands.OrderTransitionCommand) (order.Status, error)
	}
	PrioritySetter interface {
		Handle(ctx context.Context, cmd commands.SetOrderPriorityCommand) (order.Status, error)
	}
	ItemTransitioner interface {
		Handle(ctx context.Context, cmd commands.ItemTransitionCommand) (commands.ItemTransitionResult, error)
	}
	StationSaver interface {
		Handle(ctx context.Context, cmd commands.SaveStationCommand) (kernel.UUID, error)
	}
	StationDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteStationCommand) error
	}
	SettingsEditor interface {
		Save(ctx context.Context, cmd commands.SaveSettingsCommand) (settings.Values, error)
		Toggle(ctx context.Context, cmd commands.ToggleSettingCommand) (settings.Values, error)
		SetNumber(ctx context.Context, cmd commands.SetNumberSettingCommand) (settings.Values, error)
		Reset(ctx context.Context, cmd commands.ResetSettingsCommand) (settings.Values, error)
	}

	ActiveOrdersReader interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error)
	}
	ReadyOrdersReader interface {
		Handle(ctx context.Context, query queries.GetReadyOrdersQuery) ([]queries.OrderView, error)
	}
	OrderHistoryReader interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.OrderView, error)
	}
	OrderCountsReader interface {
		Handle(ctx context.Context, query queries.GetOrderCountsQuery) (queries.OrderCounts, error)
	}
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	SettingsReader interface {
		Handle(ctx context.Context, query queries.GetSettingsQuery) (settings.Values, error)
	}
	StationsReader interface {
		Handle(ctx context.Context, query queries.ListStationsQuery) ([]queries.StationView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     OrderCreator
	TransitionOrder OrderTransitioner
	SetPriority     PrioritySetter
	TransitionItem  ItemTransitioner
	SaveStation     StationSaver
	DeleteStation   StationDeleter
	Settings        SettingsEditor

	ActiveOrders ActiveOrdersReader
	ReadyOrders  ReadyOrdersReader
	OrderHistory OrderHistoryReader
	OrderCounts  OrderCountsReader
	Order        OrderReader
	ReadSettings SettingsReader
	Stations     StationsReader
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h       Handlers
	metrics *Metrics
	now     func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a server. metrics may be nil.
func NewServer(h Handlers, metrics *Metrics) *Server {
	return &Server{
		h:       h,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder handles POST /api/v1/orders - ingests a sale.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	priority := order.Normal
	if body.Priority != nil {
		var err error
		if priority, err = order.PriorityFromString(string(*body.Priority)); err != nil {
			return err
		}
	}

	lines := make([]commands.OrderLine, 0, len(body.Lines))
	for _, l := range body.Lines {
		lines = append(lines, commands.OrderLine{
			ProductID:   deref(l.ProductId),
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Modifiers:   derefSlice(l.Modifiers),
			Notes:       deref(l.Notes),
			StationCode: deref(l.StationCode),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		hubFrom(ctx),
		deref(body.SaleId),
		body.OrderNumber,
		deref(body.TableNumber),
		deref(body.Notes),
		priority,
		lines,
		actorFrom(ctx),
	)
	if err != nil {
		return err
	}

	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.transition("create", result.Status.String())
	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Success: true,
		Id:      result.OrderID.Bytes(),
		Status:  servers.OrderStatus(result.Status.String()),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - the kitchen board.
func (s *Server) GetActiveOrders(ctx echo.Context, params servers.GetActiveOrdersParams) error {
	var stationIDs []kernel.UUID
	if params.StationId != nil {
		for _, id := range *params.StationId {
			stationID, err := kernel.UUIDFromGoogle(id)
			if err != nil {
				return err
			}
			stationIDs = append(stationIDs, stationID)
		}
	}

	query, err := queries.NewGetActiveOrdersQuery(hubFrom(ctx), stationIDs, s.now())
	if err != nil {
		return err
	}

	views, err := s.h.ActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetReadyOrders handles GET /api/v1/orders/ready - orders waiting for pickup.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	query, err := queries.NewGetReadyOrdersQuery(hubFrom(ctx), s.now())
	if err != nil {
		return err
	}

	views, err := s.h.ReadyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetOrderHistory handles GET /api/v1/orders/history.
func (s *Server) GetOrderHistory(ctx echo.Context, params servers.GetOrderHistoryParams) error {
	filter := queries.HistoryFilter{
		From:   params.From,
		To:     params.To,
		Search: deref(params.Q),
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}

	query, err := queries.NewGetOrderHistoryQuery(hubFrom(ctx), filter, s.now())
	if err != nil {
		return err
	}

	views, err := s.h.OrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(views))
}

// GetOrderCounts handles GET /api/v1/orders/counts.
func (s *Server) GetOrderCounts(ctx echo.Context) error {
	query, err := queries.NewGetOrderCountsQuery(hubFrom(ctx))
	if err != nil {
		return err
	}

	counts, err := s.h.OrderCounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.OrderCounts{
		Pending:   counts[order.Pending],
		Preparing: counts[order.Preparing],
		Ready:     counts[order.Ready],
		Served:    counts[order.Served],
		Cancelled: counts[order.Cancelled],
		Paid:      counts[order.Paid],
		Active:    counts.Active(),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(hubFrom(ctx), orderID, s.now())
	if err != nil {
		return err
	}

	view, err := s.h.Order.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, commands.ActionAccept, "")
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, commands.ActionReady, "")
}

// ServeOrder handles POST /api/v1/orders/{orderId}/serve.
func (s *Server) ServeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, commands.ActionServe, "")
}

// RecallOrder handles POST /api/v1/orders/{orderId}/recall.
func (s *Server) RecallOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, commands.ActionRecall, "")
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay.
func (s *Server) PayOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, commands.ActionPay, "")
}

// BumpOrder handles POST /api/v1/orders/{orderId}/bump.
func (s *Server) BumpOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.transition(ctx, orderId, commands.ActionBump, "")
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel. The body is optional.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return err
		}
	}
	return s.transition(ctx, orderId, commands.ActionCancel, deref(body.Reason))
}

func (s *Server) transition(ctx echo.Context, orderId openapi_types.UUID, action commands.OrderAction, reason string) error {
	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewOrderTransitionCommand(hubFrom(ctx), orderID, action, actorFrom(ctx), reason)
	if err != nil {
		return err
	}

	status, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.transition(string(action), status.String())
	return ctx.JSON(http.StatusOK, servers.TransitionResult{
		Success: true,
		Status:  servers.OrderStatus(status.String()),
	})
}

// SetOrderPriority handles PUT /api/v1/orders/{orderId}/priority.
func (s *Server) SetOrderPriority(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.PriorityRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}
	priority, err := order.PriorityFromString(string(body.Priority))
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderPriorityCommand(hubFrom(ctx), orderID, priority, actorFrom(ctx))
	if err != nil {
		return err
	}

	status, err := s.h.SetPriority.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.transition("priority", status.String())
	return ctx.JSON(http.StatusOK, servers.TransitionResult{
		Success: true,
		Status:  servers.OrderStatus(status.String()),
	})
}

// StartItem handles POST /api/v1/items/{itemId}/preparing.
func (s *Server) StartItem(ctx echo.Context, itemId openapi_types.UUID) error {
	return s.itemTransition(ctx, itemId, commands.ItemActionPreparing)
}

// MarkItemReady handles POST /api/v1/items/{itemId}/ready. The response
// carries the order status so the board sees an order that became ready.
func (s *Server) MarkItemReady(ctx echo.Context, itemId openapi_types.UUID) error {
	return s.itemTransition(ctx, itemId, commands.ItemActionReady)
}

func (s *Server) itemTransition(ctx echo.Context, itemId openapi_types.UUID, action commands.ItemAction) error {
	itemID, err := kernel.UUIDFromGoogle(itemId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewItemTransitionCommand(hubFrom(ctx), itemID, action, actorFrom(ctx))
	if err != nil {
		return err
	}

	result, err := s.h.TransitionItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.transition("item_"+string(action), result.ItemStatus.String())
	return ctx.JSON(http.StatusOK, servers.ItemTransitionResult{
		Success:     true,
		Status:      servers.ItemStatus(result.ItemStatus.String()),
		OrderStatus: servers.OrderStatus(result.OrderStatus.String()),
	})
}
