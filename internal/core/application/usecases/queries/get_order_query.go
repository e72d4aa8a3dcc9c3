package queries

import (
	"context"
	"errors"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order with its items.
type GetOrderQuery struct {
	hubID   kernel.UUID
	orderID kernel.UUID
	now     time.Time

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(hubID, orderID kernel.UUID, now time.Time) (GetOrderQuery, error) {
	if err := hubID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return GetOrderQuery{hubID: hubID, orderID: orderID, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ErrObjectNotFound when the hub has no such order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	t, err := loadThresholds(ctx, h.db, query.hubID)
	if err != nil {
		return OrderView{}, err
	}

	views, err := scanOrders(ctx, h.db, `SELECT `+orderColumns+`
		FROM orders o
		WHERE o.hub_id = ? AND o.id = ?
	`, query.hubID.Bytes(), query.orderID.Bytes())
	if err != nil {
		return OrderView{}, err
	}

	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	decorate(views, query.now, t)
	return views[0], nil
}
