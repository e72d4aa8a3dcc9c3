package queries

import (
	"context"
	"errors"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery lists the orders waiting at the pass, longest waiting first.
type GetReadyOrdersQuery struct {
	hubID kernel.UUID
	now   time.Time

	guard guard.ConstructorGuard
}

func NewGetReadyOrdersQuery(hubID kernel.UUID, now time.Time) (GetReadyOrdersQuery, error) {
	if err := hubID.Validate(); err != nil {
		return GetReadyOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	return GetReadyOrdersQuery{hubID: hubID, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle returns the ready orders by ready_at ascending.
func (h GetReadyOrdersQueryHandler) Handle(ctx context.Context, query GetReadyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views, err := scanOrders(ctx, h.db, `SELECT `+orderColumns+`
		FROM orders o
		WHERE o.hub_id = ? AND o.status = ?
		ORDER BY o.ready_at ASC, o.id
	`, query.hubID.Bytes(), int(order.Ready))
	if err != nil {
		return nil, err
	}

	decorate(views, query.now, thresholds{})
	return views, nil
}
