package queries

import (
	"context"
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderCountsQueryIsNotConstructed = errors.New(
	"GetOrderCountsQuery must be created via NewGetOrderCountsQuery constructor",
)

type GetOrderCountsQuery struct {
	hubID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderCountsQuery(hubID kernel.UUID) (GetOrderCountsQuery, error) {
	if err := hubID.Validate(); err != nil {
		return GetOrderCountsQuery{}, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	return GetOrderCountsQuery{hubID: hubID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCountsQueryIsNotConstructed)
}

// OrderCounts holds one counter per status. Statuses without orders are zero.
type OrderCounts map[order.Status]int

// Active is pending plus preparing.
func (c OrderCounts) Active() int {
	return c[order.Pending] + c[order.Preparing]
}

type GetOrderCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderCountsQueryHandler(db *gorm.DB) GetOrderCountsQueryHandler {
	return GetOrderCountsQueryHandler{db: db}
}

func (h GetOrderCountsQueryHandler) Handle(ctx context.Context, query GetOrderCountsQuery) (OrderCounts, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(OrderCounts, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE hub_id = ?
		GROUP BY status
	`, query.hubID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
