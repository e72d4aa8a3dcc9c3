package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// HistoryFilter narrows the history. From and To bound created_at
// (inclusive, exclusive); Search matches order number or notes.
type HistoryFilter struct {
	From   *time.Time
	To     *time.Time
	Search string
	Limit  int
}

// GetOrderHistoryQuery lists served, paid and cancelled orders, most recently
// served first.
type GetOrderHistoryQuery struct {
	hubID  kernel.UUID
	filter HistoryFilter
	now    time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery applies the default limit to a zero limit and caps
// larger ones at MaxHistoryLimit. now ends the timer of an order that has no
// closing timestamp.
func NewGetOrderHistoryQuery(hubID kernel.UUID, filter HistoryFilter, now time.Time) (GetOrderHistoryQuery, error) {
	var errList []error
	if err := hubID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("hub id", err))
	}
	if filter.Limit < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 0, MaxHistoryLimit))
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("to", errors.New("to is before from")))
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultHistoryLimit
	case filter.Limit > MaxHistoryLimit:
		filter.Limit = MaxHistoryLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)

	return GetOrderHistoryQuery{hubID: hubID, filter: filter, now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Limit is the effective row cap.
func (q GetOrderHistoryQuery) Limit() int {
	return q.filter.Limit
}

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.hub_id = ? AND o.status = ANY(?::int[])`)
	args := []any{query.hubID.Bytes(), pq.Array(statusInts(order.HistoryStatuses()))}

	f := query.filter
	if f.From != nil {
		sb.WriteString(` AND o.created_at >= ?`)
		args = append(args, f.From.UTC())
	}
	if f.To != nil {
		sb.WriteString(` AND o.created_at < ?`)
		args = append(args, f.To.UTC())
	}
	if f.Search != "" {
		sb.WriteString(` AND (o.order_number ILIKE ? OR o.notes ILIKE ?)`)
		pattern := "%" + escapeLike(f.Search) + "%"
		args = append(args, pattern, pattern)
	}

	sb.WriteString(`
		ORDER BY o.served_at DESC NULLS LAST, o.created_at DESC, o.id
		LIMIT ?`)
	args = append(args, f.Limit)

	views, err := scanOrders(ctx, h.db, sb.String(), args...)
	if err != nil {
		return nil, err
	}

	// closed tickets show how long they took, without a status class
	for i := range views {
		decorate(views[i:i+1], closedAt(views[i], query.now), thresholds{})
	}
	return views, nil
}

// closedAt is when the order left the kitchen's hands.
func closedAt(v OrderView, fallback time.Time) time.Time {
	for _, at := range []*time.Time{v.ServedAt, v.CancelledAt, v.PaidAt} {
		if at != nil {
			return *at
		}
	}
	return fallback
}

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
