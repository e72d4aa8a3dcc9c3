package queries

import (
	"context"
	"strings"

	"kds/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler serves the main kitchen board.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the board ordered by priority desc, created_at asc. Timer
// fields use the hub's warning and critical thresholds.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	t, err := loadThresholds(ctx, h.db, query.hubID)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.hub_id = ? AND o.status = ANY(?::int[])`)
	args := []any{query.hubID.Bytes(), pq.Array(statusInts(order.ActiveStatuses()))}

	if len(query.stationIDs) > 0 {
		stationIDs := make([]string, 0, len(query.stationIDs))
		for _, id := range query.stationIDs {
			stationIDs = append(stationIDs, id.String())
		}
		sb.WriteString(`
		AND EXISTS (
			SELECT 1 FROM order_items i
			WHERE i.order_id = o.id AND i.station_id = ANY(?::uuid[])
		)`)
		args = append(args, pq.Array(stationIDs))
	}

	sb.WriteString(`
		ORDER BY o.priority DESC, o.created_at ASC, o.id`)

	views, err := scanOrders(ctx, h.db, sb.String(), args...)
	if err != nil {
		return nil, err
	}

	decorate(views, query.now, t)
	return views, nil
}
