// Package queries contains the read side of the kitchen display. Handlers run
// plain SQL through GORM and return read models; they never load aggregates.
package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/model/settings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrderView is an order as shown on a kitchen screen.
type OrderView struct {
	ID           kernel.UUID
	SaleID       string
	OrderNumber  string
	TableNumber  string
	Notes        string
	Status       order.Status
	Priority     order.Priority
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	ReadyAt      *time.Time
	ServedAt     *time.Time
	PaidAt       *time.Time
	CancelledAt  *time.Time
	CancelReason string

	ElapsedMinutes int
	ElapsedDisplay string
	StatusClass    string

	Items []ItemView
}

// ItemView is one line of an OrderView.
type ItemView struct {
	ID          kernel.UUID
	ProductID   string
	ProductName string
	Quantity    int
	Modifiers   []string
	Notes       string
	StationID   *kernel.UUID
	Status      order.ItemStatus
	StartedAt   *time.Time
	ReadyAt     *time.Time
}

const orderColumns = `
	o.id, o.sale_id, o.order_number, o.table_number, o.notes, o.status, o.priority,
	o.created_at, o.accepted_at, o.ready_at, o.served_at, o.paid_at, o.cancelled_at, o.cancel_reason`

// thresholds are the timer settings that drive StatusClass.
type thresholds struct {
	warning     int
	critical    int
	colorCoding bool
}

// loadThresholds reads the hub's timer settings, falling back to the defaults
// for a hub whose settings were never saved.
func loadThresholds(ctx context.Context, db *gorm.DB, hubID kernel.UUID) (thresholds, error) {
	defaults := settings.Defaults()
	t := thresholds{
		warning:     defaults.WarningTimeMinutes,
		critical:    defaults.CriticalTimeMinutes,
		colorCoding: defaults.ColorCodingEnabled,
	}

	err := db.WithContext(ctx).Raw(`
		SELECT warning_time_minutes, critical_time_minutes, color_coding_enabled
		FROM kitchen_settings
		WHERE hub_id = ?
	`, hubID.Bytes()).Row().Scan(&t.warning, &t.critical, &t.colorCoding)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return thresholds{}, err
	}

	return t, nil
}

// decorate fills the timer fields of every view.
func decorate(views []OrderView, now time.Time, t thresholds) {
	for i := range views {
		v := &views[i]
		v.ElapsedMinutes = order.ElapsedMinutes(v.CreatedAt, now)
		v.ElapsedDisplay = order.FormatElapsed(v.ElapsedMinutes)
		if t.colorCoding {
			v.StatusClass = order.ClassFor(v.Status, v.ElapsedMinutes, t.warning, t.critical)
		}
	}
}

// scanOrders runs a query selecting orderColumns and attaches the items.
func scanOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var v OrderView
		var id uuid.UUID
		var status, priority int

		if err = rows.Scan(
			&id, &v.SaleID, &v.OrderNumber, &v.TableNumber, &v.Notes, &status, &priority,
			&v.CreatedAt, &v.AcceptedAt, &v.ReadyAt, &v.ServedAt, &v.PaidAt, &v.CancelledAt, &v.CancelReason,
		); err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		v.Status = order.Status(status)
		v.Priority = order.Priority(priority)
		v.CreatedAt = v.CreatedAt.UTC()
		v.AcceptedAt = utc(v.AcceptedAt)
		v.ReadyAt = utc(v.ReadyAt)
		v.ServedAt = utc(v.ServedAt)
		v.PaidAt = utc(v.PaidAt)
		v.CancelledAt = utc(v.CancelledAt)
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, views); err != nil {
		return nil, err
	}

	return views, nil
}

func attachItems(ctx context.Context, db *gorm.DB, views []OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, len(views))
	index := make(map[uuid.UUID]int, len(views))
	for i, v := range views {
		ids = append(ids, v.ID.String())
		index[v.ID.Bytes()] = i
		views[i].Items = make([]ItemView, 0)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, id, product_id, product_name, quantity, modifiers, notes,
			station_id, status, started_at, ready_at
		FROM order_items
		WHERE order_id = ANY(?::uuid[])
		ORDER BY order_id, position
	`, pq.Array(ids)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemView
		var orderID, id uuid.UUID
		var stationID uuid.NullUUID
		var modifiers pq.StringArray
		var status int

		if err = rows.Scan(
			&orderID, &id, &item.ProductID, &item.ProductName, &item.Quantity, &modifiers, &item.Notes,
			&stationID, &status, &item.StartedAt, &item.ReadyAt,
		); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return err
		}
		if stationID.Valid {
			sID, sErr := kernel.UUIDFromGoogle(stationID.UUID)
			if sErr != nil {
				return sErr
			}
			item.StationID = &sID
		}
		item.Modifiers = modifiers
		if item.Modifiers == nil {
			item.Modifiers = []string{}
		}
		item.Status = order.ItemStatus(status)
		item.StartedAt = utc(item.StartedAt)
		item.ReadyAt = utc(item.ReadyAt)

		if i, ok := index[orderID]; ok {
			views[i].Items = append(views[i].Items, item)
		}
	}

	return rows.Err()
}

func statusInts(statuses []order.Status) []int64 {
	out := make([]int64, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, int64(s))
	}
	return out
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
