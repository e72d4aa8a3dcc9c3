package queries

import (
	"context"
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListStationsQueryIsNotConstructed = errors.New("ListStationsQuery must be created via NewListStationsQuery constructor")

type ListStationsQuery struct {
	hubID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListStationsQuery(hubID kernel.UUID) (ListStationsQuery, error) {
	if err := hubID.Validate(); err != nil {
		return ListStationsQuery{}, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	return ListStationsQuery{hubID: hubID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStationsQuery) Validate() error {
	return q.guard.Validate(ErrListStationsQueryIsNotConstructed)
}

type StationView struct {
	ID        kernel.UUID
	Name      string
	Code      string
	Color     string
	SortOrder int
	IsActive  bool
}

type ListStationsQueryHandler struct {
	db *gorm.DB
}

func NewListStationsQueryHandler(db *gorm.DB) ListStationsQueryHandler {
	return ListStationsQueryHandler{db: db}
}

// Handle lists every station of the hub by sort order, then name.
func (h ListStationsQueryHandler) Handle(ctx context.Context, query ListStationsQuery) ([]StationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, code, color, sort_order, is_active
		FROM stations
		WHERE hub_id = ?
		ORDER BY sort_order, name
	`, query.hubID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]StationView, 0)
	for rows.Next() {
		var v StationView
		var id uuid.UUID
		if err = rows.Scan(&id, &v.Name, &v.Code, &v.Color, &v.SortOrder, &v.IsActive); err != nil {
			return nil, err
		}
		if v.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		stations = append(stations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
