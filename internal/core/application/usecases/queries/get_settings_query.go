package queries

import (
	"context"
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/settings"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New("GetSettingsQuery must be created via NewGetSettingsQuery constructor")

type GetSettingsQuery struct {
	hubID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSettingsQuery(hubID kernel.UUID) (GetSettingsQuery, error) {
	if err := hubID.Validate(); err != nil {
		return GetSettingsQuery{}, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	return GetSettingsQuery{hubID: hubID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// GetSettingsQueryHandler reads a hub's settings. A hub that never saved its
// settings reads the defaults; the row itself is created by the first write.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (settings.Values, error) {
	if err := query.Validate(); err != nil {
		return settings.Values{}, err
	}

	var rows []settings.Values
	if err := h.db.WithContext(ctx).Raw(`
		SELECT auto_accept_orders, show_timer, warning_time_minutes, critical_time_minutes,
			items_per_page, auto_refresh_seconds, sound_enabled, sound_on_new_order, sound_on_rush,
			auto_bump_enabled, auto_bump_delay_seconds, color_coding_enabled
		FROM kitchen_settings
		WHERE hub_id = ?
	`, query.hubID.Bytes()).Scan(&rows).Error; err != nil {
		return settings.Values{}, err
	}

	if len(rows) == 0 {
		return settings.Defaults(), nil
	}

	return rows[0], nil
}
