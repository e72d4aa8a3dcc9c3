package http

import (
	"net/http"

	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/application/usecases/queries"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"
	"kds/internal/generated/servers"
	"kds/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListStations handles GET /api/v1/stations.
func (s *Server) ListStations(ctx echo.Context) error {
	views, err := s.listStations(ctx)
	if err != nil {
		return err
	}

	response := make([]servers.Station, 0, len(views))
	for _, v := range views {
		response = append(response, toStation(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateStation handles POST /api/v1/stations. A station is active unless
// the request says otherwise.
func (s *Server) CreateStation(ctx echo.Context) error {
	var body servers.StationRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateStationCommand(hubFrom(ctx), stationAttributes(body))
	if err != nil {
		return err
	}
	return s.saveStation(ctx, cmd, http.StatusCreated)
}

// UpdateStation handles PUT /api/v1/stations/{stationId}. Every attribute is
// replaced.
func (s *Server) UpdateStation(ctx echo.Context, stationId openapi_types.UUID) error {
	var body servers.StationRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	stationID, err := kernel.UUIDFromGoogle(stationId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStationCommand(hubFrom(ctx), stationID, stationAttributes(body))
	if err != nil {
		return err
	}
	return s.saveStation(ctx, cmd, http.StatusOK)
}

// DeleteStation handles DELETE /api/v1/stations/{stationId}.
func (s *Server) DeleteStation(ctx echo.Context, stationId openapi_types.UUID) error {
	stationID, err := kernel.UUIDFromGoogle(stationId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteStationCommand(hubFrom(ctx), stationID)
	if err != nil {
		return err
	}

	if err = s.h.DeleteStation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// saveStation runs the command and answers with the stored station, so the
// client sees the normalized code and the default color.
func (s *Server) saveStation(ctx echo.Context, cmd commands.SaveStationCommand, status int) error {
	id, err := s.h.SaveStation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	views, err := s.listStations(ctx)
	if err != nil {
		return err
	}
	for _, v := range views {
		if v.ID.IsEqual(id) {
			return ctx.JSON(status, toStation(v))
		}
	}
	return errs.NewObjectNotFoundError("station", id)
}

func (s *Server) listStations(ctx echo.Context) ([]queries.StationView, error) {
	query, err := queries.NewListStationsQuery(hubFrom(ctx))
	if err != nil {
		return nil, err
	}
	return s.h.Stations.Handle(ctx.Request().Context(), query)
}

func stationAttributes(body servers.StationRequest) station.Attributes {
	attrs := station.Attributes{
		Name:     body.Name,
		Code:     body.Code,
		Color:    deref(body.Color),
		IsActive: true,
	}
	if body.SortOrder != nil {
		attrs.SortOrder = *body.SortOrder
	}
	if body.IsActive != nil {
		attrs.IsActive = *body.IsActive
	}
	return attrs
}

// GetSettings handles GET /api/v1/settings. A hub that never saved settings
// gets the defaults.
func (s *Server) GetSettings(ctx echo.Context) error {
	query, err := queries.NewGetSettingsQuery(hubFrom(ctx))
	if err != nil {
		return err
	}

	values, err := s.h.ReadSettings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSettings(values))
}

// SaveSettings handles PATCH /api/v1/settings - partial update.
func (s *Server) SaveSettings(ctx echo.Context) error {
	var body servers.SettingsPatch
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSaveSettingsCommand(hubFrom(ctx), toPatch(body))
	if err != nil {
		return err
	}

	values, err := s.h.Settings.Save(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSettings(values))
}

// ToggleSetting handles POST /api/v1/settings/toggle.
func (s *Server) ToggleSetting(ctx echo.Context) error {
	var body servers.ToggleRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewToggleSettingCommand(hubFrom(ctx), body.Name, body.Value)
	if err != nil {
		return err
	}

	values, err := s.h.Settings.Toggle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSettings(values))
}

// SetNumberSetting handles POST /api/v1/settings/number.
func (s *Server) SetNumberSetting(ctx echo.Context) error {
	var body servers.NumberRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSetNumberSettingCommand(hubFrom(ctx), body.Name, body.Value)
	if err != nil {
		return err
	}

	values, err := s.h.Settings.SetNumber(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSettings(values))
}

// ResetSettings handles POST /api/v1/settings/reset.
func (s *Server) ResetSettings(ctx echo.Context) error {
	cmd, err := commands.NewResetSettingsCommand(hubFrom(ctx))
	if err != nil {
		return err
	}

	values, err := s.h.Settings.Reset(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toSettings(values))
}
