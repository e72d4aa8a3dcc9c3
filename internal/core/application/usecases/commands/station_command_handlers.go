package commands

import (
	"context"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"
)

// SaveStationCommandHandler creates or updates a station. A duplicate code in
// the same hub is reported by the repository as a validation error.
type SaveStationCommandHandler struct {
	uowFactory StationUoWFactory
}

func NewSaveStationCommandHandler(uowFactory StationUoWFactory) SaveStationCommandHandler {
	return SaveStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the saved station.
func (h *SaveStationCommandHandler) Handle(ctx context.Context, cmd SaveStationCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StationRepository()

	var s *station.Station
	var err error
	if cmd.StationID() == nil {
		if s, err = station.NewStation(kernel.NewUUID(), cmd.HubID(), cmd.Attributes()); err != nil {
			return kernel.UUID{}, err
		}
		err = repo.Add(ctx, s)
	} else {
		if s, err = repo.Get(ctx, cmd.HubID(), *cmd.StationID()); err != nil {
			return kernel.UUID{}, err
		}
		if err = s.Update(cmd.Attributes()); err != nil {
			return kernel.UUID{}, err
		}
		err = repo.Update(ctx, s)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return s.ID(), nil
}

// DeleteStationCommandHandler deletes a station. Items that were routed to it
// lose their station reference and stay on their orders.
type DeleteStationCommandHandler struct {
	uowFactory StationUoWFactory
}

func NewDeleteStationCommandHandler(uowFactory StationUoWFactory) DeleteStationCommandHandler {
	return DeleteStationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteStationCommandHandler) Handle(ctx context.Context, cmd DeleteStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StationRepository().Delete(ctx, cmd.HubID(), cmd.StationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
