package commands

import (
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/station"
	"kds/internal/pkg/guard"
)

var (
	ErrSaveStationCommandIsNotConstructed = errors.New(
		"SaveStationCommand must be created via NewCreateStationCommand or NewUpdateStationCommand",
	)
	ErrDeleteStationCommandIsNotConstructed = errors.New(
		"DeleteStationCommand must be created via NewDeleteStationCommand constructor",
	)
)

// SaveStationCommand creates a station (zero station id) or replaces the
// attributes of an existing one. Attribute validation happens in the domain.
type SaveStationCommand struct { //nolint:recvcheck //using for validation
	hubID     kernel.UUID
	stationID *kernel.UUID
	attrs     station.Attributes

	guard guard.ConstructorGuard
}

func NewCreateStationCommand(hubID kernel.UUID, attrs station.Attributes) (SaveStationCommand, error) {
	if err := validateHubID(hubID); err != nil {
		return SaveStationCommand{}, err
	}
	return SaveStationCommand{hubID: hubID, attrs: attrs, guard: guard.NewConstructorGuard()}, nil
}

func NewUpdateStationCommand(hubID, stationID kernel.UUID, attrs station.Attributes) (SaveStationCommand, error) {
	if err := errors.Join(validateHubID(hubID), stationID.Validate()); err != nil {
		return SaveStationCommand{}, err
	}
	return SaveStationCommand{hubID: hubID, stationID: &stationID, attrs: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveStationCommand) Validate() error {
	return c.guard.Validate(ErrSaveStationCommandIsNotConstructed)
}

func (c SaveStationCommand) HubID() kernel.UUID {
	return c.hubID
}

// StationID is nil for a create.
func (c SaveStationCommand) StationID() *kernel.UUID {
	return c.stationID
}

func (c SaveStationCommand) Attributes() station.Attributes {
	return c.attrs
}

// DeleteStationCommand removes a station from a hub.
type DeleteStationCommand struct {
	hubID     kernel.UUID
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteStationCommand(hubID, stationID kernel.UUID) (DeleteStationCommand, error) {
	if err := errors.Join(validateHubID(hubID), stationID.Validate()); err != nil {
		return DeleteStationCommand{}, err
	}
	return DeleteStationCommand{hubID: hubID, stationID: stationID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteStationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStationCommandIsNotConstructed)
}

func (c DeleteStationCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c DeleteStationCommand) StationID() kernel.UUID {
	return c.stationID
}
