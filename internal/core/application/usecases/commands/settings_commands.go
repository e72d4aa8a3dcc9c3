package commands

import (
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/settings"
	"kds/internal/pkg/guard"
)

var ErrSettingsCommandIsNotConstructed = errors.New("settings command must be created via its constructor")

// SaveSettingsCommand applies a partial update. Fields the caller did not
// send are nil in the patch and stay unchanged.
type SaveSettingsCommand struct {
	hubID kernel.UUID
	patch settings.Patch

	guard guard.ConstructorGuard
}

func NewSaveSettingsCommand(hubID kernel.UUID, patch settings.Patch) (SaveSettingsCommand, error) {
	if err := validateHubID(hubID); err != nil {
		return SaveSettingsCommand{}, err
	}
	return SaveSettingsCommand{hubID: hubID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSettingsCommandIsNotConstructed)
}

func (c SaveSettingsCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c SaveSettingsCommand) Patch() settings.Patch {
	return c.patch
}

// ToggleSettingCommand sets one boolean setting by name. Unknown names are
// rejected when the command is built.
type ToggleSettingCommand struct {
	hubID kernel.UUID
	field settings.BoolField
	value bool

	guard guard.ConstructorGuard
}

func NewToggleSettingCommand(hubID kernel.UUID, name string, value bool) (ToggleSettingCommand, error) {
	field, fieldErr := settings.ParseBoolField(name)
	if err := errors.Join(validateHubID(hubID), fieldErr); err != nil {
		return ToggleSettingCommand{}, err
	}
	return ToggleSettingCommand{hubID: hubID, field: field, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleSettingCommand) Validate() error {
	return c.guard.Validate(ErrSettingsCommandIsNotConstructed)
}

func (c ToggleSettingCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c ToggleSettingCommand) Field() settings.BoolField {
	return c.field
}

func (c ToggleSettingCommand) Value() bool {
	return c.value
}

// SetNumberSettingCommand sets one numeric setting by name from its raw text.
// Unknown names and unparsable values are both validation errors.
type SetNumberSettingCommand struct {
	hubID kernel.UUID
	field settings.NumberField
	value int

	guard guard.ConstructorGuard
}

func NewSetNumberSettingCommand(hubID kernel.UUID, name, rawValue string) (SetNumberSettingCommand, error) {
	field, err := settings.ParseNumberField(name)
	if err = errors.Join(validateHubID(hubID), err); err != nil {
		return SetNumberSettingCommand{}, err
	}

	value, err := settings.ParseNumberValue(field, rawValue)
	if err != nil {
		return SetNumberSettingCommand{}, err
	}

	return SetNumberSettingCommand{hubID: hubID, field: field, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c SetNumberSettingCommand) Validate() error {
	return c.guard.Validate(ErrSettingsCommandIsNotConstructed)
}

func (c SetNumberSettingCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c SetNumberSettingCommand) Field() settings.NumberField {
	return c.field
}

func (c SetNumberSettingCommand) Value() int {
	return c.value
}

// ResetSettingsCommand restores the defaults of a hub.
type ResetSettingsCommand struct {
	hubID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResetSettingsCommand(hubID kernel.UUID) (ResetSettingsCommand, error) {
	if err := validateHubID(hubID); err != nil {
		return ResetSettingsCommand{}, err
	}
	return ResetSettingsCommand{hubID: hubID, guard: guard.NewConstructorGuard()}, nil
}

func (c ResetSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSettingsCommandIsNotConstructed)
}

func (c ResetSettingsCommand) HubID() kernel.UUID {
	return c.hubID
}
