package commands

import (
	"context"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/settings"
)

// SettingsCommandHandler handles every settings mutation. Each call loads (or
// creates) the hub's settings, changes them and saves them in one transaction;
// concurrent writers follow last-writer-wins.
type SettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewSettingsCommandHandler(uowFactory SettingsUoWFactory) SettingsCommandHandler {
	return SettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Save applies a bulk partial update.
func (h *SettingsCommandHandler) Save(ctx context.Context, cmd SaveSettingsCommand) (settings.Values, error) {
	if err := cmd.Validate(); err != nil {
		return settings.Values{}, err
	}
	return h.mutate(ctx, cmd.HubID(), func(s *settings.Settings) error {
		return s.Apply(cmd.Patch())
	})
}

// Toggle sets one boolean.
func (h *SettingsCommandHandler) Toggle(ctx context.Context, cmd ToggleSettingCommand) (settings.Values, error) {
	if err := cmd.Validate(); err != nil {
		return settings.Values{}, err
	}
	return h.mutate(ctx, cmd.HubID(), func(s *settings.Settings) error {
		return s.Toggle(cmd.Field(), cmd.Value())
	})
}

// SetNumber sets one number after its range check.
func (h *SettingsCommandHandler) SetNumber(ctx context.Context, cmd SetNumberSettingCommand) (settings.Values, error) {
	if err := cmd.Validate(); err != nil {
		return settings.Values{}, err
	}
	return h.mutate(ctx, cmd.HubID(), func(s *settings.Settings) error {
		return s.SetNumber(cmd.Field(), cmd.Value())
	})
}

// Reset restores defaults.
func (h *SettingsCommandHandler) Reset(ctx context.Context, cmd ResetSettingsCommand) (settings.Values, error) {
	if err := cmd.Validate(); err != nil {
		return settings.Values{}, err
	}
	return h.mutate(ctx, cmd.HubID(), func(s *settings.Settings) error {
		s.Reset()
		return nil
	})
}

func (h *SettingsCommandHandler) mutate(
	ctx context.Context,
	hubID kernel.UUID,
	change func(*settings.Settings) error,
) (settings.Values, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return settings.Values{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SettingsRepository()
	current, err := repo.GetOrCreate(ctx, hubID)
	if err != nil {
		return settings.Values{}, err
	}

	if err = change(current); err != nil {
		return settings.Values{}, err
	}

	if err = repo.Save(ctx, current); err != nil {
		return settings.Values{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return settings.Values{}, err
	}

	return current.Values(), nil
}
