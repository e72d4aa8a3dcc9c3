package commands

import (
	"errors"
	"fmt"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"
)

var ErrItemTransitionCommandIsNotConstructed = errors.New(
	"ItemTransitionCommand must be created via NewItemTransitionCommand constructor",
)

// ItemAction is a preparation step on a single line.
type ItemAction string

const (
	ItemActionPreparing ItemAction = "preparing"
	ItemActionReady     ItemAction = "ready"
)

// ItemTransitionCommand starts or finishes one order item.
type ItemTransitionCommand struct { //nolint:recvcheck //using for validation
	hubID  kernel.UUID
	itemID kernel.UUID
	action ItemAction
	actor  string

	guard guard.ConstructorGuard
}

func NewItemTransitionCommand(hubID, itemID kernel.UUID, action ItemAction, actor string) (ItemTransitionCommand, error) {
	command := ItemTransitionCommand{
		actor: normalizeActor(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHubID(hubID),
		command.setItemID(itemID),
		command.setAction(action),
	); err != nil {
		return ItemTransitionCommand{}, err
	}

	return command, nil
}

func (c ItemTransitionCommand) Validate() error {
	return c.guard.Validate(ErrItemTransitionCommandIsNotConstructed)
}

func (c ItemTransitionCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c ItemTransitionCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c ItemTransitionCommand) Action() ItemAction {
	return c.action
}

func (c ItemTransitionCommand) Actor() string {
	return c.actor
}

func (c *ItemTransitionCommand) setHubID(hubID kernel.UUID) error {
	if err := validateHubID(hubID); err != nil {
		return err
	}
	c.hubID = hubID
	return nil
}

func (c *ItemTransitionCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *ItemTransitionCommand) setAction(action ItemAction) error {
	if action != ItemActionPreparing && action != ItemActionReady {
		return errs.NewValueIsInvalidErrorWithCause("item action", fmt.Errorf("%q is not a known action", string(action)))
	}
	c.action = action
	return nil
}
