package commands

import (
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/guard"
)

var ErrSetOrderPriorityCommandIsNotConstructed = errors.New(
	"SetOrderPriorityCommand must be created via NewSetOrderPriorityCommand constructor",
)

// SetOrderPriorityCommand moves an order between normal, rush and vip.
type SetOrderPriorityCommand struct { //nolint:recvcheck //using for validation
	hubID    kernel.UUID
	orderID  kernel.UUID
	priority order.Priority
	actor    string

	guard guard.ConstructorGuard
}

func NewSetOrderPriorityCommand(
	hubID, orderID kernel.UUID,
	priority order.Priority,
	actor string,
) (SetOrderPriorityCommand, error) {
	command := SetOrderPriorityCommand{
		actor: normalizeActor(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHubID(hubID),
		command.setOrderID(orderID),
		command.setPriority(priority),
	); err != nil {
		return SetOrderPriorityCommand{}, err
	}

	return command, nil
}

func (c SetOrderPriorityCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPriorityCommandIsNotConstructed)
}

func (c SetOrderPriorityCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c SetOrderPriorityCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderPriorityCommand) Priority() order.Priority {
	return c.priority
}

func (c SetOrderPriorityCommand) Actor() string {
	return c.actor
}

func (c *SetOrderPriorityCommand) setHubID(hubID kernel.UUID) error {
	if err := validateHubID(hubID); err != nil {
		return err
	}
	c.hubID = hubID
	return nil
}

func (c *SetOrderPriorityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SetOrderPriorityCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
