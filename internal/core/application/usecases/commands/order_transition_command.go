package commands

import (
	"errors"
	"fmt"

	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"
)

var ErrOrderTransitionCommandIsNotConstructed = errors.New(
	"OrderTransitionCommand must be created via NewOrderTransitionCommand constructor",
)

// OrderAction is a lifecycle action a user can trigger on an order.
type OrderAction string

const (
	ActionAccept OrderAction = "accept"
	ActionReady  OrderAction = "ready"
	ActionServe  OrderAction = "serve"
	ActionRecall OrderAction = "recall"
	ActionPay    OrderAction = "pay"
	ActionCancel OrderAction = "cancel"
	ActionBump   OrderAction = "bump"
)

func getOrderActionAudit() map[OrderAction]audit.Action {
	return map[OrderAction]audit.Action{
		ActionAccept: audit.Accepted,
		ActionReady:  audit.Completed,
		ActionServe:  audit.Served,
		ActionRecall: audit.Recalled,
		ActionPay:    audit.Paid,
		ActionCancel: audit.Cancelled,
		ActionBump:   audit.Bumped,
	}
}

// ParseOrderAction resolves an action name used in routes and messages.
func ParseOrderAction(name string) (OrderAction, error) {
	action := OrderAction(name)
	if _, ok := getOrderActionAudit()[action]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("order action", fmt.Errorf("%q is not a known action", name))
	}
	return action, nil
}

// AuditAction is the audit tag written when the action succeeds.
func (a OrderAction) AuditAction() audit.Action {
	return getOrderActionAudit()[a]
}

// OrderTransitionCommand applies one lifecycle action to an order. Reason is
// only kept for cancel.
//
//	cmd, err := NewOrderTransitionCommand(hubID, orderID, ActionBump, actorID, "")
//	status, err := handler.Handle(ctx, cmd)
type OrderTransitionCommand struct { //nolint:recvcheck //using for validation
	hubID   kernel.UUID
	orderID kernel.UUID
	action  OrderAction
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

func NewOrderTransitionCommand(
	hubID, orderID kernel.UUID,
	action OrderAction,
	actor, reason string,
) (OrderTransitionCommand, error) {
	command := OrderTransitionCommand{
		actor: normalizeActor(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHubID(hubID),
		command.setOrderID(orderID),
		command.setAction(action),
	); err != nil {
		return OrderTransitionCommand{}, err
	}

	if action == ActionCancel {
		command.reason = reason
	}

	return command, nil
}

func (c OrderTransitionCommand) Validate() error {
	return c.guard.Validate(ErrOrderTransitionCommandIsNotConstructed)
}

func (c OrderTransitionCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c OrderTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c OrderTransitionCommand) Action() OrderAction {
	return c.action
}

func (c OrderTransitionCommand) Actor() string {
	return c.actor
}

func (c OrderTransitionCommand) Reason() string {
	return c.reason
}

func (c *OrderTransitionCommand) setHubID(hubID kernel.UUID) error {
	if err := validateHubID(hubID); err != nil {
		return err
	}
	c.hubID = hubID
	return nil
}

func (c *OrderTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *OrderTransitionCommand) setAction(action OrderAction) error {
	if _, err := ParseOrderAction(string(action)); err != nil {
		return err
	}
	c.action = action
	return nil
}
