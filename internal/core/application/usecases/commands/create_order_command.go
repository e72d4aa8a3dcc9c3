package commands

import (
	"errors"
	"strings"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/pkg/errs"
	"kds/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredError("order lines")
)

// OrderLine is one sale line as sent by the point of sale. StationCode is
// optional and routed through the hub's stations.
type OrderLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	Modifiers   []string
	Notes       string
	StationCode string
}

// CreateOrderCommand ingests a sale into the kitchen.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(hubID, "sale-981", "A-17", "12", "", order.Rush,
//	    []OrderLine{{ProductName: "Burger", Quantity: 2, StationCode: "GRL"}}, "system")
//	if err != nil {
//	    return fmt.Errorf("invalid sale: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	hubID       kernel.UUID
	saleID      string
	orderNumber string
	tableNumber string
	notes       string
	priority    order.Priority
	lines       []OrderLine
	actor       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the hub, order number, priority and that
// there is at least one line. Line contents are validated by the domain.
func NewCreateOrderCommand(
	hubID kernel.UUID,
	saleID, orderNumber, tableNumber, notes string,
	priority order.Priority,
	lines []OrderLine,
	actor string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		saleID:      strings.TrimSpace(saleID),
		tableNumber: tableNumber,
		notes:       notes,
		actor:       normalizeActor(actor),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setHubID(hubID),
		command.setOrderNumber(orderNumber),
		command.setPriority(priority),
		command.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) HubID() kernel.UUID {
	return c.hubID
}

func (c CreateOrderCommand) SaleID() string {
	return c.saleID
}

func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c CreateOrderCommand) TableNumber() string {
	return c.tableNumber
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// Lines returns a copy of the sale lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c CreateOrderCommand) Actor() string {
	return c.actor
}

func (c *CreateOrderCommand) setHubID(hubID kernel.UUID) error {
	if err := validateHubID(hubID); err != nil {
		return err
	}
	c.hubID = hubID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
