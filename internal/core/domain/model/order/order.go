package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that bypassed NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a kitchen ticket.
//
// Order follows these invariants:
//   - id and hub id are valid identifiers, order number is not blank
//   - status changes only through the Status state machine
//   - accepted_at, ready_at, served_at, paid_at and cancelled_at are set the
//     first time the state is entered and never overwritten
//   - items change only through the order, and an order in a terminal status
//     rejects item transitions
type Order struct {
	id          kernel.UUID
	hubID       kernel.UUID
	saleID      string
	orderNumber string
	tableNumber string
	notes       string
	status      Status
	priority    Priority

	createdAt    time.Time
	acceptedAt   *time.Time
	readyAt      *time.Time
	servedAt     *time.Time
	paidAt       *time.Time
	cancelledAt  *time.Time
	cancelReason string

	// statusChangedAt is stamped on every status change, including re-entry
	// into ready by a recall.
	statusChangedAt time.Time

	items  []*Item
	events []StatusChanged

	isConstructed bool
}

// Details carries the descriptive fields of a new ticket.
type Details struct {
	SaleID      string
	OrderNumber string
	TableNumber string
	Notes       string
	Priority    Priority
}

// NewOrder creates a pending order without items. Lines are attached with AddItem.
//
//	o, err := order.NewOrder(kernel.NewUUID(), hubID, order.Details{OrderNumber: "A-17"}, time.Now())
func NewOrder(id, hubID kernel.UUID, details Details, now time.Time) (*Order, error) {
	o := &Order{
		status:          Pending,
		saleID:          strings.TrimSpace(details.SaleID),
		tableNumber:     strings.TrimSpace(details.TableNumber),
		notes:           details.Notes,
		createdAt:       now,
		statusChangedAt: now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setHubID(hubID),
		o.setOrderNumber(details.OrderNumber),
		o.setPriority(details.Priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams holds the persisted state of an order.
type RestoreOrderParams struct {
	ID           kernel.UUID
	HubID        kernel.UUID
	Details      Details
	Status       Status
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	ReadyAt      *time.Time
	ServedAt     *time.Time
	PaidAt       *time.Time
	CancelledAt  *time.Time
	CancelReason string
	// StatusChangedAt defaults to CreatedAt when zero.
	StatusChangedAt time.Time
	Items           []*Item
}

// RestoreOrder rebuilds an order from storage without recording events.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(p.ID, p.HubID, p.Details, p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	o.status = p.Status
	o.acceptedAt = p.AcceptedAt
	o.readyAt = p.ReadyAt
	o.servedAt = p.ServedAt
	o.paidAt = p.PaidAt
	o.cancelledAt = p.CancelledAt
	o.cancelReason = p.CancelReason
	if !p.StatusChangedAt.IsZero() {
		o.statusChangedAt = p.StatusChangedAt
	}

	for _, item := range p.Items {
		if err := o.attach(item); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) HubID() kernel.UUID {
	return o.hubID
}

func (o *Order) SaleID() string {
	return o.saleID
}

func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) TableNumber() string {
	return o.tableNumber
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

func (o *Order) ServedAt() *time.Time {
	return o.servedAt
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

func (o *Order) CancelReason() string {
	return o.cancelReason
}

// StatusChangedAt is when the order entered its current status. For a
// recalled order it is the recall time, while ReadyAt keeps the first ready.
func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

// Items returns the lines in insertion order. The slice is a copy; the items
// are not.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// Item finds a line by id.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", itemID.String())
}

// AddItem attaches a new line. Lines can only be added while the kitchen is
// still working on the order.
func (o *Order) AddItem(item *Item) error {
	if o.status != Pending && o.status != Preparing {
		return errs.NewTransitionIsInvalidError("order", "add item", o.status.String())
	}
	return o.attach(item)
}

// AllItemsReady reports whether the order has items and every one is ready.
// An order without items is never considered ready by this rule.
func (o *Order) AllItemsReady() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if !item.IsReady() {
			return false
		}
	}
	return true
}

// Accept moves pending to preparing and stamps accepted_at.
func (o *Order) Accept(now time.Time) error {
	next, err := o.status.Accept()
	if err != nil {
		return err
	}
	stampOnce(&o.acceptedAt, now)
	o.changeStatus(next, now)
	return nil
}

// MarkReady moves pending or preparing to ready and stamps ready_at.
func (o *Order) MarkReady(now time.Time) error {
	next, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	stampOnce(&o.readyAt, now)
	o.changeStatus(next, now)
	return nil
}

// Serve moves ready to served and stamps served_at.
func (o *Order) Serve(now time.Time) error {
	next, err := o.status.Serve()
	if err != nil {
		return err
	}
	stampOnce(&o.servedAt, now)
	o.changeStatus(next, now)
	return nil
}

// Recall brings a served order back to ready. served_at is kept.
func (o *Order) Recall(now time.Time) error {
	next, err := o.status.Recall()
	if err != nil {
		return err
	}
	o.changeStatus(next, now)
	return nil
}

// Pay closes a served order and stamps paid_at.
func (o *Order) Pay(now time.Time) error {
	next, err := o.status.Pay()
	if err != nil {
		return err
	}
	stampOnce(&o.paidAt, now)
	o.changeStatus(next, now)
	return nil
}

// Cancel stops work on the order. A blank reason is allowed.
func (o *Order) Cancel(reason string, now time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	stampOnce(&o.cancelledAt, now)
	o.cancelReason = strings.TrimSpace(reason)
	o.changeStatus(next, now)
	return nil
}

// Bump applies the next step of the main line and returns the new status.
func (o *Order) Bump(now time.Time) (Status, error) {
	var err error
	switch o.status {
	case Pending:
		err = o.Accept(now)
	case Preparing:
		err = o.MarkReady(now)
	case Ready:
		err = o.Serve(now)
	default:
		_, err = o.status.Bump()
	}
	if err != nil {
		return Unknown, err
	}
	return o.status, nil
}

// SetPriority changes the priority of an order the kitchen has not finished.
func (o *Order) SetPriority(priority Priority) error {
	if o.status.IsTerminal() {
		return errs.NewTransitionIsInvalidError("order", "change priority of", o.status.String())
	}
	return o.setPriority(priority)
}

// MarkItemPreparing starts a line and reports whether its status changed.
// It never moves the order itself.
func (o *Order) MarkItemPreparing(itemID kernel.UUID, now time.Time) (bool, error) {
	item, err := o.itemForTransition(itemID, "start item of")
	if err != nil {
		return false, err
	}
	return item.startPreparing(now)
}

// ItemReadyOutcome describes what MarkItemReady changed.
type ItemReadyOutcome struct {
	ItemChanged      bool
	OrderBecameReady bool
}

// MarkItemReady finishes a line. When that leaves every line ready and the
// order is pending or preparing, the order is marked ready too. Marking a
// ready line again changes nothing.
func (o *Order) MarkItemReady(itemID kernel.UUID, now time.Time) (ItemReadyOutcome, error) {
	item, err := o.itemForTransition(itemID, "finish item of")
	if err != nil {
		return ItemReadyOutcome{}, err
	}

	changed, err := item.markReady(now)
	if err != nil {
		return ItemReadyOutcome{}, err
	}

	outcome := ItemReadyOutcome{ItemChanged: changed}
	if (o.status == Pending || o.status == Preparing) && o.AllItemsReady() {
		if err := o.MarkReady(now); err != nil {
			return ItemReadyOutcome{}, err
		}
		outcome.OrderBecameReady = true
	}

	return outcome, nil
}

func (o *Order) itemForTransition(itemID kernel.UUID, action string) (*Item, error) {
	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}
	if o.status.IsTerminal() {
		return nil, errs.NewTransitionIsInvalidError("order", action, o.status.String())
	}
	return item, nil
}

func (o *Order) changeStatus(next Status, now time.Time) {
	from := o.status
	o.status = next
	o.statusChangedAt = now
	o.recordStatusChange(from, next, now)
}

func (o *Order) attach(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.id.IsEqual(item.id) {
			return errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("item %s is already on the order", item.id))
		}
	}
	o.items = append(o.items, item)
	return nil
}

func stampOnce(field **time.Time, now time.Time) {
	if *field == nil {
		t := now
		*field = &t
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	o.hubID = hubID
	return nil
}

func (o *Order) setOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNumber = number
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
