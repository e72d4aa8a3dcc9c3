package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned for an Item that bypassed NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single ticket line. It belongs to exactly one Order and is only
// changed through that Order.
type Item struct {
	id          kernel.UUID
	productID   string
	productName string
	quantity    int
	modifiers   []string
	notes       string
	stationID   *kernel.UUID
	status      ItemStatus
	createdAt   time.Time
	startedAt   *time.Time
	readyAt     *time.Time

	isConstructed bool
}

// ItemLine carries the point-of-sale fields of a new line.
type ItemLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	Modifiers   []string
	Notes       string
	StationID   *kernel.UUID
}

// NewItem creates a pending item. Quantity must be positive and the product
// name must not be blank.
func NewItem(id kernel.UUID, line ItemLine, now time.Time) (*Item, error) {
	item := &Item{
		status:        ItemPending,
		productID:     line.ProductID,
		notes:         line.Notes,
		modifiers:     append([]string(nil), line.Modifiers...),
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(line.ProductName),
		item.setQuantity(line.Quantity),
		item.setStation(line.StationID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItemParams holds the persisted state of an item.
type RestoreItemParams struct {
	ID          kernel.UUID
	ProductID   string
	ProductName string
	Quantity    int
	Modifiers   []string
	Notes       string
	StationID   *kernel.UUID
	Status      ItemStatus
	CreatedAt   time.Time
	StartedAt   *time.Time
	ReadyAt     *time.Time
}

// RestoreItem rebuilds an item from storage. It runs the same validation as
// NewItem plus a status check.
func RestoreItem(p RestoreItemParams) (*Item, error) {
	item, err := NewItem(p.ID, ItemLine{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Modifiers:   p.Modifiers,
		Notes:       p.Notes,
		StationID:   p.StationID,
	}, p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	item.status = p.Status
	item.startedAt = p.StartedAt
	item.readyAt = p.ReadyAt
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductID() string {
	return i.productID
}

func (i *Item) ProductName() string {
	return i.productName
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) StationID() *kernel.UUID {
	return i.stationID
}

func (i *Item) Status() ItemStatus {
	return i.status
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) StartedAt() *time.Time {
	return i.startedAt
}

func (i *Item) ReadyAt() *time.Time {
	return i.readyAt
}

func (i *Item) IsReady() bool {
	return i.status == ItemReady
}

func (i *Item) Modifiers() []string {
	return append([]string(nil), i.modifiers...)
}

// startPreparing reports whether the status changed.
func (i *Item) startPreparing(now time.Time) (bool, error) {
	next, err := i.status.StartPreparing()
	if err != nil {
		return false, err
	}
	if next == i.status {
		return false, nil
	}

	i.status = next
	if i.startedAt == nil {
		i.startedAt = &now
	}
	return true, nil
}

// markReady reports whether the status changed.
func (i *Item) markReady(now time.Time) (bool, error) {
	next, err := i.status.MarkReady()
	if err != nil {
		return false, err
	}
	if next == i.status {
		return false, nil
	}

	i.status = next
	if i.readyAt == nil {
		i.readyAt = &now
	}
	return true, nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setStation(stationID *kernel.UUID) error {
	if stationID == nil {
		return nil
	}
	if err := stationID.Validate(); err != nil {
		return err
	}
	id := *stationID
	i.stationID = &id
	return nil
}
