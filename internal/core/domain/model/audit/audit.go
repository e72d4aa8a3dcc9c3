// Package audit describes the append-only trail of kitchen actions. Every
// successful order, item or priority change writes exactly one Entry in the
// same transaction as the change.
package audit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
)

// SystemActor is recorded for changes made by ingestion and scheduled jobs.
const SystemActor = "system"

// Action tags an entry.
type Action string

const (
	Received        Action = "received"
	Accepted        Action = "accepted"
	Bumped          Action = "bumped"
	Completed       Action = "completed"
	Served          Action = "served"
	Recalled        Action = "recalled"
	Cancelled       Action = "cancelled"
	Paid            Action = "paid"
	PriorityChanged Action = "priority_changed"
	ItemStarted     Action = "item_started"
	ItemReady       Action = "item_ready"
)

func getActions() map[Action]struct{} {
	return map[Action]struct{}{
		Received: {}, Accepted: {}, Bumped: {}, Completed: {}, Served: {}, Recalled: {},
		Cancelled: {}, Paid: {}, PriorityChanged: {}, ItemStarted: {}, ItemReady: {},
	}
}

func (a Action) Validate() error {
	if _, ok := getActions()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("audit action", fmt.Errorf("%q is not a known action", string(a)))
	}
	return nil
}

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one immutable audit record.
type Entry struct {
	id        kernel.UUID
	hubID     kernel.UUID
	orderID   kernel.UUID
	itemID    *kernel.UUID
	stationID *kernel.UUID
	action    Action
	actor     string
	note      string
	createdAt time.Time

	isConstructed bool
}

// Subject points an entry at the order, and optionally the item and station,
// it describes.
type Subject struct {
	HubID     kernel.UUID
	OrderID   kernel.UUID
	ItemID    *kernel.UUID
	StationID *kernel.UUID
}

// NewEntry creates an entry. A blank actor is recorded as SystemActor.
func NewEntry(subject Subject, action Action, actor, note string, now time.Time) (*Entry, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = SystemActor
	}

	var hubErr error
	if err := subject.HubID.Validate(); err != nil {
		hubErr = errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}

	if err := errors.Join(hubErr, subject.OrderID.Validate(), action.Validate()); err != nil {
		return nil, err
	}

	return &Entry{
		id:            kernel.NewUUID(),
		hubID:         subject.HubID,
		orderID:       subject.OrderID,
		itemID:        subject.ItemID,
		stationID:     subject.StationID,
		action:        action,
		actor:         actor,
		note:          note,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) HubID() kernel.UUID {
	return e.hubID
}

func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e *Entry) ItemID() *kernel.UUID {
	return e.itemID
}

func (e *Entry) StationID() *kernel.UUID {
	return e.stationID
}

func (e *Entry) Action() Action {
	return e.action
}

func (e *Entry) Actor() string {
	return e.actor
}

func (e *Entry) Note() string {
	return e.note
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
