package order

import (
	"fmt"

	"kds/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> preparing ──> ready ──> served ──> paid
//	   │            │           ▲ │        │
//	   │            │           │ └────────┤ (serve / recall)
//	   └────────────┴───────────┴──> cancelled
//
// Cancel is allowed from pending, preparing and ready. Served, paid and
// cancelled are terminal for the kitchen; only recall leaves served.
type Status int

const (
	// Unknown (0) catches uninitialized values read from storage.
	Unknown Status = iota
	Pending
	Preparing
	Ready
	Served
	Cancelled
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Served:    "served",
		Cancelled: "cancelled",
		Paid:      "paid",
	}
}

// ActiveStatuses are the statuses shown on the kitchen line.
func ActiveStatuses() []Status {
	return []Status{Pending, Preparing}
}

// HistoryStatuses are the statuses shown in order history.
func HistoryStatuses() []Status {
	return []Status{Served, Paid, Cancelled}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Preparing, Ready, Served, Cancelled, Paid}
}

// StatusFromString parses the lower-case status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Paid {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the kitchen is done with the order.
func (s Status) IsTerminal() bool {
	return s == Served || s == Paid || s == Cancelled
}

// Accept moves a pending order to preparing.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, s.invalid("accept")
	}
	return Preparing, nil
}

// MarkReady moves a pending or preparing order to ready.
func (s Status) MarkReady() (Status, error) {
	if s != Pending && s != Preparing {
		return Unknown, s.invalid("mark ready")
	}
	return Ready, nil
}

// Serve moves a ready order to served.
func (s Status) Serve() (Status, error) {
	if s != Ready {
		return Unknown, s.invalid("serve")
	}
	return Served, nil
}

// Recall moves a served order back to ready.
func (s Status) Recall() (Status, error) {
	if s != Served {
		return Unknown, s.invalid("recall")
	}
	return Ready, nil
}

// Pay closes a served order.
func (s Status) Pay() (Status, error) {
	if s != Served {
		return Unknown, s.invalid("pay")
	}
	return Paid, nil
}

// Cancel is allowed from every state except served, paid and cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil || s.IsTerminal() {
		return Unknown, s.invalid("cancel")
	}
	return Cancelled, nil
}

// Bump advances one step along pending -> preparing -> ready -> served.
func (s Status) Bump() (Status, error) {
	switch s {
	case Pending:
		return Preparing, nil
	case Preparing:
		return Ready, nil
	case Ready:
		return Served, nil
	default:
		return Unknown, s.invalid("bump")
	}
}

func (s Status) invalid(action string) error {
	return errs.NewTransitionIsInvalidError("order", action, s.String())
}
