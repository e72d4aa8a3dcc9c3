package order

import (
	"fmt"

	"kds/internal/pkg/errs"
)

// ItemStatus is the preparation state of a single line. Items only move forward.
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemPending
	ItemPreparing
	ItemReady
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:   "unknown",
		ItemPending:   "pending",
		ItemPreparing: "preparing",
		ItemReady:     "ready",
	}
}

func (s ItemStatus) Validate() error {
	if s <= ItemUnknown || s > ItemReady {
		return errs.NewValueIsInvalidErrorWithCause("item status", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StartPreparing moves a pending item to preparing. A preparing item stays
// where it is; a ready item cannot go back.
func (s ItemStatus) StartPreparing() (ItemStatus, error) {
	switch s {
	case ItemPending, ItemPreparing:
		return ItemPreparing, nil
	default:
		return ItemUnknown, errs.NewTransitionIsInvalidError("item", "start preparing", s.String())
	}
}

// MarkReady moves a pending or preparing item to ready; ready stays ready.
func (s ItemStatus) MarkReady() (ItemStatus, error) {
	if err := s.Validate(); err != nil {
		return ItemUnknown, errs.NewTransitionIsInvalidError("item", "mark ready", s.String())
	}
	return ItemReady, nil
}
