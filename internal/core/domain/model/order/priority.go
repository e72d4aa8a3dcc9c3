package order

import (
	"fmt"

	"kds/internal/pkg/errs"
)

// Priority orders the kitchen line; a higher value is cooked first.
// The zero value is Normal.
type Priority int

const (
	Normal Priority = iota
	Rush
	VIP
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Normal: "normal",
		Rush:   "rush",
		VIP:    "vip",
	}
}

// PriorityFromString parses "normal", "rush" or "vip".
func PriorityFromString(s string) (Priority, error) {
	for p, name := range getPriorityStrings() {
		if name == s {
			return p, nil
		}
	}
	return Normal, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not one of normal, rush, vip", s))
}

func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
