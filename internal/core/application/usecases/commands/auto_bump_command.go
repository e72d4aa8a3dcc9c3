package commands

import (
	"errors"
	"time"

	"kds/internal/pkg/guard"
)

var ErrAutoBumpCommandIsNotConstructed = errors.New(
	"AutoBumpReadyOrdersCommand must be created via NewAutoBumpReadyOrdersCommand constructor",
)

// AutoBumpReadyOrdersCommand serves, for every hub with auto-bump enabled, the
// ready orders that have waited longer than the hub's auto-bump delay.
type AutoBumpReadyOrdersCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewAutoBumpReadyOrdersCommand fixes the instant the delays are measured from.
func NewAutoBumpReadyOrdersCommand(now time.Time) AutoBumpReadyOrdersCommand {
	return AutoBumpReadyOrdersCommand{now: now.UTC(), guard: guard.NewConstructorGuard()}
}

func (c AutoBumpReadyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAutoBumpCommandIsNotConstructed)
}

func (c AutoBumpReadyOrdersCommand) Now() time.Time {
	return c.now
}
