package settings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"kds/internal/pkg/errs"
)

// BoolField names a boolean setting.
type BoolField string

const (
	AutoAcceptOrders   BoolField = "auto_accept_orders"
	ShowTimer          BoolField = "show_timer"
	SoundEnabled       BoolField = "sound_enabled"
	SoundOnNewOrder    BoolField = "sound_on_new_order"
	SoundOnRush        BoolField = "sound_on_rush"
	AutoBumpEnabled    BoolField = "auto_bump_enabled"
	ColorCodingEnabled BoolField = "color_coding_enabled"
)

// NumberField names an integer setting.
type NumberField string

const (
	WarningTimeMinutes   NumberField = "warning_time_minutes"
	CriticalTimeMinutes  NumberField = "critical_time_minutes"
	ItemsPerPage         NumberField = "items_per_page"
	AutoRefreshSeconds   NumberField = "auto_refresh_seconds"
	AutoBumpDelaySeconds NumberField = "auto_bump_delay_seconds"
)

type numberRange struct {
	min, max int
}

func getBoolFields() map[BoolField]struct{} {
	return map[BoolField]struct{}{
		AutoAcceptOrders:   {},
		ShowTimer:          {},
		SoundEnabled:       {},
		SoundOnNewOrder:    {},
		SoundOnRush:        {},
		AutoBumpEnabled:    {},
		ColorCodingEnabled: {},
	}
}

func getNumberRanges() map[NumberField]numberRange {
	return map[NumberField]numberRange{
		WarningTimeMinutes:   {min: 1, max: 240},
		CriticalTimeMinutes:  {min: 1, max: 480},
		ItemsPerPage:         {min: 1, max: 100},
		AutoRefreshSeconds:   {min: 1, max: 3600},
		AutoBumpDelaySeconds: {min: 0, max: 3600},
	}
}

// ParseBoolField resolves a boolean setting name.
func ParseBoolField(name string) (BoolField, error) {
	field := BoolField(strings.TrimSpace(name))
	if _, ok := getBoolFields()[field]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("setting name",
			fmt.Errorf("%q is not a boolean setting, expected one of %s", name, strings.Join(BoolFieldNames(), ", ")))
	}
	return field, nil
}

// ParseNumberField resolves a numeric setting name.
func ParseNumberField(name string) (NumberField, error) {
	field := NumberField(strings.TrimSpace(name))
	if _, ok := getNumberRanges()[field]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("setting name",
			fmt.Errorf("%q is not a numeric setting, expected one of %s", name, strings.Join(NumberFieldNames(), ", ")))
	}
	return field, nil
}

// ParseNumberValue converts a raw numeric setting value. Parse failures are
// validation errors, never silently dropped.
func ParseNumberValue(field NumberField, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(string(field), fmt.Errorf("%q is not an integer", raw))
	}
	return value, nil
}

// BoolFieldNames lists the boolean setting names in lexical order.
func BoolFieldNames() []string {
	names := make([]string, 0, len(getBoolFields()))
	for f := range getBoolFields() {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// NumberFieldNames lists the numeric setting names in lexical order.
func NumberFieldNames() []string {
	names := make([]string, 0, len(getNumberRanges()))
	for f := range getNumberRanges() {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

func (f NumberField) validate(value int) error {
	r, ok := getNumberRanges()[f]
	if !ok {
		return errs.NewValueIsInvalidError("setting name")
	}
	if value < r.min || value > r.max {
		return errs.NewValueIsOutOfRangeError(string(f), value, r.min, r.max)
	}
	return nil
}
