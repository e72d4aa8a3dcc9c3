package settings

import (
	"errors"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
)

var ErrSettingsIsNotConstructed = errors.New("Settings must be created via NewSettings or RestoreSettings")

// Values is the plain set of setting values.
type Values struct {
	AutoAcceptOrders     bool
	ShowTimer            bool
	WarningTimeMinutes   int
	CriticalTimeMinutes  int
	ItemsPerPage         int
	AutoRefreshSeconds   int
	SoundEnabled         bool
	SoundOnNewOrder      bool
	SoundOnRush          bool
	AutoBumpEnabled      bool
	AutoBumpDelaySeconds int
	ColorCodingEnabled   bool
}

// Defaults returns the values of a freshly created hub.
func Defaults() Values {
	return Values{
		AutoAcceptOrders:     false,
		ShowTimer:            true,
		WarningTimeMinutes:   15,
		CriticalTimeMinutes:  30,
		ItemsPerPage:         12,
		AutoRefreshSeconds:   10,
		SoundEnabled:         true,
		SoundOnNewOrder:      true,
		SoundOnRush:          true,
		AutoBumpEnabled:      false,
		AutoBumpDelaySeconds: 5,
		ColorCodingEnabled:   true,
	}
}

// Settings is the per-hub configuration entity.
type Settings struct {
	hubID  kernel.UUID
	values Values

	isConstructed bool
}

// NewSettings creates the default settings of a hub.
func NewSettings(hubID kernel.UUID) (*Settings, error) {
	return RestoreSettings(hubID, Defaults())
}

// RestoreSettings rebuilds settings read from storage.
func RestoreSettings(hubID kernel.UUID, values Values) (*Settings, error) {
	if err := hubID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	if err := values.validate(); err != nil {
		return nil, err
	}
	return &Settings{hubID: hubID, values: values, isConstructed: true}, nil
}

func (s *Settings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingsIsNotConstructed
	}
	return nil
}

func (s *Settings) HubID() kernel.UUID {
	return s.hubID
}

func (s *Settings) Values() Values {
	return s.values
}

func (s *Settings) AutoAcceptOrders() bool {
	return s.values.AutoAcceptOrders
}

func (s *Settings) AutoBumpEnabled() bool {
	return s.values.AutoBumpEnabled
}

func (s *Settings) AutoBumpDelaySeconds() int {
	return s.values.AutoBumpDelaySeconds
}

func (s *Settings) WarningTimeMinutes() int {
	return s.values.WarningTimeMinutes
}

func (s *Settings) CriticalTimeMinutes() int {
	return s.values.CriticalTimeMinutes
}

// Bool returns the current value of a boolean field.
func (s *Settings) Bool(field BoolField) bool {
	if ref := s.values.boolRef(field); ref != nil {
		return *ref
	}
	return false
}

// Number returns the current value of a numeric field.
func (s *Settings) Number(field NumberField) int {
	if ref := s.values.numberRef(field); ref != nil {
		return *ref
	}
	return 0
}

// Toggle sets a boolean field.
func (s *Settings) Toggle(field BoolField, value bool) error {
	ref := s.values.boolRef(field)
	if ref == nil {
		return errs.NewValueIsInvalidError("setting name")
	}
	*ref = value
	return nil
}

// SetNumber sets a numeric field after a range check.
func (s *Settings) SetNumber(field NumberField, value int) error {
	if err := field.validate(value); err != nil {
		return err
	}
	*s.values.numberRef(field) = value
	return nil
}

// Apply writes every non-nil field of the patch. Nothing is written when any
// value is out of range.
func (s *Settings) Apply(p Patch) error {
	next := s.values
	p.applyTo(&next)
	if err := next.validate(); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Reset restores the defaults.
func (s *Settings) Reset() {
	s.values = Defaults()
}

func (v *Values) boolRef(field BoolField) *bool {
	switch field {
	case AutoAcceptOrders:
		return &v.AutoAcceptOrders
	case ShowTimer:
		return &v.ShowTimer
	case SoundEnabled:
		return &v.SoundEnabled
	case SoundOnNewOrder:
		return &v.SoundOnNewOrder
	case SoundOnRush:
		return &v.SoundOnRush
	case AutoBumpEnabled:
		return &v.AutoBumpEnabled
	case ColorCodingEnabled:
		return &v.ColorCodingEnabled
	default:
		return nil
	}
}

func (v *Values) numberRef(field NumberField) *int {
	switch field {
	case WarningTimeMinutes:
		return &v.WarningTimeMinutes
	case CriticalTimeMinutes:
		return &v.CriticalTimeMinutes
	case ItemsPerPage:
		return &v.ItemsPerPage
	case AutoRefreshSeconds:
		return &v.AutoRefreshSeconds
	case AutoBumpDelaySeconds:
		return &v.AutoBumpDelaySeconds
	default:
		return nil
	}
}

func (v Values) validate() error {
	errList := make([]error, 0)
	for field := range getNumberRanges() {
		if err := field.validate(*v.numberRef(field)); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
