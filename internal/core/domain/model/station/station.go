// Package station models the kitchen stations (grill, fry, cold, bar...) that
// order items are routed to.
package station

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"kds/internal/core/domain/model/kernel"
	"kds/internal/pkg/errs"
)

// DefaultColor is used when a station is saved without a color.
const DefaultColor = "#6b7280"

const (
	maxNameLength = 100
	maxCodeLength = 20
)

var (
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")

	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Station is a hub-scoped preparation area. Code is unique within a hub and
// stored upper-cased.
type Station struct {
	id        kernel.UUID
	hubID     kernel.UUID
	name      string
	code      string
	color     string
	sortOrder int
	isActive  bool

	isConstructed bool
}

// Attributes are the editable fields of a station.
type Attributes struct {
	Name      string
	Code      string
	Color     string
	SortOrder int
	IsActive  bool
}

func NewStation(id, hubID kernel.UUID, attrs Attributes) (*Station, error) {
	s := &Station{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setHubID(hubID),
		s.apply(attrs),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStation rebuilds a station read from storage.
func RestoreStation(id, hubID kernel.UUID, attrs Attributes) (*Station, error) {
	return NewStation(id, hubID, attrs)
}

// Update replaces every editable field; nothing changes when validation fails.
func (s *Station) Update(attrs Attributes) error {
	next := *s
	if err := next.apply(attrs); err != nil {
		return err
	}
	*s = next
	return nil
}

func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

func (s *Station) ID() kernel.UUID {
	return s.id
}

func (s *Station) HubID() kernel.UUID {
	return s.hubID
}

func (s *Station) Name() string {
	return s.name
}

func (s *Station) Code() string {
	return s.code
}

func (s *Station) Color() string {
	return s.color
}

func (s *Station) SortOrder() int {
	return s.sortOrder
}

func (s *Station) IsActive() bool {
	return s.isActive
}

// NormalizeCode returns the stored form of a station code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Station) apply(attrs Attributes) error {
	if err := errors.Join(
		s.setName(attrs.Name),
		s.setCode(attrs.Code),
		s.setColor(attrs.Color),
	); err != nil {
		return err
	}
	s.sortOrder = attrs.SortOrder
	s.isActive = attrs.IsActive
	return nil
}

func (s *Station) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Station) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("hub id", err)
	}
	s.hubID = hubID
	return nil
}

func (s *Station) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("station name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("station name length", len(name), 1, maxNameLength)
	}
	s.name = name
	return nil
}

func (s *Station) setCode(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("station code")
	}
	if len(code) > maxCodeLength {
		return errs.NewValueIsOutOfRangeError("station code length", len(code), 1, maxCodeLength)
	}
	s.code = code
	return nil
}

func (s *Station) setColor(color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		s.color = DefaultColor
		return nil
	}
	if !colorPattern.MatchString(color) {
		return errs.NewValueIsInvalidErrorWithCause("station color", fmt.Errorf("%q is not a #RRGGBB color", color))
	}
	s.color = strings.ToLower(color)
	return nil
}
