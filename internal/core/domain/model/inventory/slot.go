package inventory

import (
	"errors"
	"fmt"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	// ErrSlotIsNotConstructed is returned when a Slot was not created
	// through the NewSlot constructor.
	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot constructor")

	// ErrSerialIsRequired is returned when a slot is created without an
	// equipment serial number.
	ErrSerialIsRequired = errs.NewValueIsRequiredError("equipmentSerial")
)

// Slot records that one equipment unit is present and available at a yard,
// parked at a numbered position within the site for its kind.
//
// Invariants:
//   - one slot per equipment unit (enforced by storage uniqueness on the
//     serial number)
//   - position is a positive integer; the upper bound (site capacity) is
//     enforced by the relocation service, which owns the capacity lookup
type Slot struct {
	// id uniquely identifies the slot
	id kernel.UUID

	// yardID is the yard the unit is present at
	yardID kernel.UUID

	// kind is the unit's equipment category
	kind equipment.Kind

	// equipmentSerial identifies the unit occupying the slot
	equipmentSerial string

	// position is the unit's numbered position within the site
	position int

	guard guard.ConstructorGuard
}

// NewSlot creates a slot placing one equipment unit at a yard position.
func NewSlot(
	id kernel.UUID,
	yardID kernel.UUID,
	kind equipment.Kind,
	equipmentSerial string,
	position int,
) (*Slot, error) {
	s := &Slot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setYardID(yardID),
		s.setKind(kind),
		s.setEquipmentSerial(equipmentSerial),
		s.setPosition(position),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the slot was created through the constructor.
func (s *Slot) Validate() error {
	if s == nil {
		return ErrSlotIsNotConstructed
	}
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// IsEqual compares two slots by identity.
func (s *Slot) IsEqual(other *Slot) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the slot's unique identifier.
func (s *Slot) ID() kernel.UUID {
	return s.id
}

// YardID returns the yard the unit is present at.
func (s *Slot) YardID() kernel.UUID {
	return s.yardID
}

// Kind returns the unit's equipment category.
func (s *Slot) Kind() equipment.Kind {
	return s.kind
}

// EquipmentSerial returns the serial number of the unit occupying the slot.
func (s *Slot) EquipmentSerial() string {
	return s.equipmentSerial
}

// Position returns the unit's numbered position within the site.
func (s *Slot) Position() int {
	return s.position
}

func (s *Slot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Slot) setYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return err
	}
	s.yardID = yardID
	return nil
}

func (s *Slot) setKind(kind equipment.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}

func (s *Slot) setEquipmentSerial(serial string) error {
	if serial == "" {
		return ErrSerialIsRequired
	}
	s.equipmentSerial = serial
	return nil
}

func (s *Slot) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"position",
			fmt.Errorf("%d is not a positive position", position),
		)
	}
	s.position = position
	return nil
}
