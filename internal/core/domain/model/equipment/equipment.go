package equipment

import (
	"errors"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/guard"
)

// ErrEquipmentIsNotConstructed is returned when an Equipment instance was
// not created through NewEquipment or RestoreEquipment.
var ErrEquipmentIsNotConstructed = errors.New(
	"Equipment must be created via NewEquipment or RestoreEquipment constructor",
)

// Equipment is the master-data entity for one physical unit. The movement
// engine owns two of its fields as relocation side effects: the site the
// unit is assigned to and the active flag. Everything else (serial format,
// sizes, types, images) belongs to the external catalog and never passes
// through this model.
//
// Business rules:
//   - a unit belongs to exactly one site at a time
//   - departure deactivates the unit; arrival reassigns the site and
//     reactivates it
type Equipment struct {
	// serial is the unit's unique serial number, its identity in this model
	serial string

	// kind is the equipment category
	kind Kind

	// siteID is the site the unit is currently assigned to
	siteID kernel.UUID

	// isActive reports whether the unit is available at its site
	isActive bool

	guard guard.ConstructorGuard
}

// NewEquipment creates an active equipment unit assigned to the given site.
func NewEquipment(kind Kind, serial string, siteID kernel.UUID) (*Equipment, error) {
	return RestoreEquipment(kind, serial, siteID, true)
}

// RestoreEquipment reconstructs an equipment unit from persistent storage,
// preserving its site assignment and active flag.
func RestoreEquipment(kind Kind, serial string, siteID kernel.UUID, isActive bool) (*Equipment, error) {
	eq := &Equipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eq.setKind(kind),
		eq.setSerial(serial),
		eq.setSiteID(siteID),
	); err != nil {
		return nil, err
	}

	eq.isActive = isActive
	return eq, nil
}

// Validate ensures the entity was created through a constructor.
func (e *Equipment) Validate() error {
	if e == nil {
		return ErrEquipmentIsNotConstructed
	}
	return e.guard.Validate(ErrEquipmentIsNotConstructed)
}

// Serial returns the unit's serial number.
func (e *Equipment) Serial() string {
	return e.serial
}

// Kind returns the unit's equipment category.
func (e *Equipment) Kind() Kind {
	return e.kind
}

// SiteID returns the site the unit is currently assigned to.
func (e *Equipment) SiteID() kernel.UUID {
	return e.siteID
}

// IsActive reports whether the unit is available at its site.
func (e *Equipment) IsActive() bool {
	return e.isActive
}

// Ref returns the tagged reference identifying this unit.
func (e *Equipment) Ref() (Ref, error) {
	return NewRef(e.kind, e.serial)
}

// Deactivate marks the unit as removed from its site. Called when the unit
// departs from a yard.
func (e *Equipment) Deactivate() {
	e.isActive = false
}

// RelocateTo assigns the unit to a new site and reactivates it. Called when
// the unit arrives at the destination yard.
func (e *Equipment) RelocateTo(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}

	e.siteID = siteID
	e.isActive = true
	return nil
}

func (e *Equipment) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Equipment) setSerial(serial string) error {
	if serial == "" {
		return ErrSerialIsRequired
	}
	e.serial = serial
	return nil
}

func (e *Equipment) setSiteID(siteID kernel.UUID) error {
	if err := siteID.Validate(); err != nil {
		return err
	}
	e.siteID = siteID
	return nil
}
