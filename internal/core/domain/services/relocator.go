package services

import (
	"errors"
	"fmt"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/inventory"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/order"
	"yms/internal/core/domain/model/yard"
	"yms/internal/pkg/errs"
)

var (
	// ErrEquipmentNotInYard is returned when the equipment to be relocated
	// has no inventory slot at the order's departure yard. The order that
	// asked for the movement must be failed.
	ErrEquipmentNotInYard = errors.New("equipment is not present at the departure yard")

	// ErrSiteIsFull is returned when every position of the arrival site is
	// occupied and no slot can be assigned.
	ErrSiteIsFull = errors.New("arrival site has no free position")
)

// Relocator is a domain service that performs the two legs of an equipment
// movement: departure frees the source slot and deactivates the equipment,
// arrival assigns the lowest free position at the destination site.
type Relocator struct{}

// NewRelocator creates a new Relocator instance.
func NewRelocator() Relocator {
	return Relocator{}
}

// Depart releases the equipment from its slot at the order's departure yard
// and marks it inactive while in transit. The caller is responsible for
// deleting the slot from storage.
//
// Returns ErrEquipmentNotInYard when slot is nil or belongs to a different
// yard: the equipment cannot depart from a yard it is not in.
func (r Relocator) Depart(o *order.Order, eq *equipment.Equipment, slot *inventory.Slot) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := eq.Validate(); err != nil {
		return err
	}

	if slot == nil || slot.Validate() != nil {
		return ErrEquipmentNotInYard
	}
	if !slot.YardID().IsEqual(o.DepartureYardID()) {
		return ErrEquipmentNotInYard
	}
	if slot.EquipmentSerial() != eq.Serial() {
		return errs.NewValueIsInvalidErrorWithCause(
			"equipmentSerial",
			fmt.Errorf("slot holds %s, expected %s", slot.EquipmentSerial(), eq.Serial()),
		)
	}

	eq.Deactivate()
	return nil
}

// Arrive places the equipment at the lowest free position of the arrival
// site and reactivates it there. occupiedPositions are the positions already
// taken at the site. The returned slot must be persisted by the caller.
//
// Returns ErrSiteIsFull when the site has no free position left.
func (r Relocator) Arrive(
	o *order.Order,
	eq *equipment.Equipment,
	site *yard.Site,
	occupiedPositions []int,
) (*inventory.Slot, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := eq.Validate(); err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}

	if site.Kind() != eq.Kind() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"siteKind",
			fmt.Errorf("%s site cannot hold %s equipment", site.Kind().String(), eq.Kind().String()),
		)
	}

	position := inventory.NextFreePosition(occupiedPositions, site.Capacity())
	if position > site.Capacity() {
		return nil, ErrSiteIsFull
	}

	slot, err := inventory.NewSlot(
		kernel.NewUUID(),
		site.YardID(),
		eq.Kind(),
		eq.Serial(),
		position,
	)
	if err != nil {
		return nil, err
	}

	if err := eq.RelocateTo(site.ID()); err != nil {
		return nil, err
	}

	return slot, nil
}
