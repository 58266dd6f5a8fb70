package ledger

import (
	"errors"
	"fmt"
	"time"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/order"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry was not created
	// through a constructor.
	ErrEntryIsNotConstructed = errors.New("ledger entry is not constructed")
)

// EquipmentTypePersonalVehicle is recorded for movement legs performed by a
// driver in their personal vehicle, when the order carries no equipment.
const EquipmentTypePersonalVehicle = "PersonalVehicle"

// Entry records a single movement of one piece of equipment (or of a
// driver's personal vehicle) under an order. Entries are immutable once
// written.
type Entry struct {
	id              kernel.UUID
	orderID         kernel.UUID
	phase           order.MovePhase
	equipmentType   string
	equipmentSerial string
	departureYardID kernel.UUID
	arrivalYardID   kernel.UUID
	details         string
	movementTime    time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a ledger entry for the given order and move phase.
// equipmentSerial may be empty for personal vehicle legs.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	phase order.MovePhase,
	equipmentType string,
	equipmentSerial string,
	departureYardID kernel.UUID,
	arrivalYardID kernel.UUID,
	details string,
	movementTime time.Time,
) (*Entry, error) {
	e := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setPhase(phase),
		e.setEquipmentType(equipmentType),
		e.setDepartureYardID(departureYardID),
		e.setArrivalYardID(arrivalYardID),
		e.setDetails(details),
		e.setMovementTime(movementTime),
	); err != nil {
		return nil, err
	}

	e.equipmentSerial = equipmentSerial
	return e, nil
}

// RestoreEntry reconstructs a ledger entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	phase order.MovePhase,
	equipmentType string,
	equipmentSerial string,
	departureYardID kernel.UUID,
	arrivalYardID kernel.UUID,
	details string,
	movementTime time.Time,
) (*Entry, error) {
	return NewEntry(
		id, orderID, phase,
		equipmentType, equipmentSerial,
		departureYardID, arrivalYardID,
		details, movementTime,
	)
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order that caused the movement.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Phase returns the move phase the entry was recorded for.
func (e *Entry) Phase() order.MovePhase {
	return e.phase
}

// EquipmentType returns the kind of equipment that moved, or
// EquipmentTypePersonalVehicle for an empty order bundle.
func (e *Entry) EquipmentType() string {
	return e.equipmentType
}

// EquipmentSerial returns the serial of the equipment that moved. It is
// empty for personal vehicle legs.
func (e *Entry) EquipmentSerial() string {
	return e.equipmentSerial
}

// DepartureYardID returns the yard the movement started from.
func (e *Entry) DepartureYardID() kernel.UUID {
	return e.departureYardID
}

// ArrivalYardID returns the yard the movement is headed to.
func (e *Entry) ArrivalYardID() kernel.UUID {
	return e.arrivalYardID
}

// Details returns the human-readable description of the movement.
func (e *Entry) Details() string {
	return e.details
}

// MovementTime returns when the movement was recorded.
func (e *Entry) MovementTime() time.Time {
	return e.movementTime
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setPhase(phase order.MovePhase) error {
	if err := phase.Validate(); err != nil {
		return err
	}
	if phase == order.PhasePending {
		return errs.NewValueIsInvalidErrorWithCause(
			"phase",
			fmt.Errorf("no movement happens in the %s phase", phase.String()),
		)
	}
	e.phase = phase
	return nil
}

func (e *Entry) setEquipmentType(equipmentType string) error {
	if equipmentType == "" {
		return errs.NewValueIsRequiredError("equipmentType")
	}
	e.equipmentType = equipmentType
	return nil
}

func (e *Entry) setDepartureYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departureYardId", err)
	}
	e.departureYardID = yardID
	return nil
}

func (e *Entry) setArrivalYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arrivalYardId", err)
	}
	e.arrivalYardID = yardID
	return nil
}

func (e *Entry) setDetails(details string) error {
	if details == "" {
		return errs.NewValueIsRequiredError("details")
	}
	e.details = details
	return nil
}

func (e *Entry) setMovementTime(movementTime time.Time) error {
	if movementTime.IsZero() {
		return errs.NewValueIsRequiredError("movementTime")
	}
	e.movementTime = movementTime
	return nil
}
