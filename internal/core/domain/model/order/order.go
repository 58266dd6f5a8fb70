package order

import (
	"errors"
	"fmt"
	"time"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsTerminal is returned when mutating an order that has
	// already failed or arrived.
	ErrOrderIsTerminal = errors.New("order is in a terminal state")

	// ErrFailureReasonIsRequired is returned when failing an order without
	// a reason.
	ErrFailureReasonIsRequired = errs.NewValueIsRequiredError("failureReason")
)

// Order is the aggregate root for one scheduled movement: an equipment
// bundle plus a driver leaving a departure yard and arriving at an arrival
// yard at scheduled instants.
//
// Invariants:
//   - the equipment bundle satisfies the combination rules (see
//     equipment.Bundle)
//   - the scheduled arrival is strictly after the scheduled departure
//   - outcome and movePhase only change through the transition methods,
//     and movePhase never regresses
//   - only the background monitor mutates an order after intake
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// bundle is the equipment moved by this order; empty means the driver
	// moves with a personal vehicle
	bundle equipment.Bundle

	// driverID references the driver performing the movement
	driverID kernel.UUID

	// departureYardID and arrivalYardID are the endpoints of the movement
	departureYardID kernel.UUID
	arrivalYardID   kernel.UUID

	// departureTime and arrivalTime are the scheduled instants; the monitor
	// acts once wall-clock time passes them
	departureTime time.Time
	arrivalTime   time.Time

	// outcome classifies the order's fate
	outcome Outcome

	// movePhase tracks physical progress between the yards
	movePhase MovePhase

	// errorMessage holds the failure reason when outcome is Failed
	errorMessage string

	guard guard.ConstructorGuard
}

// NewOrder creates an order in (Pending, Pending). All business invariants
// are validated here; an order that fails construction is never persisted,
// so the monitor only ever observes well-formed orders.
//
// Parameters:
//   - id: unique identifier for the order
//   - bundle: equipment refs to move (0-4 units, mutually constrained)
//   - driverID: driver performing the movement
//   - departureYardID, arrivalYardID: movement endpoints
//   - departureTime, arrivalTime: scheduled instants, arrival after departure
func NewOrder(
	id kernel.UUID,
	bundle equipment.Bundle,
	driverID kernel.UUID,
	departureYardID kernel.UUID,
	arrivalYardID kernel.UUID,
	departureTime time.Time,
	arrivalTime time.Time,
) (*Order, error) {
	o := &Order{
		outcome:   OutcomePending,
		movePhase: PhasePending,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBundle(bundle),
		o.setDriverID(driverID),
		o.setDepartureYardID(departureYardID),
		o.setArrivalYardID(arrivalYardID),
		o.setSchedule(departureTime, arrivalTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage, preserving
// its outcome, move phase, and error message.
func RestoreOrder(
	id kernel.UUID,
	bundle equipment.Bundle,
	driverID kernel.UUID,
	departureYardID kernel.UUID,
	arrivalYardID kernel.UUID,
	departureTime time.Time,
	arrivalTime time.Time,
	outcome Outcome,
	movePhase MovePhase,
	errorMessage string,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBundle(bundle),
		o.setDriverID(driverID),
		o.setDepartureYardID(departureYardID),
		o.setArrivalYardID(arrivalYardID),
		o.setSchedule(departureTime, arrivalTime),
		outcome.Validate(),
		movePhase.Validate(),
	); err != nil {
		return nil, err
	}

	o.outcome = outcome
	o.movePhase = movePhase
	o.errorMessage = errorMessage
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Bundle returns a copy of the equipment refs moved by this order.
func (o *Order) Bundle() equipment.Bundle {
	out := make(equipment.Bundle, len(o.bundle))
	copy(out, o.bundle)
	return out
}

// DriverID returns the driver performing the movement.
func (o *Order) DriverID() kernel.UUID {
	return o.driverID
}

// DepartureYardID returns the yard the movement starts from.
func (o *Order) DepartureYardID() kernel.UUID {
	return o.departureYardID
}

// ArrivalYardID returns the yard the movement ends at.
func (o *Order) ArrivalYardID() kernel.UUID {
	return o.arrivalYardID
}

// DepartureTime returns the scheduled departure instant.
func (o *Order) DepartureTime() time.Time {
	return o.departureTime
}

// ArrivalTime returns the scheduled arrival instant.
func (o *Order) ArrivalTime() time.Time {
	return o.arrivalTime
}

// Outcome returns the order's fate classification.
func (o *Order) Outcome() Outcome {
	return o.outcome
}

// MovePhase returns the order's physical progress.
func (o *Order) MovePhase() MovePhase {
	return o.movePhase
}

// ErrorMessage returns the recorded failure reason, empty unless Failed.
func (o *Order) ErrorMessage() string {
	return o.errorMessage
}

// IsTerminal reports whether the order will never change again: it failed,
// or it completed the full movement.
func (o *Order) IsTerminal() bool {
	return o.outcome == OutcomeFailed ||
		(o.outcome == OutcomeCompleted && o.movePhase == PhaseArrived)
}

// Approve marks the order as validated and accepted, making it visible to
// the monitor. Called once by the intake path after all checks passed.
func (o *Order) Approve() error {
	newOutcome, err := o.outcome.Approve()
	if err != nil {
		return err
	}

	o.outcome = newOutcome
	return nil
}

// ShouldDepart reports whether the monitor must perform the departure leg:
// the order is accepted, still at the departure yard, and the scheduled
// departure instant has passed. Re-observing an elapsed departure time on
// an already departed order returns false, which is what makes the
// departure leg idempotent across ticks.
func (o *Order) ShouldDepart(now time.Time) bool {
	return o.outcome == OutcomeCompleted &&
		o.movePhase == PhasePending &&
		!now.Before(o.departureTime)
}

// ShouldArrive reports whether the monitor must perform the arrival leg:
// the order is accepted, has not arrived yet, and the scheduled arrival
// instant has passed.
func (o *Order) ShouldArrive(now time.Time) bool {
	return o.outcome == OutcomeCompleted &&
		(o.movePhase == PhasePending || o.movePhase == PhaseDepartured) &&
		!now.Before(o.arrivalTime)
}

// MarkDeparted advances the move phase to Departured.
func (o *Order) MarkDeparted() error {
	if o.outcome != OutcomeCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome",
			fmt.Errorf("%s order cannot depart", o.outcome.String()),
		)
	}

	newPhase, err := o.movePhase.Depart()
	if err != nil {
		return err
	}

	o.movePhase = newPhase
	return nil
}

// MarkArrived advances the move phase to Arrived, the terminal phase.
func (o *Order) MarkArrived() error {
	if o.outcome != OutcomeCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome",
			fmt.Errorf("%s order cannot arrive", o.outcome.String()),
		)
	}

	newPhase, err := o.movePhase.Arrive()
	if err != nil {
		return err
	}

	o.movePhase = newPhase
	return nil
}

// Fail records a terminal failure with the given reason. The move phase is
// left where it was so operators can see how far the order got.
func (o *Order) Fail(reason string) error {
	if reason == "" {
		return ErrFailureReasonIsRequired
	}
	if o.IsTerminal() {
		return ErrOrderIsTerminal
	}

	newOutcome, err := o.outcome.Fail()
	if err != nil {
		return err
	}

	o.outcome = newOutcome
	o.errorMessage = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBundle(bundle equipment.Bundle) error {
	if err := bundle.Validate(); err != nil {
		return err
	}
	o.bundle = make(equipment.Bundle, len(bundle))
	copy(o.bundle, bundle)
	return nil
}

func (o *Order) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	o.driverID = driverID
	return nil
}

func (o *Order) setDepartureYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departureYardId", err)
	}
	o.departureYardID = yardID
	return nil
}

func (o *Order) setArrivalYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arrivalYardId", err)
	}
	o.arrivalYardID = yardID
	return nil
}

func (o *Order) setSchedule(departureTime, arrivalTime time.Time) error {
	if departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	if arrivalTime.IsZero() {
		return errs.NewValueIsRequiredError("arrivalTime")
	}
	if !arrivalTime.After(departureTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"arrivalTime",
			fmt.Errorf("arrival %s is not after departure %s", arrivalTime, departureTime),
		)
	}

	o.departureTime = departureTime
	o.arrivalTime = arrivalTime
	return nil
}
