package commands

import (
	"errors"
	"time"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new transportation
// order: a driver moving a bundle of equipment from one yard to another on a
// schedule.
//
// Example:
//
//	ref, _ := equipment.NewRef(equipment.Truck, "1234")
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), equipment.Bundle{ref}, driverID,
//	    departureYardID, arrivalYardID,
//	    departureTime, arrivalTime,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	bundle          equipment.Bundle
	driverID        kernel.UUID
	departureYardID kernel.UUID
	arrivalYardID   kernel.UUID
	departureTime   time.Time
	arrivalTime     time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new transportation
// order. The bundle may be empty; whether the driver can fulfill such an
// order is decided by the handler. Bundle combination rules and schedule
// ordering are enforced by the order aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	bundle equipment.Bundle,
	driverID kernel.UUID,
	departureYardID kernel.UUID,
	arrivalYardID kernel.UUID,
	departureTime time.Time,
	arrivalTime time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		bundle:        bundle,
		departureTime: departureTime,
		arrivalTime:   arrivalTime,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDriverID(driverID),
		orderCommand.setDepartureYardID(departureYardID),
		orderCommand.setArrivalYardID(arrivalYardID),
		orderCommand.validateTimes(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Bundle returns the equipment bundle to be moved.
func (c CreateOrderCommand) Bundle() equipment.Bundle {
	return c.bundle
}

// DriverID returns the identifier of the assigned driver.
func (c CreateOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DepartureYardID returns the identifier of the origin yard.
func (c CreateOrderCommand) DepartureYardID() kernel.UUID {
	return c.departureYardID
}

// ArrivalYardID returns the identifier of the destination yard.
func (c CreateOrderCommand) ArrivalYardID() kernel.UUID {
	return c.arrivalYardID
}

// DepartureTime returns the scheduled departure instant.
func (c CreateOrderCommand) DepartureTime() time.Time {
	return c.departureTime
}

// ArrivalTime returns the scheduled arrival instant.
func (c CreateOrderCommand) ArrivalTime() time.Time {
	return c.arrivalTime
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}

	c.driverID = driverID
	return nil
}

func (c *CreateOrderCommand) setDepartureYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departureYardId", err)
	}

	c.departureYardID = yardID
	return nil
}

func (c *CreateOrderCommand) setArrivalYardID(yardID kernel.UUID) error {
	if err := yardID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arrivalYardId", err)
	}

	c.arrivalYardID = yardID
	return nil
}

func (c *CreateOrderCommand) validateTimes() error {
	if c.departureTime.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	if c.arrivalTime.IsZero() {
		return errs.NewValueIsRequiredError("arrivalTime")
	}
	return nil
}
