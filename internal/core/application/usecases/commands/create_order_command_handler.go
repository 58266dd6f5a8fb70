package commands

import (
	"context"
	"errors"

	"yms/internal/core/domain/model/order"
)

// ErrDriverHasNoPersonalVehicle is returned when an order without equipment
// is assigned to a driver who cannot travel in a personal vehicle.
var ErrDriverHasNoPersonalVehicle = errors.New(
	"order without equipment requires a driver with a personal vehicle",
)

// CreateOrderCommandHandler handles the business logic for order intake.
// An order that passes validation is accepted immediately and waits for the
// movement engine to pick it up; an order that fails validation is rejected
// and never persisted.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Builds the order aggregate, checks the personal vehicle rule for orders
// without equipment, approves the order, and persists it in a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Bundle(),
		cmd.DriverID(),
		cmd.DepartureYardID(),
		cmd.ArrivalYardID(),
		cmd.DepartureTime(),
		cmd.ArrivalTime(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if newOrder.Bundle().IsEmpty() {
		assignedDriver, driverErr := uow.DriverRepository().Get(ctx, cmd.DriverID())
		if driverErr != nil {
			return driverErr
		}
		if !assignedDriver.HasPersonalVehicle() {
			return ErrDriverHasNoPersonalVehicle
		}
	}

	if err = newOrder.Approve(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
