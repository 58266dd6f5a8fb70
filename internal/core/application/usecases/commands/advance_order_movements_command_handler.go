package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/ledger"
	"yms/internal/core/domain/model/order"
	"yms/internal/core/domain/services"
	"yms/internal/pkg/errs"
)

// AdvanceOrderMovementsCommandHandler orchestrates one movement pass over
// all active orders. Each order is processed in its own transaction under a
// row lock, so a failure in one order never rolls back another, and
// concurrent passes cannot process the same order twice.
//
// A movement failure (equipment missing at the departure yard, arrival site
// full or absent) fails the order with a recorded reason; infrastructure
// errors are logged and the order is retried on the next pass.
type AdvanceOrderMovementsCommandHandler struct {
	uowFactory MovementUoWFactory
	relocator  services.Relocator
	logger     *slog.Logger
}

// NewAdvanceOrderMovementsCommandHandler creates a handler for movement
// passes. Requires a MovementUoWFactory for per-order transactions.
func NewAdvanceOrderMovementsCommandHandler(
	uowFactory MovementUoWFactory,
	logger *slog.Logger,
) AdvanceOrderMovementsCommandHandler {
	return AdvanceOrderMovementsCommandHandler{
		uowFactory: uowFactory,
		relocator:  services.NewRelocator(),
		logger:     logger.With("component", "movement"),
	}
}

// Handle processes one movement pass. Returns an error only when the pass
// itself cannot run; per-order failures are handled inside the pass.
func (h *AdvanceOrderMovementsCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderMovementsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ids, err := h.activeOrderIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if err := h.advanceOrder(ctx, id, cmd.Now()); err != nil {
			if isMovementFailure(err) {
				h.failOrder(ctx, id, err)
				continue
			}
			h.logger.Error("order movement skipped",
				"orderId", id.String(), "error", err)
		}
	}

	return nil
}

// activeOrderIDs collects the identifiers of orders due for processing.
// The scan runs in its own short transaction; each order is then re-read
// under a row lock in its own unit of work.
func (h *AdvanceOrderMovementsCommandHandler) activeOrderIDs(
	ctx context.Context,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// advanceOrder performs the due movement legs of a single order inside one
// transaction. The order row is locked first, then re-checked: another pass
// may have finished or failed the order while we waited for the lock.
func (h *AdvanceOrderMovementsCommandHandler) advanceOrder(
	ctx context.Context,
	id kernel.UUID,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if o.IsTerminal() {
		return uow.Commit(ctx)
	}

	moved := false

	if o.ShouldDepart(now) {
		if err = h.departLeg(ctx, uow, o, now); err != nil {
			return err
		}
		if err = o.MarkDeparted(); err != nil {
			return err
		}
		moved = true
	}

	if o.ShouldArrive(now) {
		if err = h.arriveLeg(ctx, uow, o, now); err != nil {
			return err
		}
		if err = o.MarkArrived(); err != nil {
			return err
		}
		moved = true
	}

	if moved {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// departLeg releases every bundled unit from its slot at the departure yard
// and records the movement. A ledger entry already existing for this order
// and phase means an earlier run did the work; the leg is skipped and only
// the phase transition remains.
func (h *AdvanceOrderMovementsCommandHandler) departLeg(
	ctx context.Context,
	uow MovementUoW,
	o *order.Order,
	now time.Time,
) error {
	done, err := uow.LedgerRepository().ExistsForOrderAndPhase(ctx, o.ID(), order.PhaseDepartured)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	if o.Bundle().IsEmpty() {
		return h.recordPersonalVehicleMove(ctx, uow, o, order.PhaseDepartured,
			"driver departed in personal vehicle", now)
	}

	for _, ref := range o.Bundle() {
		unit, err := uow.EquipmentRepository().GetBySerial(ctx, ref.Serial())
		if err != nil {
			return err
		}

		slot, err := uow.InventoryRepository().GetBySerial(ctx, o.DepartureYardID(), ref.Serial())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		if err = h.relocator.Depart(o, unit, slot); err != nil {
			return err
		}

		if err = uow.InventoryRepository().Delete(ctx, slot); err != nil {
			return err
		}
		if err = uow.EquipmentRepository().Update(ctx, unit); err != nil {
			return err
		}

		if err = h.recordEquipmentMove(ctx, uow, o, unit.Kind().String(), unit.Serial(),
			order.PhaseDepartured, fmt.Sprintf("equipment %s departed", unit.Serial()), now); err != nil {
			return err
		}
	}

	return nil
}

// arriveLeg places every bundled unit at the lowest free position of the
// arrival yard's site for its kind and records the movement.
func (h *AdvanceOrderMovementsCommandHandler) arriveLeg(
	ctx context.Context,
	uow MovementUoW,
	o *order.Order,
	now time.Time,
) error {
	done, err := uow.LedgerRepository().ExistsForOrderAndPhase(ctx, o.ID(), order.PhaseArrived)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	if o.Bundle().IsEmpty() {
		return h.recordPersonalVehicleMove(ctx, uow, o, order.PhaseArrived,
			"driver arrived in personal vehicle", now)
	}

	for _, ref := range o.Bundle() {
		unit, err := uow.EquipmentRepository().GetBySerial(ctx, ref.Serial())
		if err != nil {
			return err
		}

		site, err := uow.YardRepository().GetSite(ctx, o.ArrivalYardID(), unit.Kind())
		if err != nil {
			return err
		}

		occupied, err := uow.InventoryRepository().GetOccupiedPositions(
			ctx, o.ArrivalYardID(), unit.Kind())
		if err != nil {
			return err
		}

		slot, err := h.relocator.Arrive(o, unit, site, occupied)
		if err != nil {
			return err
		}

		if err = uow.InventoryRepository().Add(ctx, slot); err != nil {
			return err
		}
		if err = uow.EquipmentRepository().Update(ctx, unit); err != nil {
			return err
		}

		if err = h.recordEquipmentMove(ctx, uow, o, unit.Kind().String(), unit.Serial(),
			order.PhaseArrived, fmt.Sprintf("equipment %s arrived", unit.Serial()), now); err != nil {
			return err
		}
	}

	return nil
}

func (h *AdvanceOrderMovementsCommandHandler) recordEquipmentMove(
	ctx context.Context,
	uow MovementUoW,
	o *order.Order,
	equipmentType string,
	serial string,
	phase order.MovePhase,
	details string,
	now time.Time,
) error {
	entry, err := ledger.NewEntry(
		kernel.NewUUID(), o.ID(), phase,
		equipmentType, serial,
		o.DepartureYardID(), o.ArrivalYardID(),
		details, now,
	)
	if err != nil {
		return err
	}

	return uow.LedgerRepository().Add(ctx, entry)
}

func (h *AdvanceOrderMovementsCommandHandler) recordPersonalVehicleMove(
	ctx context.Context,
	uow MovementUoW,
	o *order.Order,
	phase order.MovePhase,
	details string,
	now time.Time,
) error {
	entry, err := ledger.NewEntry(
		kernel.NewUUID(), o.ID(), phase,
		ledger.EquipmentTypePersonalVehicle, "",
		o.DepartureYardID(), o.ArrivalYardID(),
		details, now,
	)
	if err != nil {
		return err
	}

	return uow.LedgerRepository().Add(ctx, entry)
}

// failOrder marks the order failed in its own transaction, after the
// movement transaction has rolled back. The lock is re-taken because the
// previous transaction released it.
func (h *AdvanceOrderMovementsCommandHandler) failOrder(
	ctx context.Context,
	id kernel.UUID,
	cause error,
) {
	h.logger.Warn("order movement failed",
		"orderId", id.String(), "reason", cause.Error())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.logger.Error("failed to open transaction for order failure",
			"orderId", id.String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	if err != nil {
		h.logger.Error("failed to load order for failure",
			"orderId", id.String(), "error", err)
		return
	}

	if o.IsTerminal() {
		return
	}

	if err = o.Fail(cause.Error()); err != nil {
		h.logger.Error("failed to mark order as failed",
			"orderId", id.String(), "error", err)
		return
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		h.logger.Error("failed to persist order failure",
			"orderId", id.String(), "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.Error("failed to commit order failure",
			"orderId", id.String(), "error", err)
	}
}

// isMovementFailure reports whether the error is a business failure of the
// movement itself, which fails the order, as opposed to an infrastructure
// error, which leaves the order to be retried on the next pass.
func isMovementFailure(err error) bool {
	return errors.Is(err, services.ErrEquipmentNotInYard) ||
		errors.Is(err, services.ErrSiteIsFull) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid)
}
