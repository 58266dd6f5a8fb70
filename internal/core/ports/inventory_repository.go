package ports

import (
	"context"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/inventory"
	"yms/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for yard inventory
// slots. A slot row existing means the equipment is present at the yard;
// departure deletes the row, arrival creates a new one.
type InventoryRepository interface {
	// Add persists a new inventory slot.
	Add(ctx context.Context, slot *inventory.Slot) error

	// Delete removes a slot from storage. Called when the equipment
	// departs from the yard.
	Delete(ctx context.Context, slot *inventory.Slot) error

	// GetBySerial retrieves the slot holding the given equipment at the
	// given yard. Returns errs.ObjectNotFoundError when the equipment has
	// no slot there.
	GetBySerial(ctx context.Context, yardID kernel.UUID, serial string) (*inventory.Slot, error)

	// GetOccupiedPositions returns the positions already taken at the yard
	// for the given equipment kind, in no particular order.
	GetOccupiedPositions(ctx context.Context, yardID kernel.UUID, kind equipment.Kind) ([]int, error)
}
