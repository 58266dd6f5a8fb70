package ports

import (
	"context"

	"yms/internal/core/domain/model/equipment"
)

// EquipmentRepository defines the persistence contract for equipment units.
// Serial numbers are unique across the fleet, so the serial is the natural
// identifier.
type EquipmentRepository interface {
	// Add persists a new equipment unit.
	Add(ctx context.Context, unit *equipment.Equipment) error

	// Update persists changes to an existing equipment unit.
	Update(ctx context.Context, unit *equipment.Equipment) error

	// GetBySerial retrieves an equipment unit by its serial number.
	GetBySerial(ctx context.Context, serial string) (*equipment.Equipment, error)
}
