// Package inventoryrepo provides data transfer objects and mapping functions
// for yard inventory slot persistence. A slot row existing means the
// equipment is present at the yard; departure deletes the row.
package inventoryrepo

import (
	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/inventory"
	"yms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SlotDTO represents the database structure for persisting inventory slots.
// The (yard, kind, position) index keeps positions unique per site; the
// serial index keeps a unit from being in two yards at once.
type SlotDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	YardID          uuid.UUID `gorm:"type:uuid;not null;index:idx_slot_yard_kind_position,unique"`
	Kind            string    `gorm:"type:varchar(16);not null;index:idx_slot_yard_kind_position,unique"`
	Position        int       `gorm:"not null;index:idx_slot_yard_kind_position,unique"`
	EquipmentSerial string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the database table name for inventory slots.
func (SlotDTO) TableName() string {
	return "yard_inventory_slots"
}

// fromDomain converts a slot domain entity to its database representation.
func fromDomain(slot *inventory.Slot) SlotDTO {
	return SlotDTO{
		ID:              slot.ID().Bytes(),
		YardID:          slot.YardID().Bytes(),
		Kind:            slot.Kind().String(),
		Position:        slot.Position(),
		EquipmentSerial: slot.EquipmentSerial(),
	}
}

// toDomain converts a database DTO to a slot domain entity.
func toDomain(dto SlotDTO) (*inventory.Slot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	yardID, err := kernel.UUIDFromBytes(dto.YardID[:])
	if err != nil {
		return nil, err
	}
	kind, err := equipment.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return inventory.NewSlot(id, yardID, kind, dto.EquipmentSerial, dto.Position)
}
