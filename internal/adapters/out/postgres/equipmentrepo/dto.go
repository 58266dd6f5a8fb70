// Package equipmentrepo provides data transfer objects and mapping
// functions for equipment persistence. Equipment is keyed by its serial
// number, which is unique across the fleet.
package equipmentrepo

import (
	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EquipmentDTO represents the database structure for persisting equipment.
type EquipmentDTO struct {
	Serial   string    `gorm:"type:varchar(64);primaryKey"`
	Kind     string    `gorm:"type:varchar(16);not null"`
	SiteID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive bool      `gorm:"not null"`
}

// TableName specifies the database table name for equipment.
func (EquipmentDTO) TableName() string {
	return "equipment"
}

// fromDomain converts an equipment domain entity to its database representation.
func fromDomain(unit *equipment.Equipment) EquipmentDTO {
	return EquipmentDTO{
		Serial:   unit.Serial(),
		Kind:     unit.Kind().String(),
		SiteID:   unit.SiteID().Bytes(),
		IsActive: unit.IsActive(),
	}
}

// toDomain converts a database DTO to an equipment domain entity.
func toDomain(dto EquipmentDTO) (*equipment.Equipment, error) {
	kind, err := equipment.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	siteID, err := kernel.UUIDFromBytes(dto.SiteID[:])
	if err != nil {
		return nil, err
	}

	return equipment.RestoreEquipment(kind, dto.Serial, siteID, dto.IsActive)
}
