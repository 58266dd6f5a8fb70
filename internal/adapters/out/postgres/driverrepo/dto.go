// Package driverrepo provides data transfer objects and mapping functions
// for driver reference data. Drivers are managed outside the movement
// engine, so the repository only reads them.
package driverrepo

import (
	"yms/internal/core/domain/model/driver"
	"yms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for drivers.
type DriverDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	HasPersonalVehicle bool      `gorm:"not null"`
}

// TableName specifies the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

// toDomain converts a database DTO to a driver domain entity.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.HasPersonalVehicle)
}
