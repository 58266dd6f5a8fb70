// Package yardrepo provides data transfer objects and mapping functions for
// yard and site reference data. Yards and sites are managed outside the
// movement engine, so the repository only reads them.
package yardrepo

import (
	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/yard"

	"github.com/google/uuid"
)

// YardDTO represents the database structure for yards.
type YardDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the database table name for yards.
func (YardDTO) TableName() string {
	return "yards"
}

// SiteDTO represents the database structure for sites. Each yard has at
// most one site per equipment kind.
type SiteDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	YardID   uuid.UUID `gorm:"type:uuid;not null;index:idx_site_yard_kind,unique"`
	Kind     string    `gorm:"type:varchar(16);not null;index:idx_site_yard_kind,unique"`
	Capacity int       `gorm:"not null"`
}

// TableName specifies the database table name for sites.
func (SiteDTO) TableName() string {
	return "sites"
}

// yardToDomain converts a database DTO to a yard domain entity.
func yardToDomain(dto YardDTO) (*yard.Yard, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return yard.NewYard(id, dto.Code)
}

// siteToDomain converts a database DTO to a site domain entity.
func siteToDomain(dto SiteDTO) (*yard.Site, error) {
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

	return yard.NewSite(id, yardID, kind, dto.Capacity)
}
