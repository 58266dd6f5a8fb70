package yardrepo

import (
	"context"
	"errors"
	"fmt"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/yard"
	"yms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormYardRepository implements YardRepository using GORM.
type GormYardRepository struct {
	db *gorm.DB
}

// NewGormYardRepository creates a new GORM yard repository.
func NewGormYardRepository(db *gorm.DB) *GormYardRepository {
	return &GormYardRepository{db: db}
}

// Get retrieves a yard by ID.
func (r *GormYardRepository) Get(ctx context.Context, id kernel.UUID) (*yard.Yard, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto YardDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("yard", id.String())
		}
		return nil, err
	}

	return yardToDomain(dto)
}

// GetSite retrieves the site of the given yard for the given equipment kind.
func (r *GormYardRepository) GetSite(
	ctx context.Context,
	yardID kernel.UUID,
	kind equipment.Kind,
) (*yard.Site, error) {
	if err := yardID.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dto SiteDTO
	err := r.db.WithContext(ctx).
		First(&dto, "yard_id = ? AND kind = ?", yardID.Bytes(), kind.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site",
				fmt.Sprintf("%s/%s", yardID.String(), kind.String()))
		}
		return nil, err
	}

	return siteToDomain(dto)
}
