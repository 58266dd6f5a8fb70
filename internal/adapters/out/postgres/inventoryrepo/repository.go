package inventoryrepo

import (
	"context"
	"errors"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/inventory"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Add saves a new inventory slot to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, slot *inventory.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(slot)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes a slot from the database.
func (r *GormInventoryRepository) Delete(ctx context.Context, slot *inventory.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SlotDTO{}, "id = ?", slot.ID().Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("slot", slot.ID().String())
	}

	return nil
}

// GetBySerial retrieves the slot holding the given equipment at the given yard.
func (r *GormInventoryRepository) GetBySerial(
	ctx context.Context,
	yardID kernel.UUID,
	serial string,
) (*inventory.Slot, error) {
	if err := yardID.Validate(); err != nil {
		return nil, err
	}

	var dto SlotDTO
	err := r.db.WithContext(ctx).
		First(&dto, "yard_id = ? AND equipment_serial = ?", yardID.Bytes(), serial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("slot", serial)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOccupiedPositions returns the positions already taken at the yard for
// the given equipment kind.
func (r *GormInventoryRepository) GetOccupiedPositions(
	ctx context.Context,
	yardID kernel.UUID,
	kind equipment.Kind,
) ([]int, error) {
	if err := yardID.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var positions []int
	err := r.db.WithContext(ctx).
		Model(&SlotDTO{}).
		Where("yard_id = ? AND kind = ?", yardID.Bytes(), kind.String()).
		Pluck("position", &positions).Error
	if err != nil {
		return nil, err
	}

	return positions, nil
}
