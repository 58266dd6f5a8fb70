package equipmentrepo

import (
	"context"
	"errors"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEquipmentRepository implements EquipmentRepository using GORM.
type GormEquipmentRepository struct {
	db *gorm.DB
}

// NewGormEquipmentRepository creates a new GORM equipment repository.
func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

// Add saves a new equipment unit to the database.
func (r *GormEquipmentRepository) Add(ctx context.Context, unit *equipment.Equipment) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	dto := fromDomain(unit)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing equipment unit to the database. The column list
// is explicit so a false is_active is still written.
func (r *GormEquipmentRepository) Update(ctx context.Context, unit *equipment.Equipment) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	dto := fromDomain(unit)
	result := r.db.WithContext(ctx).
		Model(&EquipmentDTO{}).
		Where("serial = ?", dto.Serial).
		Select("kind", "site_id", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetBySerial retrieves an equipment unit by its serial number.
func (r *GormEquipmentRepository) GetBySerial(
	ctx context.Context,
	serial string,
) (*equipment.Equipment, error) {
	if serial == "" {
		return nil, errs.NewValueIsRequiredError("serial")
	}

	var dto EquipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "serial = ?", serial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("equipment", serial)
		}
		return nil, err
	}

	return toDomain(dto)
}
