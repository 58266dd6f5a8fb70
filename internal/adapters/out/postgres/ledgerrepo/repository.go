package ledgerrepo

import (
	"context"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/ledger"
	"yms/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add saves a new ledger entry to the database.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ExistsForOrderAndPhase reports whether any entry was already recorded for
// the given order and move phase.
func (r *GormLedgerRepository) ExistsForOrderAndPhase(
	ctx context.Context,
	orderID kernel.UUID,
	phase order.MovePhase,
) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	if err := phase.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("order_id = ? AND move_phase = ?", orderID.Bytes(), phase.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
