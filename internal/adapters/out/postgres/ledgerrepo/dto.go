// Package ledgerrepo provides data transfer objects and mapping functions
// for the append-only movement ledger.
package ledgerrepo

import (
	"time"

	"yms/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting ledger entries.
// The (order, phase) index backs the idempotency check of the order monitor.
type EntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index:idx_ledger_order_phase"`
	MovePhase       string    `gorm:"type:varchar(16);not null;index:idx_ledger_order_phase"`
	EquipmentType   string    `gorm:"type:varchar(32);not null"`
	EquipmentSerial string    `gorm:"type:varchar(64)"`
	DepartureYardID uuid.UUID `gorm:"type:uuid;not null;index"`
	ArrivalYardID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Details         string    `gorm:"type:text;not null"`
	MovementTime    time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "movement_ledger"
}

// fromDomain converts a ledger entry to its database representation.
// Entries are immutable, so there is no mapping back to the domain; reads
// of the ledger go through the movement history query.
func fromDomain(entry *ledger.Entry) EntryDTO {
	return EntryDTO{
		ID:              entry.ID().Bytes(),
		OrderID:         entry.OrderID().Bytes(),
		MovePhase:       entry.Phase().String(),
		EquipmentType:   entry.EquipmentType(),
		EquipmentSerial: entry.EquipmentSerial(),
		DepartureYardID: entry.DepartureYardID().Bytes(),
		ArrivalYardID:   entry.ArrivalYardID().Bytes(),
		Details:         entry.Details(),
		MovementTime:    entry.MovementTime(),
	}
}
