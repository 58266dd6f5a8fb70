// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities
// and database representations.
package orderrepo

import (
	"time"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The equipment bundle lives in a child table; it is immutable after intake
// so updates never touch it.
type OrderDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	DriverID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	DepartureYardID uuid.UUID           `gorm:"type:uuid;not null;index"`
	ArrivalYardID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	DepartureTime   time.Time           `gorm:"not null"`
	ArrivalTime     time.Time           `gorm:"not null"`
	Outcome         string              `gorm:"type:varchar(16);not null;index"`
	MovePhase       string              `gorm:"type:varchar(16);not null;index"`
	ErrorMessage    string              `gorm:"type:text"`
	Equipment       []OrderEquipmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderEquipmentDTO represents one bundled equipment reference of an order.
type OrderEquipmentDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind    string    `gorm:"type:varchar(16);not null"`
	Serial  string    `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for bundled equipment references.
func (OrderEquipmentDTO) TableName() string {
	return "order_equipment"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	bundle := make([]OrderEquipmentDTO, 0, len(aggregate.Bundle()))
	for _, ref := range aggregate.Bundle() {
		bundle = append(bundle, OrderEquipmentDTO{
			ID:      uuid.New(),
			OrderID: orderID,
			Kind:    ref.Kind().String(),
			Serial:  ref.Serial(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		DriverID:        aggregate.DriverID().Bytes(),
		DepartureYardID: aggregate.DepartureYardID().Bytes(),
		ArrivalYardID:   aggregate.ArrivalYardID().Bytes(),
		DepartureTime:   aggregate.DepartureTime(),
		ArrivalTime:     aggregate.ArrivalTime(),
		Outcome:         aggregate.Outcome().String(),
		MovePhase:       aggregate.MovePhase().String(),
		ErrorMessage:    aggregate.ErrorMessage(),
		Equipment:       bundle,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its bundle using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	departureYardID, err := kernel.UUIDFromBytes(dto.DepartureYardID[:])
	if err != nil {
		return nil, err
	}
	arrivalYardID, err := kernel.UUIDFromBytes(dto.ArrivalYardID[:])
	if err != nil {
		return nil, err
	}

	bundle := make(equipment.Bundle, 0, len(dto.Equipment))
	for _, item := range dto.Equipment {
		kind, kindErr := equipment.KindFromString(item.Kind)
		if kindErr != nil {
			return nil, kindErr
		}
		ref, refErr := equipment.NewRef(kind, item.Serial)
		if refErr != nil {
			return nil, refErr
		}
		bundle = append(bundle, ref)
	}

	outcome, err := order.OutcomeFromString(dto.Outcome)
	if err != nil {
		return nil, err
	}
	movePhase, err := order.MovePhaseFromString(dto.MovePhase)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, bundle, driverID,
		departureYardID, arrivalYardID,
		dto.DepartureTime, dto.ArrivalTime,
		outcome, movePhase, dto.ErrorMessage,
	)
}
