// Package queries contains read-only operations for the CQRS architecture.
// Query handlers read the database directly, bypassing domain aggregates,
// and return plain response structures shaped for presentation.
package queries

import (
	"errors"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	ErrGetYardInventoryQueryIsNotConstructed = errors.New(
		"GetYardInventoryQuery must be created via NewGetYardInventoryQuery constructor",
	)
)

// GetYardInventoryQuery retrieves the current inventory of one yard: every
// occupied slot plus a per-kind occupancy summary against site capacity.
//
// Example:
//
//	query, _ := NewGetYardInventoryQuery(yardID)
//	handler := NewGetYardInventoryQueryHandler(db)
//
//	inv, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get yard inventory: %w", err)
//	}
//	for _, s := range inv.Summary {
//	    fmt.Printf("%s: %d/%d\n", s.Kind, s.Occupied, s.Capacity)
//	}
type GetYardInventoryQuery struct { //nolint:recvcheck //using for validation
	yardID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetYardInventoryQuery creates a query for the given yard's inventory.
func NewGetYardInventoryQuery(yardID kernel.UUID) (GetYardInventoryQuery, error) {
	query := GetYardInventoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := yardID.Validate(); err != nil {
		return GetYardInventoryQuery{}, errs.NewValueIsRequiredErrorWithCause("yardId", err)
	}
	query.yardID = yardID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetYardInventoryQueryIsNotConstructed if validation fails.
func (q GetYardInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetYardInventoryQueryIsNotConstructed)
}

// YardID returns the identifier of the yard being inspected.
func (q GetYardInventoryQuery) YardID() kernel.UUID {
	return q.yardID
}

// GetYardInventoryQueryResponse describes the inventory of one yard.
type GetYardInventoryQueryResponse struct {
	YardID  kernel.UUID
	Slots   []YardSlotResponse
	Summary []SiteOccupancyResponse
}

// YardSlotResponse is one occupied inventory slot.
type YardSlotResponse struct {
	EquipmentSerial string
	Kind            string
	Position        int
}

// SiteOccupancyResponse summarizes how full one site of the yard is.
type SiteOccupancyResponse struct {
	Kind     string
	Capacity int
	Occupied int
}
