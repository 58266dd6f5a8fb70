package queries

import (
	"errors"
	"time"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	ErrGetMovementHistoryQueryIsNotConstructed = errors.New(
		"GetMovementHistoryQuery must be created via NewGetMovementHistoryQuery constructor",
	)
)

// GetMovementHistoryQuery retrieves movement ledger entries, newest first.
// All filters are optional: a nil yard ID matches every yard, zero times
// leave the corresponding bound open.
//
// Example:
//
//	since := time.Now().Add(-24 * time.Hour)
//	query, _ := NewGetMovementHistoryQuery(&yardID, since, time.Time{})
//	handler := NewGetMovementHistoryQueryHandler(db)
//
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get movement history: %w", err)
//	}
type GetMovementHistoryQuery struct { //nolint:recvcheck //using for validation
	yardID *kernel.UUID
	from   time.Time
	to     time.Time

	guard guard.ConstructorGuard
}

// NewGetMovementHistoryQuery creates a query over the movement ledger.
// yardID filters entries whose departure or arrival yard matches; from and
// to bound the movement time when non-zero.
func NewGetMovementHistoryQuery(
	yardID *kernel.UUID,
	from time.Time,
	to time.Time,
) (GetMovementHistoryQuery, error) {
	query := GetMovementHistoryQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}

	if yardID != nil {
		if err := yardID.Validate(); err != nil {
			return GetMovementHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("yardId", err)
		}
		query.yardID = yardID
	}

	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return GetMovementHistoryQuery{}, errs.NewValueIsInvalidError("to")
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMovementHistoryQueryIsNotConstructed if validation fails.
func (q GetMovementHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementHistoryQueryIsNotConstructed)
}

// YardID returns the optional yard filter.
func (q GetMovementHistoryQuery) YardID() *kernel.UUID {
	return q.yardID
}

// From returns the optional lower bound on movement time.
func (q GetMovementHistoryQuery) From() time.Time {
	return q.from
}

// To returns the optional upper bound on movement time.
func (q GetMovementHistoryQuery) To() time.Time {
	return q.to
}

// GetMovementHistoryQueryResponse is one recorded movement.
type GetMovementHistoryQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Phase           string
	EquipmentType   string
	EquipmentSerial string
	DepartureYardID kernel.UUID
	ArrivalYardID   kernel.UUID
	Details         string
	MovementTime    time.Time
}
