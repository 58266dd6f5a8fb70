package queries

import (
	"context"
	"time"

	"yms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMovementHistoryQueryHandler reads the movement ledger from the
// database with optional yard and time range filters.
type GetMovementHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetMovementHistoryQueryHandler creates a handler for movement history queries.
// Requires a GORM database connection for query execution.
func NewGetMovementHistoryQueryHandler(db *gorm.DB) GetMovementHistoryQueryHandler {
	return GetMovementHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries are ordered by movement time, newest
// first.
func (h GetMovementHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetMovementHistoryQuery,
) ([]GetMovementHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			move_phase,
			equipment_type,
			equipment_serial,
			departure_yard_id,
			arrival_yard_id,
			details,
			movement_time
		FROM movement_ledger
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.YardID() != nil {
		sql += ` AND (departure_yard_id = ? OR arrival_yard_id = ?)`
		args = append(args, query.YardID().Bytes(), query.YardID().Bytes())
	}
	if !query.From().IsZero() {
		sql += ` AND movement_time >= ?`
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += ` AND movement_time <= ?`
		args = append(args, query.To())
	}

	sql += ` ORDER BY movement_time DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetMovementHistoryQueryResponse, 0)
	for rows.Next() {
		var entry GetMovementHistoryQueryResponse
		var id, orderID, departureYardID, arrivalYardID uuid.UUID
		var movementTime time.Time

		if err = rows.Scan(
			&id,
			&orderID,
			&entry.Phase,
			&entry.EquipmentType,
			&entry.EquipmentSerial,
			&departureYardID,
			&arrivalYardID,
			&entry.Details,
			&movementTime,
		); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if entry.DepartureYardID, err = kernel.UUIDFromBytes(departureYardID[:]); err != nil {
			return nil, err
		}
		if entry.ArrivalYardID, err = kernel.UUIDFromBytes(arrivalYardID[:]); err != nil {
			return nil, err
		}
		entry.MovementTime = movementTime

		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
