package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetYardInventoryQueryHandler reads a yard's inventory from the database.
// Slots come from the live inventory table; the summary joins site
// capacities against a per-kind slot count.
type GetYardInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetYardInventoryQueryHandler creates a handler for yard inventory queries.
// Requires a GORM database connection for query execution.
func NewGetYardInventoryQueryHandler(db *gorm.DB) GetYardInventoryQueryHandler {
	return GetYardInventoryQueryHandler{db: db}
}

// Handle executes the query. Slots are ordered by kind and position for
// stable output.
func (h GetYardInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetYardInventoryQuery,
) (GetYardInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetYardInventoryQueryResponse{}, err
	}

	response := GetYardInventoryQueryResponse{
		YardID:  query.YardID(),
		Slots:   make([]YardSlotResponse, 0),
		Summary: make([]SiteOccupancyResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			equipment_serial,
			kind,
			position
		FROM yard_inventory_slots
		WHERE yard_id = ?
		ORDER BY kind, position
	`, query.YardID().Bytes()).Rows()
	if err != nil {
		return GetYardInventoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var slot YardSlotResponse
		if err = rows.Scan(&slot.EquipmentSerial, &slot.Kind, &slot.Position); err != nil {
			return GetYardInventoryQueryResponse{}, err
		}
		response.Slots = append(response.Slots, slot)
	}
	if err = rows.Err(); err != nil {
		return GetYardInventoryQueryResponse{}, err
	}

	summaryRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.kind,
			s.capacity,
			COUNT(i.id) AS occupied
		FROM sites s
		LEFT JOIN yard_inventory_slots i
			ON i.yard_id = s.yard_id AND i.kind = s.kind
		WHERE s.yard_id = ?
		GROUP BY s.kind, s.capacity
		ORDER BY s.kind
	`, query.YardID().Bytes()).Rows()
	if err != nil {
		return GetYardInventoryQueryResponse{}, err
	}
	defer summaryRows.Close()

	for summaryRows.Next() {
		var occupancy SiteOccupancyResponse
		if err = summaryRows.Scan(
			&occupancy.Kind, &occupancy.Capacity, &occupancy.Occupied,
		); err != nil {
			return GetYardInventoryQueryResponse{}, err
		}
		response.Summary = append(response.Summary, occupancy)
	}
	if err = summaryRows.Err(); err != nil {
		return GetYardInventoryQueryResponse{}, err
	}

	return response, nil
}
