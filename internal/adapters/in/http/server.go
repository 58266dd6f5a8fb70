package http

import (
	"errors"
	"net/http"
	"time"

	"yms/internal/core/application/usecases/commands"
	"yms/internal/core/application/usecases/queries"
	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the yard management boundary.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	getYardInventoryHandler   queries.GetYardInventoryQueryHandler
	getMovementHistoryHandler queries.GetMovementHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getYardInventoryHandler queries.GetYardInventoryQueryHandler,
	getMovementHistoryHandler queries.GetMovementHistoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		getYardInventoryHandler:   getYardInventoryHandler,
		getMovementHistoryHandler: getMovementHistoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/yards/:yardId/inventory", s.GetYardInventory)
	e.GET("/api/v1/transactions", s.GetTransactions)
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// EquipmentRef is one equipment unit in an order request.
type EquipmentRef struct {
	Kind   string `json:"kind"`
	Serial string `json:"serial"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	DriverID        string         `json:"driverId"`
	DepartureYardID string         `json:"departureYardId"`
	ArrivalYardID   string         `json:"arrivalYardId"`
	DepartureTime   time.Time      `json:"departureTime"`
	ArrivalTime     time.Time      `json:"arrivalTime"`
	Equipment       []EquipmentRef `json:"equipment"`
}

// CreatedOrder is the response body for a created order.
type CreatedOrder struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - creates and approves a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID, err := kernel.UUIDFromString(newOrder.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}
	departureYardID, err := kernel.UUIDFromString(newOrder.DepartureYardID)
	if err != nil {
		return badRequest(ctx, "Invalid departure yard id: "+err.Error())
	}
	arrivalYardID, err := kernel.UUIDFromString(newOrder.ArrivalYardID)
	if err != nil {
		return badRequest(ctx, "Invalid arrival yard id: "+err.Error())
	}

	bundle := make(equipment.Bundle, 0, len(newOrder.Equipment))
	for _, ref := range newOrder.Equipment {
		kind, kindErr := equipment.KindFromString(ref.Kind)
		if kindErr != nil {
			return badRequest(ctx, "Invalid equipment kind: "+kindErr.Error())
		}
		unit, refErr := equipment.NewRef(kind, ref.Serial)
		if refErr != nil {
			return badRequest(ctx, "Invalid equipment: "+refErr.Error())
		}
		bundle = append(bundle, unit)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, bundle, driverID,
		departureYardID, arrivalYardID,
		newOrder.DepartureTime, newOrder.ArrivalTime,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrDriverHasNoPersonalVehicle),
			errors.Is(handleErr, errs.ErrValueIsInvalid),
			errors.Is(handleErr, errs.ErrValueIsRequired):
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: handleErr.Error(),
			})
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: handleErr.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to create order",
			})
		}
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// YardSlot is one occupied slot in a yard inventory response.
type YardSlot struct {
	EquipmentSerial string `json:"equipmentSerial"`
	Kind            string `json:"kind"`
	Position        int    `json:"position"`
}

// SiteOccupancy summarizes how full one site of a yard is.
type SiteOccupancy struct {
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
	Occupied int    `json:"occupied"`
}

// YardInventory is the response body for a yard inventory read.
type YardInventory struct {
	YardID  string          `json:"yardId"`
	Slots   []YardSlot      `json:"slots"`
	Summary []SiteOccupancy `json:"summary"`
}

// GetYardInventory handles GET /api/v1/yards/:yardId/inventory.
func (s *Server) GetYardInventory(ctx echo.Context) error {
	yardID, err := kernel.UUIDFromString(ctx.Param("yardId"))
	if err != nil {
		return badRequest(ctx, "Invalid yard id: "+err.Error())
	}

	query, err := queries.NewGetYardInventoryQuery(yardID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	inventory, err := s.getYardInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve yard inventory",
		})
	}

	response := YardInventory{
		YardID:  inventory.YardID.String(),
		Slots:   make([]YardSlot, len(inventory.Slots)),
		Summary: make([]SiteOccupancy, len(inventory.Summary)),
	}
	for i, slot := range inventory.Slots {
		response.Slots[i] = YardSlot{
			EquipmentSerial: slot.EquipmentSerial,
			Kind:            slot.Kind,
			Position:        slot.Position,
		}
	}
	for i, occupancy := range inventory.Summary {
		response.Summary[i] = SiteOccupancy{
			Kind:     occupancy.Kind,
			Capacity: occupancy.Capacity,
			Occupied: occupancy.Occupied,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Transaction is one movement ledger entry in a history response.
type Transaction struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"orderId"`
	Phase           string    `json:"phase"`
	EquipmentType   string    `json:"equipmentType"`
	EquipmentSerial string    `json:"equipmentSerial,omitempty"`
	DepartureYardID string    `json:"departureYardId"`
	ArrivalYardID   string    `json:"arrivalYardId"`
	Details         string    `json:"details"`
	MovementTime    time.Time `json:"movementTime"`
}

// GetTransactions handles GET /api/v1/transactions - reads the movement
// ledger. Optional query parameters: yardId, from, to (RFC 3339).
func (s *Server) GetTransactions(ctx echo.Context) error {
	var yardID *kernel.UUID
	if raw := ctx.QueryParam("yardId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid yard id: "+err.Error())
		}
		yardID = &id
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from time: "+err.Error())
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to time: "+err.Error())
	}

	query, err := queries.NewGetMovementHistoryQuery(yardID, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	entries, err := s.getMovementHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve transactions",
		})
	}

	response := make([]Transaction, len(entries))
	for i, entry := range entries {
		response[i] = Transaction{
			ID:              entry.ID.String(),
			OrderID:         entry.OrderID.String(),
			Phase:           entry.Phase,
			EquipmentType:   entry.EquipmentType,
			EquipmentSerial: entry.EquipmentSerial,
			DepartureYardID: entry.DepartureYardID.String(),
			ArrivalYardID:   entry.ArrivalYardID.String(),
			Details:         entry.Details,
			MovementTime:    entry.MovementTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
