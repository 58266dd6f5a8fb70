package ports

import (
	"context"

	"yms/internal/core/domain/model/driver"
	"yms/internal/core/domain/model/kernel"
)

// DriverRepository defines the read contract for drivers. Drivers are
// reference data managed outside the movement engine.
type DriverRepository interface {
	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
