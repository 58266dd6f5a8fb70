package ports

import (
	"context"

	"yms/internal/core/domain/model/equipment"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/yard"
)

// YardRepository defines the read contract for yards and their sites.
// Yards are reference data managed outside the movement engine.
type YardRepository interface {
	// Get retrieves a yard by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*yard.Yard, error)

	// GetSite retrieves the site of the given yard that holds equipment of
	// the given kind. Returns errs.ObjectNotFoundError when the yard has no
	// site for that kind.
	GetSite(ctx context.Context, yardID kernel.UUID, kind equipment.Kind) (*yard.Site, error)
}
