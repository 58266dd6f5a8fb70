package ports

import (
	"context"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/ledger"
	"yms/internal/core/domain/model/order"
)

// LedgerRepository defines the persistence contract for movement ledger
// entries. The ledger is append-only.
type LedgerRepository interface {
	// Add persists a new ledger entry.
	Add(ctx context.Context, entry *ledger.Entry) error

	// ExistsForOrderAndPhase reports whether any entry was already recorded
	// for the given order and move phase. Used to keep movement legs
	// idempotent across repeated monitor runs.
	ExistsForOrderAndPhase(ctx context.Context, orderID kernel.UUID, phase order.MovePhase) (bool, error)
}
