package commands

import (
	"errors"
	"time"

	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	ErrAdvanceOrderMovementsCommandIsNotConstructed = errors.New(
		"AdvanceOrderMovementsCommand must be created via NewAdvanceOrderMovementsCommand constructor",
	)
)

// AdvanceOrderMovementsCommand triggers one pass of the movement engine over
// all active orders: every order whose scheduled departure or arrival
// instant has elapsed gets the corresponding movement leg performed.
//
// Example:
//
//	handler := NewAdvanceOrderMovementsCommandHandler(uowFactory, logger)
//
//	// Run periodically to advance order movements
//	ticker := time.NewTicker(10 * time.Second)
//	for range ticker.C {
//	    cmd, _ := NewAdvanceOrderMovementsCommand(time.Now())
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("movement pass failed: %v", err)
//	    }
//	}
type AdvanceOrderMovementsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceOrderMovementsCommand creates a command to advance order
// movements as of the given instant. The caller passes the current time so
// the pass is deterministic and testable.
func NewAdvanceOrderMovementsCommand(now time.Time) (AdvanceOrderMovementsCommand, error) {
	command := AdvanceOrderMovementsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return AdvanceOrderMovementsCommand{}, errs.NewValueIsRequiredError("now")
	}
	command.now = now

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderMovementsCommandIsNotConstructed if validation fails.
func (c *AdvanceOrderMovementsCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderMovementsCommandIsNotConstructed)
}

// Now returns the instant the movement pass evaluates schedules against.
func (c AdvanceOrderMovementsCommand) Now() time.Time {
	return c.now
}
