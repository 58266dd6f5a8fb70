package yard

import (
	"errors"

	"yms/internal/core/domain/model/kernel"
	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	// ErrYardIsNotConstructed is returned when a Yard was not created
	// through the NewYard constructor.
	ErrYardIsNotConstructed = errors.New("Yard must be created via NewYard constructor")

	// ErrCodeIsRequired is returned when a yard is created without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("yardCode")
)

// Yard is a physical location containing capacity-bounded sites. The
// movement engine treats yards as read-only reference data: orders name a
// departure yard and an arrival yard, and inventory slots belong to one.
type Yard struct {
	// id uniquely identifies the yard
	id kernel.UUID

	// code is the short operator-facing yard code, e.g. "YD01"
	code string

	guard guard.ConstructorGuard
}

// NewYard creates a yard with the given identity and code. Code format
// rules are owned by the master-data catalog; here only presence is
// enforced.
func NewYard(id kernel.UUID, code string) (*Yard, error) {
	y := &Yard{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		y.setID(id),
		y.setCode(code),
	); err != nil {
		return nil, err
	}

	return y, nil
}

// Validate ensures the yard was created through the constructor.
func (y *Yard) Validate() error {
	if y == nil {
		return ErrYardIsNotConstructed
	}
	return y.guard.Validate(ErrYardIsNotConstructed)
}

// IsEqual compares two yards by identity.
func (y *Yard) IsEqual(other *Yard) bool {
	return other != nil && y.id.IsEqual(other.id)
}

// ID returns the yard's unique identifier.
func (y *Yard) ID() kernel.UUID {
	return y.id
}

// Code returns the yard's operator-facing code.
func (y *Yard) Code() string {
	return y.code
}

func (y *Yard) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	y.id = id
	return nil
}

func (y *Yard) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	y.code = code
	return nil
}
