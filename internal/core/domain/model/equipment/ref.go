package equipment

import (
	"errors"

	"yms/internal/pkg/errs"
	"yms/internal/pkg/guard"
)

var (
	// ErrRefIsNotConstructed is returned when a Ref was not created through
	// the NewRef constructor.
	ErrRefIsNotConstructed = errors.New("Ref must be created via NewRef constructor")

	// ErrSerialIsRequired is returned when a ref is created without a serial number.
	ErrSerialIsRequired = errs.NewValueIsRequiredError("serialNumber")

	// Bundle combination rule violations.
	ErrChassisRequiresTruck    = errors.New("a chassis cannot be moved without a truck")
	ErrContainerRequiresChassis = errors.New("a container cannot be moved without a chassis")
	ErrTrailerExcludesChassis  = errors.New("a trailer and a chassis cannot be moved together")
	ErrDuplicateKindInBundle   = errors.New("an order can reference at most one unit per equipment kind")
)

// Ref is a tagged reference to one piece of equipment: its kind plus its
// serial number. Orders and ledger entries carry Refs instead of separate
// nullable foreign keys per kind, so relocation and ledger logic switch on
// one value.
//
// Ref is a value object; the zero value is invalid.
type Ref struct {
	kind   Kind
	serial string

	guard guard.ConstructorGuard
}

// NewRef creates a reference to the equipment unit with the given kind and
// serial number.
//
// Business rules:
//   - kind must be one of the four valid categories
//   - serial must be non-empty (format rules are owned by the catalog)
func NewRef(kind Kind, serial string) (Ref, error) {
	ref := Ref{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ref.setKind(kind),
		ref.setSerial(serial),
	); err != nil {
		return Ref{}, err
	}

	return ref, nil
}

// Validate ensures the Ref was created via NewRef.
func (r Ref) Validate() error {
	return r.guard.Validate(ErrRefIsNotConstructed)
}

// Kind returns the equipment category of the referenced unit.
func (r Ref) Kind() Kind {
	return r.kind
}

// Serial returns the serial number of the referenced unit.
func (r Ref) Serial() string {
	return r.serial
}

// IsEqual compares two refs by kind and serial.
func (r Ref) IsEqual(other Ref) bool {
	return r.kind == other.kind && r.serial == other.serial
}

func (r *Ref) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Ref) setSerial(serial string) error {
	if serial == "" {
		return ErrSerialIsRequired
	}
	r.serial = serial
	return nil
}

// Bundle is the set of equipment refs attached to one order: zero to four
// units, at most one per kind, mutually constrained.
type Bundle []Ref

// Validate enforces the combination rules for a bundle:
//
//   - at most one unit per kind
//   - a chassis requires a truck
//   - a container requires a chassis
//   - a trailer excludes a chassis
//
// An empty bundle is valid here; whether the driver may move without
// equipment is checked at order intake against the driver's profile.
func (b Bundle) Validate() error {
	seen := make(map[Kind]bool, len(b))
	for _, ref := range b {
		if err := ref.Validate(); err != nil {
			return err
		}
		if seen[ref.Kind()] {
			return ErrDuplicateKindInBundle
		}
		seen[ref.Kind()] = true
	}

	if seen[Trailer] && seen[Chassis] {
		return ErrTrailerExcludesChassis
	}
	if seen[Chassis] && !seen[Truck] {
		return ErrChassisRequiresTruck
	}
	if seen[Container] && !seen[Chassis] {
		return ErrContainerRequiresChassis
	}

	return nil
}

// IsEmpty reports whether the bundle references no equipment at all, which
// means the driver moves with a personal vehicle.
func (b Bundle) IsEmpty() bool {
	return len(b) == 0
}
