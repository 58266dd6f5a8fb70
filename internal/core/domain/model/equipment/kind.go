package equipment

import (
	"fmt"

	"yms/internal/pkg/errs"
)

// Kind represents the category of a piece of equipment. Every site inside a
// yard is scoped to exactly one kind, and every inventory slot and ledger
// entry is tagged with one.
//
// Kind is a value object; the zero value (Unknown) is invalid.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	Unknown Kind = iota

	// Truck is a tractor unit.
	Truck

	// Chassis is a wheeled frame a container is mounted on.
	Chassis

	// Container is an intermodal shipping container.
	Container

	// Trailer is an enclosed trailer towed directly by a truck.
	Trailer
)

// Default site capacities per kind, applied when a site record carries no
// explicit capacity.
const (
	defaultTruckCapacity     = 30
	defaultChassisCapacity   = 20
	defaultContainerCapacity = 40
	defaultTrailerCapacity   = 10
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:   "Unknown",
		Truck:     "Truck",
		Chassis:   "Chassis",
		Container: "Container",
		Trailer:   "Trailer",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Truck:     "Truck",
		Chassis:   "Chassis",
		Container: "Container",
		Trailer:   "Trailer",
	}
}

// AllKinds returns the valid equipment kinds in a stable order.
func AllKinds() []Kind {
	return []Kind{Truck, Chassis, Container, Trailer}
}

// KindFromString parses the persisted string form of a kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"equipmentKind",
		fmt.Errorf("%q is not a valid equipment kind", s),
	)
}

// Validate checks that the Kind is one of the four valid categories.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"equipmentKind",
			fmt.Errorf("%d is not a valid equipment kind", k),
		)
	}
	return nil
}

// String returns the human-readable name of the kind. It implements
// fmt.Stringer and is safe to call on invalid values.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// DefaultSiteCapacity returns the standard capacity of a site holding this
// kind, used when the site record does not specify one.
func (k Kind) DefaultSiteCapacity() int {
	switch k {
	case Truck:
		return defaultTruckCapacity
	case Chassis:
		return defaultChassisCapacity
	case Container:
		return defaultContainerCapacity
	case Trailer:
		return defaultTrailerCapacity
	default:
		return defaultTruckCapacity
	}
}
