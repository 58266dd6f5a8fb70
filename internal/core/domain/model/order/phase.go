package order

import (
	"fmt"

	"yms/internal/pkg/errs"
)

// MovePhase tracks an order's physical progress between yards.
//
// Transitions:
//
//	Pending ──> Departured ──> Arrived
//	    │                         ▲
//	    └─────────────────────────┘
//
// The direct Pending -> Arrived transition covers orders whose arrival time
// has already elapsed when the monitor first observes them; the departure
// leg is performed in the same tick. Phases are strictly ordered and never
// regress.
type MovePhase int

const (
	// PhaseUnknown represents an invalid or undefined phase.
	PhaseUnknown MovePhase = iota

	// PhasePending means the bundle has not left the departure yard.
	PhasePending

	// PhaseDepartured means the bundle left the departure yard and is in
	// transit.
	PhaseDepartured

	// PhaseArrived means the bundle reached the arrival yard. Terminal.
	PhaseArrived
)

func getMovePhaseStrings() map[MovePhase]string {
	return map[MovePhase]string{
		PhaseUnknown:    "Unknown",
		PhasePending:    "Pending",
		PhaseDepartured: "Departured",
		PhaseArrived:    "Arrived",
	}
}

func getValidMovePhaseStrings() map[MovePhase]string {
	//nolint:exhaustive // PhaseUnknown is intentionally excluded as it's invalid
	return map[MovePhase]string{
		PhasePending:    "Pending",
		PhaseDepartured: "Departured",
		PhaseArrived:    "Arrived",
	}
}

// Validate checks that the MovePhase is one of the defined values.
func (p MovePhase) Validate() error {
	if _, ok := getValidMovePhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"movePhase",
			fmt.Errorf("%d is not a valid move phase", p),
		)
	}
	return nil
}

// MovePhaseFromString parses the persisted string form of a phase.
func MovePhaseFromString(s string) (MovePhase, error) {
	for phase, str := range getValidMovePhaseStrings() {
		if str == s {
			return phase, nil
		}
	}
	return PhaseUnknown, errs.NewValueIsInvalidErrorWithCause(
		"movePhase",
		fmt.Errorf("%q is not a valid move phase", s),
	)
}

// String returns the human-readable name of the phase.
func (p MovePhase) String() string {
	if str, ok := getMovePhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Depart transitions the phase to Departured. Valid only from Pending.
func (p MovePhase) Depart() (MovePhase, error) {
	if p != PhasePending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"movePhase",
			fmt.Errorf("%s is not a valid phase to depart from", p.String()),
		)
	}

	return PhaseDepartured, nil
}

// Arrive transitions the phase to Arrived. Valid from Pending or
// Departured.
func (p MovePhase) Arrive() (MovePhase, error) {
	if p != PhasePending && p != PhaseDepartured {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"movePhase",
			fmt.Errorf("%s is not a valid phase to arrive from", p.String()),
		)
	}

	return PhaseArrived, nil
}
