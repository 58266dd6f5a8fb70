package order

import (
	"fmt"

	"yms/internal/pkg/errs"
)

// Outcome classifies an order's overall fate.
//
// Transitions:
//
//	Pending ──> Completed ──> Failed
//	    │                       ▲
//	    └───────────────────────┘
//
// Completed means the order passed intake validation and is eligible for
// movement processing. Failed is terminal: the monitor records the failure
// reason on the order and never touches it again.
type Outcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown Outcome = iota

	// OutcomePending is the initial outcome of a freshly created order.
	// The monitor ignores orders in this outcome.
	OutcomePending

	// OutcomeCompleted marks an order as validated and accepted. Only
	// completed orders are advanced through movement phases.
	OutcomeCompleted

	// OutcomeFailed is the terminal failure classification.
	OutcomeFailed
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeUnknown:   "Unknown",
		OutcomePending:   "Pending",
		OutcomeCompleted: "Completed",
		OutcomeFailed:    "Failed",
	}
}

func getValidOutcomeStrings() map[Outcome]string {
	//nolint:exhaustive // OutcomeUnknown is intentionally excluded as it's invalid
	return map[Outcome]string{
		OutcomePending:   "Pending",
		OutcomeCompleted: "Completed",
		OutcomeFailed:    "Failed",
	}
}

// Validate checks that the Outcome is one of the defined values.
func (o Outcome) Validate() error {
	if _, ok := getValidOutcomeStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"outcome",
			fmt.Errorf("%d is not a valid outcome", o),
		)
	}
	return nil
}

// OutcomeFromString parses the persisted string form of an outcome.
func OutcomeFromString(s string) (Outcome, error) {
	for outcome, str := range getValidOutcomeStrings() {
		if str == s {
			return outcome, nil
		}
	}
	return OutcomeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"outcome",
		fmt.Errorf("%q is not a valid outcome", s),
	)
}

// String returns the human-readable name of the outcome.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the outcome to Completed. Only pending orders can be
// approved; approval is what makes an order visible to the monitor.
func (o Outcome) Approve() (Outcome, error) {
	if o != OutcomePending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"outcome",
			fmt.Errorf("%s is not a valid outcome to approve", o.String()),
		)
	}

	return OutcomeCompleted, nil
}

// Fail transitions the outcome to Failed. Any non-failed outcome may fail;
// failing twice is rejected so the original failure reason is preserved.
func (o Outcome) Fail() (Outcome, error) {
	if o != OutcomePending && o != OutcomeCompleted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"outcome",
			fmt.Errorf("%s is not a valid outcome to fail", o.String()),
		)
	}

	return OutcomeFailed, nil
}
