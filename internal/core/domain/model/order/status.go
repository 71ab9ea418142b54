package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of a pizza order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InPreparation ──┬──> Ready ──> Completed
//	          │                    │
//	          └──> Canceled <──────┘
//
// Completed and Canceled are terminal: no outgoing transitions.
// Re-applying the current status is always permitted as a no-op, so
// transition requests are idempotent.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Only Pending orders may be modified by the customer or taken by the preparer.
	Pending

	// InPreparation indicates the preparer is working on the order.
	// At most one order system-wide may hold this status at any moment.
	InPreparation

	// Ready indicates the order is prepared and waiting to be picked up.
	Ready

	// Completed indicates the order has been handed over.
	// This is a final state with no further transitions allowed.
	Completed

	// Canceled indicates the order was withdrawn before completion.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Completed:     "COMPLETED",
		Canceled:      "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Completed:     "COMPLETED",
		Canceled:      "CANCELED",
	}
}

// getAllowedTransitions returns the static transition table: for each status,
// the set of statuses it may move to. Terminal statuses map to an empty set.
// This table is the single source of truth for status logic; no other
// component special-cases transitions.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:       {InPreparation, Canceled},
		InPreparation: {Ready, Canceled},
		Ready:         {Completed},
		Completed:     {},
		Canceled:      {},
	}
}

// StatusFromString parses a status from its persisted/external representation,
// e.g. "PENDING" or "IN_PREPARATION".
//
// Returns a ValueIsInvalidError if the string names no defined status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InPreparation, Ready, Completed, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PENDING".
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateTransition checks whether moving from the receiver to target is
// permitted by the transition table, without performing the transition.
//
// Rules:
//   - both statuses must be defined, otherwise a ValueIsInvalidError is returned
//   - target == current is always permitted (idempotent re-application)
//   - otherwise target must be in the receiver's allowed set
//
// Returns nil if the transition is allowed, a ValueIsInvalidError describing
// the rejected transition otherwise.
func (s Status) ValidateTransition(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s == target {
		return nil
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"statusTransition",
		fmt.Errorf("transition from %s to %s is not allowed", s, target),
	)
}

// TransitionTo validates and performs a transition, returning the new status.
//
// Returns:
//   - (target, nil) when the transition is allowed
//   - (Unknown, error) when it is not
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransition(target); err != nil {
		return Unknown, err
	}
	return target, nil
}

// CanBeModifiedByCustomer reports whether the customer may still edit or
// cancel an order in this status. True only for Pending.
func (s Status) CanBeModifiedByCustomer() bool {
	return s == Pending
}

// CanBeTakenByPreparer reports whether the preparer may claim an order in
// this status. True only for Pending.
func (s Status) CanBeTakenByPreparer() bool {
	return s == Pending
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}
