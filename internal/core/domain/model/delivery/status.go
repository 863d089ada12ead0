package delivery

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery assignment.
//
// State transitions:
//
//	Assigned ──> PickedUp ──┬──> InTransit ──┐
//	    │            │      │        │       │
//	    │            │      └────────│──> Delivered
//	    │            │               │
//	    └──> Failed <┴───────────────┘
//
// Delivered and Failed are terminal. InTransit is an optional intermediate
// stop between pickup and completion; a delivery may complete straight from
// PickedUp. Failure is accepted from any non-terminal state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAssigned is the initial status when a delivery is created for an
	// order and an agent.
	StatusAssigned

	// StatusPickedUp indicates the agent collected the package.
	StatusPickedUp

	// StatusInTransit indicates the package is on its way to the receiver.
	StatusInTransit

	// StatusDelivered indicates the package reached the receiver.
	// Terminal state.
	StatusDelivered

	// StatusFailed indicates the delivery could not be completed.
	// Terminal state.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusFailed:    "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusFailed:    "failed",
	}
}

// allowedTransitions is the fixed directed graph of the delivery lifecycle.
// Terminal states map to empty successor sets.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusAssigned:  {StatusPickedUp, StatusFailed},
		StatusPickedUp:  {StatusInTransit, StatusDelivered, StatusFailed},
		StatusInTransit: {StatusDelivered, StatusFailed},
		StatusDelivered: {},
		StatusFailed:    {},
	}
}

// StatusFromString parses a status from its wire representation
// ("assigned", "picked_up", "in_transit", "delivered", "failed").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface; safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	successors, ok := allowedTransitions()[s]
	return ok && len(successors) == 0
}

// CanTransitionTo reports whether moving to the target status is allowed from
// the current one, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, successor := range allowedTransitions()[s] {
		if successor == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the transition is allowed,
// otherwise the current status and an InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}
