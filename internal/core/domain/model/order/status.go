package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──┬──> Delivered
//	          │                │
//	          └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal: no outgoing transitions exist.
// A transition request supplies a target state; it is accepted only when the
// target is in the current state's allowed-successor set, otherwise the order
// keeps its state and the caller receives an InvalidTransitionError.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	StatusPending

	// StatusInTransit indicates the order is on its way to the receiver.
	StatusInTransit

	// StatusDelivered indicates the order reached the receiver.
	// Terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery.
	// Terminal state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// allowedTransitions is the fixed directed graph of the order lifecycle.
// Terminal states map to empty successor sets.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusInTransit, StatusCancelled},
		StatusInTransit: {StatusDelivered, StatusCancelled},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// StatusFromString parses a status from its wire representation
// ("pending", "in_transit", "delivered", "cancelled").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: StatusPending, StatusInTransit, StatusDelivered,
// StatusCancelled. StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
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

// TransitionTo moves the status along an edge of the lifecycle graph.
//
// Returns:
//   - (target, nil) when the edge exists
//   - (0, *errs.InvalidTransitionError) otherwise; the caller keeps the
//     previous state
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
