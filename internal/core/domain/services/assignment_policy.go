package services

import (
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
)

// ErrAgentUnavailable is returned when the chosen agent has marked themselves
// unavailable for new assignments.
var ErrAgentUnavailable = errors.New("agent is not available for assignments")

// AssignmentPolicy is a domain service that hands an order to a delivery
// agent.
//
// Business rules:
//   - The order must be deliverable: pending or in transit, and paid.
//   - The agent must be available.
//   - A successful assignment forces the order into in_transit, overriding
//     the customer-facing status machine. Assignment is an operator action.
type AssignmentPolicy struct{}

// NewAssignmentPolicy creates a new AssignmentPolicy instance.
func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// Check validates the assignment preconditions without mutating anything.
func (p AssignmentPolicy) Check(o *order.Order, profile *agent.Agent) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	if !o.IsDeliverable() {
		return errs.NewInvalidTransitionError(
			"order",
			o.Status().String()+"/"+o.PaymentStatus().String(),
			delivery.StatusAssigned.String(),
		)
	}
	if !profile.IsAvailable() {
		return errs.NewValueIsInvalidErrorWithCause("agentID", ErrAgentUnavailable)
	}

	return nil
}

// Assign validates the preconditions, creates the delivery, and moves the
// order to in_transit. The caller persists both aggregates in one
// transaction.
func (p AssignmentPolicy) Assign(
	deliveryID kernel.UUID,
	o *order.Order,
	profile *agent.Agent,
) (*delivery.Delivery, error) {
	if err := p.Check(o, profile); err != nil {
		return nil, err
	}

	assignment, err := delivery.NewDelivery(deliveryID, o.ID(), profile.ID())
	if err != nil {
		return nil, err
	}

	o.ForceInTransit()
	return assignment, nil
}
