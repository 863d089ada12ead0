package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents an operator request to hand an order to a
// delivery agent. Each order may be assigned at most once over its lifetime.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	agentID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign an order to an agent.
func NewAssignDeliveryCommand(deliveryID, orderID, agentID kernel.UUID) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new delivery.
func (c AssignDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the order to assign.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the agent receiving the assignment.
func (c AssignDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AssignDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
