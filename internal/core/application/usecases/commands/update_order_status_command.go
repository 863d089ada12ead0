package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order along its
// lifecycle graph. The requester's identity is carried so ownership can be
// enforced; operators pass isOperator to act on any order.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy kernel.UUID
	isOperator  bool
	target      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	requestedBy kernel.UUID,
	isOperator bool,
	target order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		isOperator: isOperator,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the requesting account identifier.
func (c UpdateOrderStatusCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}

// IsOperator reports whether the requester holds the admin role.
func (c UpdateOrderStatusCommand) IsOperator() bool {
	return c.isOperator
}

// Target returns the requested lifecycle status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
