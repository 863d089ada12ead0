package commands

import (
	"errors"
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrChangePaymentCommandIsNotConstructed = errors.New(
	"ChangePaymentCommand must be created via NewChangePaymentCommand constructor",
)

// PaymentAction selects which one-way payment operation to perform.
type PaymentAction string

// Payment actions accepted by ChangePaymentCommand.
const (
	PaymentActionPay    PaymentAction = "pay"
	PaymentActionRefund PaymentAction = "refund"
)

// PaymentActionFromString parses a payment action from its wire
// representation ("pay", "refund").
func PaymentActionFromString(s string) (PaymentAction, error) {
	switch PaymentAction(s) {
	case PaymentActionPay:
		return PaymentActionPay, nil
	case PaymentActionRefund:
		return PaymentActionRefund, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid payment action", s))
	}
}

// ChangePaymentCommand represents a request to settle or refund an order.
// The requester's identity is carried so ownership can be enforced.
type ChangePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy kernel.UUID
	isOperator  bool
	action      PaymentAction

	guard guard.ConstructorGuard
}

// NewChangePaymentCommand creates a command to settle or refund an order.
func NewChangePaymentCommand(
	orderID kernel.UUID,
	requestedBy kernel.UUID,
	isOperator bool,
	action PaymentAction,
) (ChangePaymentCommand, error) {
	cmd := ChangePaymentCommand{
		isOperator: isOperator,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
		cmd.setAction(action),
	); err != nil {
		return ChangePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ChangePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the requesting account identifier.
func (c ChangePaymentCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}

// IsOperator reports whether the requester holds the admin role.
func (c ChangePaymentCommand) IsOperator() bool {
	return c.isOperator
}

// Action returns the requested payment operation.
func (c ChangePaymentCommand) Action() PaymentAction {
	return c.action
}

func (c *ChangePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangePaymentCommand) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *ChangePaymentCommand) setAction(action PaymentAction) error {
	if action != PaymentActionPay && action != PaymentActionRefund {
		return errs.NewValueIsInvalidError("action")
	}

	c.action = action
	return nil
}
