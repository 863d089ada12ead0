package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReceiverNameIsRequired    = errors.New("receiver name is required")
	ErrReceiverAddressIsRequired = errors.New("receiver address is required")
)

// CreateOrderCommand represents a customer request to place a new order.
// Encapsulates the destination details and the order amount; the barcode is
// generated by the aggregate, never supplied.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	amount, _ := kernel.NewMoneyFromString("149.90")
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "Jane Doe", "1 Main St", amount)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	receiverName    string
	receiverAddress string
	amount          kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, destination details, and the amount.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	receiverName string,
	receiverAddress string,
	amount kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setReceiverName(receiverName),
		cmd.setReceiverAddress(receiverAddress),
		cmd.setAmount(amount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer account identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ReceiverName returns the destination contact name.
func (c CreateOrderCommand) ReceiverName() string {
	return c.receiverName
}

// ReceiverAddress returns the destination address.
func (c CreateOrderCommand) ReceiverAddress() string {
	return c.receiverAddress
}

// Amount returns the order total.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setReceiverName(receiverName string) error {
	if receiverName == "" {
		return ErrReceiverNameIsRequired
	}

	c.receiverName = receiverName
	return nil
}

func (c *CreateOrderCommand) setReceiverAddress(receiverAddress string) error {
	if receiverAddress == "" {
		return ErrReceiverAddressIsRequired
	}

	c.receiverAddress = receiverAddress
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
