package order

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrReceiverNameIsRequired is returned when creating an order without a receiver name.
	ErrReceiverNameIsRequired = errs.NewValueIsRequiredError("receiverName")
	// ErrReceiverAddressIsRequired is returned when creating an order without a receiver address.
	ErrReceiverAddressIsRequired = errs.NewValueIsRequiredError("receiverAddress")
)

// Order represents a customer order in the courier system. It is the
// aggregate root that manages the order lifecycle from creation through
// transit to delivery or cancellation, together with the independent payment
// lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - The barcode is assigned at creation, immutable, and globally unique
//   - Status transitions follow the fixed graph in Status
//   - Payment transitions follow the one-way graph in PaymentStatus
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	barcode         kernel.Barcode
	receiverName    string
	receiverAddress string
	amount          kernel.Money
	status          Status
	paymentStatus   PaymentStatus
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// NewOrder creates a new Order owned by the given customer.
// The barcode is generated here from a random 128-bit value and never changes
// afterwards; there is no collision retry because the probability is
// negligible and storage enforces uniqueness.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: owning customer account (must be a valid UUID)
//   - receiverName, receiverAddress: destination details (required)
//   - amount: order total (must be a constructed Money value)
//
// The order starts with status pending and payment status unpaid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	receiverName string,
	receiverAddress string,
	amount kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		barcode:       kernel.NewBarcode(),
		status:        StatusPending,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setReceiverName(receiverName),
		order.setReceiverAddress(receiverAddress),
		order.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// keeping the stored barcode, statuses, and timestamps. All invariants are
// re-validated so corrupt rows cannot reach the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	barcode kernel.Barcode,
	receiverName string,
	receiverAddress string,
	amount kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setBarcode(barcode),
		order.setReceiverName(receiverName),
		order.setReceiverAddress(receiverAddress),
		order.setAmount(amount),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer account identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Barcode returns the order's immutable tracking barcode.
func (o *Order) Barcode() kernel.Barcode {
	return o.barcode
}

// ReceiverName returns the destination contact name.
func (o *Order) ReceiverName() string {
	return o.receiverName
}

// ReceiverAddress returns the destination address.
func (o *Order) ReceiverAddress() string {
	return o.receiverAddress
}

// Amount returns the order total.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order along an edge of the lifecycle graph.
// The order keeps its state and an InvalidTransitionError is returned when
// the target is not an allowed successor of the current status.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ForceInTransit puts the order into in_transit as part of delivery
// assignment, regardless of the lifecycle graph. This deliberately bypasses
// the normal transition guard: assignment is an operator action that takes
// precedence over the customer-facing lifecycle.
func (o *Order) ForceInTransit() {
	o.status = StatusInTransit
	o.touch()
}

// MarkPaid settles the order amount. Valid only while unpaid.
func (o *Order) MarkPaid() error {
	newStatus, err := o.paymentStatus.MarkPaid()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.touch()
	return nil
}

// Refund returns a settled amount. Valid only while paid.
func (o *Order) Refund() error {
	newStatus, err := o.paymentStatus.Refund()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	o.touch()
	return nil
}

// IsDeliverable reports whether the order may be physically delivered:
// status is pending or in_transit AND the amount has been paid.
func (o *Order) IsDeliverable() bool {
	return (o.status == StatusPending || o.status == StatusInTransit) &&
		o.paymentStatus == PaymentPaid
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	o.barcode = barcode
	return nil
}

func (o *Order) setReceiverName(receiverName string) error {
	if receiverName == "" {
		return ErrReceiverNameIsRequired
	}
	o.receiverName = receiverName
	return nil
}

func (o *Order) setReceiverAddress(receiverAddress string) error {
	if receiverAddress == "" {
		return ErrReceiverAddressIsRequired
	}
	o.receiverAddress = receiverAddress
	return nil
}

func (o *Order) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.amount = amount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}
