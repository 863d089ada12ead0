package delivery

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// Rating bounds for completed deliveries.
const (
	MinRating = 1
	MaxRating = 5
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery represents the assignment of an order to a delivery agent and
// tracks the physical hand-off lifecycle. It is the aggregate root linking
// exactly one order to exactly one agent.
//
// Delivery follows these invariants:
//   - Must reference a valid order and a valid agent
//   - At most one delivery may exist per order (enforced by storage)
//   - Status transitions follow the fixed graph in Status
//   - Rating and feedback exist only on delivered assignments
//   - Can only be created through NewDelivery or RestoreDelivery
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	agentID     kernel.UUID
	status      Status
	assignedAt  time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	rating      *int
	feedback    string
	notes       string
	guard       guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in the assigned status, stamping the
// assignment time. Uniqueness per order is the storage layer's concern; the
// aggregate only guarantees referential validity.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, agentID kernel.UUID) (*Delivery, error) {
	d := &Delivery{
		status:     StatusAssigned,
		assignedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	agentID kernel.UUID,
	status Status,
	assignedAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	rating *int,
	feedback string,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:  assignedAt,
		pickedUpAt:  pickedUpAt,
		deliveredAt: deliveredAt,
		feedback:    feedback,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAgentID(agentID),
		d.setStatus(status),
		d.setRating(rating),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the assigned order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// AgentID returns the assigned agent's identifier.
func (d *Delivery) AgentID() kernel.UUID {
	return d.agentID
}

// Status returns the current lifecycle status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedAt returns when the delivery was created.
func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the package was collected, nil before pickup.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the package was handed over, nil before completion.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Rating returns the optional 1-5 receiver rating, nil when unrated.
func (d *Delivery) Rating() *int {
	return d.rating
}

// Feedback returns the optional receiver feedback text.
func (d *Delivery) Feedback() string {
	return d.feedback
}

// Notes returns the operational notes, set on failure.
func (d *Delivery) Notes() string {
	return d.notes
}

// MarkPickedUp records the package collection. Valid only from assigned.
func (d *Delivery) MarkPickedUp() error {
	newStatus, err := d.status.TransitionTo(StatusPickedUp)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.pickedUpAt = &now
	return nil
}

// MarkInTransit records the optional transit leg. Valid only from picked_up.
func (d *Delivery) MarkInTransit() error {
	newStatus, err := d.status.TransitionTo(StatusInTransit)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete records the successful hand-off, stamping the delivery time and
// storing the optional 1-5 rating and feedback. Valid from picked_up or
// in_transit.
func (d *Delivery) Complete(rating *int, feedback string) error {
	newStatus, err := d.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}
	if err := d.setRating(rating); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.deliveredAt = &now
	d.feedback = feedback
	return nil
}

// Fail records that the delivery cannot be completed, storing operational
// notes. Valid from any non-terminal state.
func (d *Delivery) Fail(notes string) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidTransitionError("delivery", d.status.String(), StatusFailed.String())
	}

	d.status = StatusFailed
	d.notes = notes
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentID", err)
	}
	d.agentID = agentID
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setRating(rating *int) error {
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, MinRating, MaxRating)
	}
	d.rating = rating
	return nil
}
