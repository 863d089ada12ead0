package commands

import (
	"errors"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents an operator request to progress a
// delivery through the hand-off lifecycle. Rating and feedback apply only to
// the delivered target; notes only to the failed target.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	rating     *int
	feedback   string
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to progress a delivery.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	target delivery.Status,
	rating *int,
	feedback string,
	notes string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		feedback: feedback,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
		cmd.setRating(rating),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the target delivery identifier.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested lifecycle status.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

// Rating returns the optional 1-5 receiver rating.
func (c UpdateDeliveryStatusCommand) Rating() *int {
	return c.rating
}

// Feedback returns the optional receiver feedback text.
func (c UpdateDeliveryStatusCommand) Feedback() string {
	return c.feedback
}

// Notes returns the operational notes for a failed delivery.
func (c UpdateDeliveryStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == delivery.StatusAssigned {
		return errs.NewValueIsInvalidError("target status")
	}

	c.target = target
	return nil
}

func (c *UpdateDeliveryStatusCommand) setRating(rating *int) error {
	if rating != nil && (*rating < delivery.MinRating || *rating > delivery.MaxRating) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, delivery.MinRating, delivery.MaxRating)
	}

	c.rating = rating
	return nil
}
