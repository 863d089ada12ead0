package agent

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Rating bounds for completed deliveries.
const (
	MinRating = 1
	MaxRating = 5
)

// Domain errors for agent operations.
var (
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	// ErrVehicleNumberIsRequired is returned when creating an agent without a vehicle number.
	ErrVehicleNumberIsRequired = errs.NewValueIsRequiredError("vehicleNumber")
	// ErrLicenseNumberIsRequired is returned when creating an agent without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
)

// Agent represents a delivery agent profile in the system. It is an aggregate
// root extending an Account with role delivery_agent: vehicle identification,
// availability, a coarse free-text location, and derived performance
// aggregates.
//
// The performance aggregates (total deliveries, rating) are never authored
// directly. They are maintained incrementally as a running (sum, count) pair
// each time a delivery completes, so completion stays O(1) instead of
// re-scanning the agent's delivery history. A periodic reconciliation job
// recomputes them from storage and applies corrections through ApplyRecount.
//
// Business rules:
//   - Exactly one profile per delivery-agent account
//   - Rating is the simple arithmetic mean of all recorded 1-5 ratings,
//     reported with two-decimal precision, 0.00 while unrated
type Agent struct {
	id              kernel.UUID
	accountID       kernel.UUID
	vehicleType     VehicleType
	vehicleNumber   string
	licenseNumber   string
	currentLocation string
	available       bool
	totalDeliveries int
	ratingSum       int
	ratingCount     int
	guard           guard.ConstructorGuard
}

// NewAgent creates a new available Agent profile with zeroed aggregates.
//
// Parameters:
//   - id: unique identifier for the profile (must be a valid UUID)
//   - accountID: the owning account (must be a valid UUID)
//   - vehicleType: one of bike, car, van, truck
//   - vehicleNumber, licenseNumber: required identifiers
func NewAgent(
	id kernel.UUID,
	accountID kernel.UUID,
	vehicleType VehicleType,
	vehicleNumber string,
	licenseNumber string,
) (*Agent, error) {
	a := &Agent{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setAccountID(accountID),
		a.setVehicleType(vehicleType),
		a.setVehicleNumber(vehicleNumber),
		a.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent aggregate from persistent storage,
// including its location, availability, and derived aggregates.
func RestoreAgent(
	id kernel.UUID,
	accountID kernel.UUID,
	vehicleType VehicleType,
	vehicleNumber string,
	licenseNumber string,
	currentLocation string,
	available bool,
	totalDeliveries int,
	ratingSum int,
	ratingCount int,
) (*Agent, error) {
	a := &Agent{
		currentLocation: currentLocation,
		available:       available,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setAccountID(accountID),
		a.setVehicleType(vehicleType),
		a.setVehicleNumber(vehicleNumber),
		a.setLicenseNumber(licenseNumber),
		a.setAggregates(totalDeliveries, ratingSum, ratingCount),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// AccountID returns the owning account's identifier.
func (a *Agent) AccountID() kernel.UUID {
	return a.accountID
}

// VehicleType returns the agent's vehicle classification.
func (a *Agent) VehicleType() VehicleType {
	return a.vehicleType
}

// VehicleNumber returns the vehicle registration identifier.
func (a *Agent) VehicleNumber() string {
	return a.vehicleNumber
}

// LicenseNumber returns the driving license identifier.
func (a *Agent) LicenseNumber() string {
	return a.licenseNumber
}

// CurrentLocation returns the agent's free-text location.
func (a *Agent) CurrentLocation() string {
	return a.currentLocation
}

// IsAvailable reports whether the agent can take new assignments.
func (a *Agent) IsAvailable() bool {
	return a.available
}

// TotalDeliveries returns the number of deliveries the agent completed.
func (a *Agent) TotalDeliveries() int {
	return a.totalDeliveries
}

// RatingSum returns the running sum of recorded ratings, used by persistence.
func (a *Agent) RatingSum() int {
	return a.ratingSum
}

// RatingCount returns the number of recorded ratings, used by persistence.
func (a *Agent) RatingCount() int {
	return a.ratingCount
}

// Rating returns the agent's mean rating with two-decimal precision.
// The simple arithmetic mean of all recorded ratings; 0.00 while unrated.
func (a *Agent) Rating() decimal.Decimal {
	if a.ratingCount == 0 {
		return decimal.Zero.Round(2)
	}
	return decimal.NewFromInt(int64(a.ratingSum)).
		Div(decimal.NewFromInt(int64(a.ratingCount))).
		Round(2)
}

// RecordCompletedDelivery updates the derived aggregates after one of the
// agent's deliveries reaches the delivered status. The optional rating must
// be between 1 and 5; a nil rating counts the delivery without affecting the
// mean.
func (a *Agent) RecordCompletedDelivery(rating *int) error {
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, MinRating, MaxRating)
	}

	a.totalDeliveries++
	if rating != nil {
		a.ratingSum += *rating
		a.ratingCount++
	}
	return nil
}

// ApplyRecount replaces the derived aggregates with values recomputed from
// the delivery history. Used by the reconciliation job; never by request
// handling.
func (a *Agent) ApplyRecount(totalDeliveries, ratingSum, ratingCount int) error {
	return a.setAggregates(totalDeliveries, ratingSum, ratingCount)
}

// SetAvailability toggles whether the agent can take new assignments.
func (a *Agent) SetAvailability(available bool) {
	a.available = available
}

// UpdateLocation replaces the agent's free-text location.
func (a *Agent) UpdateLocation(location string) {
	a.currentLocation = location
}

// UpdateVehicle replaces the agent's vehicle details.
func (a *Agent) UpdateVehicle(vehicleType VehicleType, vehicleNumber, licenseNumber string) error {
	return errors.Join(
		a.setVehicleType(vehicleType),
		a.setVehicleNumber(vehicleNumber),
		a.setLicenseNumber(licenseNumber),
	)
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("accountID", err)
	}
	a.accountID = accountID
	return nil
}

func (a *Agent) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	a.vehicleType = vehicleType
	return nil
}

func (a *Agent) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}
	a.vehicleNumber = vehicleNumber
	return nil
}

func (a *Agent) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	a.licenseNumber = licenseNumber
	return nil
}

func (a *Agent) setAggregates(totalDeliveries, ratingSum, ratingCount int) error {
	if totalDeliveries < 0 || ratingSum < 0 || ratingCount < 0 {
		return errs.NewValueIsInvalidError("agent aggregates")
	}
	if ratingCount > 0 {
		mean := float64(ratingSum) / float64(ratingCount)
		if mean < MinRating || mean > MaxRating {
			return errs.NewValueIsInvalidError("agent rating")
		}
	}
	a.totalDeliveries = totalDeliveries
	a.ratingSum = ratingSum
	a.ratingCount = ratingCount
	return nil
}
