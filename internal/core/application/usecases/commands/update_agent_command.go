package commands

import (
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrUpdateAgentCommandIsNotConstructed = errors.New(
	"UpdateAgentCommand must be created via NewUpdateAgentCommand constructor",
)

// UpdateAgentCommand represents an operator request to edit a delivery
// agent's profile: vehicle details, availability, and current location.
// Performance aggregates are never edited through this command.
type UpdateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID         kernel.UUID
	vehicleType     agent.VehicleType
	vehicleNumber   string
	licenseNumber   string
	currentLocation string
	available       bool

	guard guard.ConstructorGuard
}

// NewUpdateAgentCommand creates a command to edit an agent profile.
func NewUpdateAgentCommand(
	agentID kernel.UUID,
	vehicleType agent.VehicleType,
	vehicleNumber string,
	licenseNumber string,
	currentLocation string,
	available bool,
) (UpdateAgentCommand, error) {
	cmd := UpdateAgentCommand{
		vehicleNumber:   vehicleNumber,
		licenseNumber:   licenseNumber,
		currentLocation: currentLocation,
		available:       available,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setVehicleType(vehicleType),
	); err != nil {
		return UpdateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentCommandIsNotConstructed)
}

// AgentID returns the target agent profile identifier.
func (c UpdateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// VehicleType returns the new vehicle classification.
func (c UpdateAgentCommand) VehicleType() agent.VehicleType {
	return c.vehicleType
}

// VehicleNumber returns the new vehicle registration identifier.
func (c UpdateAgentCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// LicenseNumber returns the new driving license identifier.
func (c UpdateAgentCommand) LicenseNumber() string {
	return c.licenseNumber
}

// CurrentLocation returns the new free-text location.
func (c UpdateAgentCommand) CurrentLocation() string {
	return c.currentLocation
}

// Available returns the availability flag after the update.
func (c UpdateAgentCommand) Available() bool {
	return c.available
}

func (c *UpdateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateAgentCommand) setVehicleType(vehicleType agent.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
