package commands

import (
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCreateAgentCommandIsNotConstructed = errors.New(
	"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
)

// CreateAgentCommand represents an operator request to onboard a delivery
// agent: a new account with the delivery_agent role plus its profile,
// created atomically.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	accountID     kernel.UUID
	agentID       kernel.UUID
	email         string
	password      string
	firstName     string
	lastName      string
	phone         string
	address       string
	vehicleType   agent.VehicleType
	vehicleNumber string
	licenseNumber string

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to onboard a delivery agent.
func NewCreateAgentCommand(
	accountID kernel.UUID,
	agentID kernel.UUID,
	email string,
	password string,
	firstName string,
	lastName string,
	phone string,
	address string,
	vehicleType agent.VehicleType,
	vehicleNumber string,
	licenseNumber string,
) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		firstName:     firstName,
		lastName:      lastName,
		phone:         phone,
		address:       address,
		vehicleNumber: vehicleNumber,
		licenseNumber: licenseNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setAgentID(agentID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setVehicleType(vehicleType),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c CreateAgentCommand) AccountID() kernel.UUID {
	return c.accountID
}

// AgentID returns the identifier for the new agent profile.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Email returns the login email for the new account.
func (c CreateAgentCommand) Email() string {
	return c.email
}

// Password returns the plaintext password for the new account.
func (c CreateAgentCommand) Password() string {
	return c.password
}

// FirstName returns the agent's first name.
func (c CreateAgentCommand) FirstName() string {
	return c.firstName
}

// LastName returns the agent's last name.
func (c CreateAgentCommand) LastName() string {
	return c.lastName
}

// Phone returns the agent's contact phone number.
func (c CreateAgentCommand) Phone() string {
	return c.phone
}

// Address returns the agent's contact address.
func (c CreateAgentCommand) Address() string {
	return c.address
}

// VehicleType returns the agent's vehicle classification.
func (c CreateAgentCommand) VehicleType() agent.VehicleType {
	return c.vehicleType
}

// VehicleNumber returns the vehicle registration identifier.
func (c CreateAgentCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// LicenseNumber returns the driving license identifier.
func (c CreateAgentCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c *CreateAgentCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateAgentCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *CreateAgentCommand) setVehicleType(vehicleType agent.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}
