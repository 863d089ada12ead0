package commands

import (
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrUpdateAccountCommandIsNotConstructed = errors.New(
	"UpdateAccountCommand must be created via NewUpdateAccountCommand constructor",
)

// UpdateAccountCommand represents an operator request to edit an account:
// contact details, role, active flag, and optionally a new password.
// An empty password leaves the stored hash unchanged.
type UpdateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	firstName string
	lastName  string
	phone     string
	address   string
	role      account.Role
	active    bool
	password  string

	guard guard.ConstructorGuard
}

// NewUpdateAccountCommand creates a command to edit an existing account.
func NewUpdateAccountCommand(
	accountID kernel.UUID,
	firstName string,
	lastName string,
	phone string,
	address string,
	role account.Role,
	active bool,
	password string,
) (UpdateAccountCommand, error) {
	cmd := UpdateAccountCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		address:   address,
		active:    active,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRole(role),
	); err != nil {
		return UpdateAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountCommandIsNotConstructed)
}

// AccountID returns the target account identifier.
func (c UpdateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// FirstName returns the new first name.
func (c UpdateAccountCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name.
func (c UpdateAccountCommand) LastName() string {
	return c.lastName
}

// Phone returns the new contact phone number.
func (c UpdateAccountCommand) Phone() string {
	return c.phone
}

// Address returns the new contact address.
func (c UpdateAccountCommand) Address() string {
	return c.address
}

// Role returns the role the account should hold after the update.
func (c UpdateAccountCommand) Role() account.Role {
	return c.role
}

// Active returns the active flag the account should hold after the update.
func (c UpdateAccountCommand) Active() bool {
	return c.active
}

// Password returns the new plaintext password, empty when unchanged.
func (c UpdateAccountCommand) Password() string {
	return c.password
}

func (c *UpdateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *UpdateAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
