package commands

import (
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrCreateAccountCommandIsNotConstructed = errors.New(
		"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// CreateAccountCommand represents a request to register a new account.
// Used both for customer self-registration (role forced to customer by the
// HTTP layer) and for operator-created accounts of any role.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string
	firstName string
	lastName  string
	role      account.Role
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register a new account.
// Validates that the account ID, email, password, and role are present and
// well-formed; deeper rules (email format, password length) are enforced by
// the Account aggregate.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	email string,
	password string,
	firstName string,
	lastName string,
	role account.Role,
	phone string,
	address string,
) (CreateAccountCommand, error) {
	cmd := CreateAccountCommand{
		firstName: firstName,
		lastName:  lastName,
		phone:     phone,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c CreateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Email returns the login email.
func (c CreateAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the aggregate.
func (c CreateAccountCommand) Password() string {
	return c.password
}

// FirstName returns the account holder's first name.
func (c CreateAccountCommand) FirstName() string {
	return c.firstName
}

// LastName returns the account holder's last name.
func (c CreateAccountCommand) LastName() string {
	return c.lastName
}

// Role returns the requested account role.
func (c CreateAccountCommand) Role() account.Role {
	return c.role
}

// Phone returns the contact phone number.
func (c CreateAccountCommand) Phone() string {
	return c.phone
}

// Address returns the contact address.
func (c CreateAccountCommand) Address() string {
	return c.address
}

func (c *CreateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateAccountCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *CreateAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
