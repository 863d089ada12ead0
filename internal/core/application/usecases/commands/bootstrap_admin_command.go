package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrBootstrapAdminCommandIsNotConstructed = errors.New(
	"BootstrapAdminCommand must be created via NewBootstrapAdminCommand constructor",
)

// BootstrapAdminCommand represents a request to seed the first admin account
// at startup. Registration only produces customers, so without this seed a
// fresh deployment has no way to obtain an admin token.
type BootstrapAdminCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewBootstrapAdminCommand creates a command to seed the admin account.
func NewBootstrapAdminCommand(email, password string) (BootstrapAdminCommand, error) {
	cmd := BootstrapAdminCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return BootstrapAdminCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BootstrapAdminCommand) Validate() error {
	return c.guard.Validate(ErrBootstrapAdminCommandIsNotConstructed)
}

// Email returns the admin login email.
func (c BootstrapAdminCommand) Email() string {
	return c.email
}

// Password returns the plaintext admin password to be hashed by the aggregate.
func (c BootstrapAdminCommand) Password() string {
	return c.password
}

func (c *BootstrapAdminCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *BootstrapAdminCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
