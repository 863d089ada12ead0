package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var (
	ErrDeleteAccountCommandIsNotConstructed = errors.New(
		"DeleteAccountCommand must be created via NewDeleteAccountCommand constructor",
	)
	ErrCannotDeleteOwnAccount = errors.New("operators cannot delete their own account")
)

// DeleteAccountCommand represents an operator request to remove an account.
// Carries the requesting operator's identity so self-deletion can be
// rejected.
type DeleteAccountCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	requestedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAccountCommand creates a command to remove an account.
func NewDeleteAccountCommand(accountID, requestedBy kernel.UUID) (DeleteAccountCommand, error) {
	cmd := DeleteAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRequestedBy(requestedBy),
	); err != nil {
		return DeleteAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAccountCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAccountCommandIsNotConstructed)
}

// AccountID returns the account to delete.
func (c DeleteAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// RequestedBy returns the operator performing the deletion.
func (c DeleteAccountCommand) RequestedBy() kernel.UUID {
	return c.requestedBy
}

func (c *DeleteAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *DeleteAccountCommand) setRequestedBy(requestedBy kernel.UUID) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
