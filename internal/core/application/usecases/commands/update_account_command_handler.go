package commands

import (
	"context"
)

// UpdateAccountCommandHandler handles operator edits to existing accounts.
type UpdateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateAccountCommandHandler creates a handler for account edits.
func NewUpdateAccountCommandHandler(uowFactory AccountUoWFactory) UpdateAccountCommandHandler {
	return UpdateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account edit command.
// Returns an ObjectNotFoundError when the account does not exist.
func (h *UpdateAccountCommandHandler) Handle(ctx context.Context, cmd UpdateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	aggregate, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	aggregate.UpdateProfile(cmd.FirstName(), cmd.LastName(), cmd.Phone(), cmd.Address())
	if err := aggregate.ChangeRole(cmd.Role()); err != nil {
		return err
	}
	if cmd.Active() {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}
	if cmd.Password() != "" {
		if err := aggregate.SetPassword(cmd.Password()); err != nil {
			return err
		}
	}

	if err := accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
