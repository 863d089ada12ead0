package commands

import (
	"context"
	"errors"

	"courier/internal/pkg/errs"
)

// DeleteAccountCommandHandler handles operator account deletion.
// Deleting a delivery-agent account also removes its agent profile in the
// same transaction, so profiles are never orphaned.
type DeleteAccountCommandHandler struct {
	uowFactory AccountAgentUoWFactory
}

// NewDeleteAccountCommandHandler creates a handler for account deletion.
func NewDeleteAccountCommandHandler(uowFactory AccountAgentUoWFactory) DeleteAccountCommandHandler {
	return DeleteAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account deletion command.
// Rejects self-deletion and returns an ObjectNotFoundError when the account
// does not exist.
func (h *DeleteAccountCommandHandler) Handle(ctx context.Context, cmd DeleteAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.AccountID().IsEqual(cmd.RequestedBy()) {
		return ErrCannotDeleteOwnAccount
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	// Get first so a missing account surfaces as not-found, not as a no-op.
	if _, err := accountRepo.Get(ctx, cmd.AccountID()); err != nil {
		return err
	}

	agentRepo := uow.AgentRepository()

	profile, err := agentRepo.GetByAccountID(ctx, cmd.AccountID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if profile != nil {
		if err := agentRepo.Delete(ctx, profile.ID()); err != nil {
			return err
		}
	}

	if err := accountRepo.Delete(ctx, cmd.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
