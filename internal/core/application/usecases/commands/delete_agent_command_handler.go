package commands

import (
	"context"
)

// DeleteAgentCommandHandler handles operator removal of a delivery agent.
// Removes the profile and its account in one transaction, mirroring the
// cascade a foreign key with ON DELETE CASCADE would perform.
type DeleteAgentCommandHandler struct {
	uowFactory AccountAgentUoWFactory
}

// NewDeleteAgentCommandHandler creates a handler for agent deletion.
func NewDeleteAgentCommandHandler(uowFactory AccountAgentUoWFactory) DeleteAgentCommandHandler {
	return DeleteAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent deletion command.
// Returns an ObjectNotFoundError when the agent does not exist.
func (h *DeleteAgentCommandHandler) Handle(ctx context.Context, cmd DeleteAgentCommand) error {
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

	agentRepo := uow.AgentRepository()

	profile, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err := agentRepo.Delete(ctx, profile.ID()); err != nil {
		return err
	}

	if err := uow.AccountRepository().Delete(ctx, profile.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
