package commands

import (
	"context"
)

// UpdateAgentCommandHandler handles operator edits to agent profiles.
type UpdateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentCommandHandler creates a handler for agent profile edits.
func NewUpdateAgentCommandHandler(uowFactory AgentUoWFactory) UpdateAgentCommandHandler {
	return UpdateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent profile edit command.
// Returns an ObjectNotFoundError when the profile does not exist.
func (h *UpdateAgentCommandHandler) Handle(ctx context.Context, cmd UpdateAgentCommand) error {
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

	aggregate, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err := aggregate.UpdateVehicle(cmd.VehicleType(), cmd.VehicleNumber(), cmd.LicenseNumber()); err != nil {
		return err
	}
	aggregate.UpdateLocation(cmd.CurrentLocation())
	aggregate.SetAvailability(cmd.Available())

	if err := agentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
