package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/agent"
	"courier/internal/pkg/errs"
)

// CreateAgentCommandHandler handles delivery agent onboarding. The account
// and the profile are created inside one transaction so a failed profile
// never leaves an orphaned delivery_agent account behind.
type CreateAgentCommandHandler struct {
	uowFactory AccountAgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent onboarding.
func NewCreateAgentCommandHandler(uowFactory AccountAgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent onboarding command.
// Returns an ObjectAlreadyExistsError when the email is taken.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
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

	existing, err := accountRepo.GetByEmail(ctx, cmd.Email())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}

	acc, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Email(),
		cmd.Password(),
		cmd.FirstName(),
		cmd.LastName(),
		account.RoleDeliveryAgent,
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return err
	}

	profile, err := agent.NewAgent(
		cmd.AgentID(),
		cmd.AccountID(),
		cmd.VehicleType(),
		cmd.VehicleNumber(),
		cmd.LicenseNumber(),
	)
	if err != nil {
		return err
	}

	if err := accountRepo.Add(ctx, acc); err != nil {
		return err
	}
	if err := uow.AgentRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
