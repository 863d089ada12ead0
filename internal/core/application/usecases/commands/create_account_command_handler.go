package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/pkg/errs"
)

// CreateAccountCommandHandler handles the business logic for account
// registration. Rejects duplicate emails before creating the aggregate.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAccountCommandHandler creates a handler for account registration.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
// Returns an ObjectAlreadyExistsError when the email is taken.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
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

	aggregate, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Email(),
		cmd.Password(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.Role(),
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return err
	}

	if err := accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
