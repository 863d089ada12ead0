package commands

import (
	"context"
	"errors"
	"log/slog"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// BootstrapAdminCommandHandler seeds the admin account on startup.
// Idempotent: when an account with the configured email already exists the
// handler leaves it untouched, so restarts never reset the admin password.
type BootstrapAdminCommandHandler struct {
	uowFactory AccountUoWFactory
	logger     *slog.Logger
}

// NewBootstrapAdminCommandHandler creates a handler for the admin seed.
func NewBootstrapAdminCommandHandler(
	uowFactory AccountUoWFactory,
	logger *slog.Logger,
) BootstrapAdminCommandHandler {
	return BootstrapAdminCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "bootstrap_admin"),
	}
}

// Handle seeds the admin account unless one with the configured email exists.
func (h *BootstrapAdminCommandHandler) Handle(ctx context.Context, cmd BootstrapAdminCommand) error {
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
		h.logger.InfoContext(ctx, "admin account already exists", "email", cmd.Email())
		return nil
	}

	aggregate, err := account.NewAccount(
		kernel.NewUUID(),
		cmd.Email(),
		cmd.Password(),
		"System",
		"Administrator",
		account.RoleAdmin,
		"",
		"",
	)
	if err != nil {
		return err
	}

	if err := accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "admin account created", "email", cmd.Email())
	return nil
}
