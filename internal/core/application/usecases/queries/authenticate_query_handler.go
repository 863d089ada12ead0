package queries

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// AuthenticateQueryResponse is the verified identity of a login attempt.
type AuthenticateQueryResponse struct {
	AccountID kernel.UUID
	Role      account.Role
}

// AuthenticateQueryHandler verifies login credentials against the stored
// bcrypt hash. It goes through the account aggregate rather than a raw
// projection so the password check stays in the domain.
type AuthenticateQueryHandler struct {
	accounts ports.AccountRepository
}

// NewAuthenticateQueryHandler creates a credential check handler.
func NewAuthenticateQueryHandler(accounts ports.AccountRepository) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{accounts: accounts}
}

// Handle verifies the credentials. Unknown emails, wrong passwords, and
// deactivated accounts all yield the same UnauthorizedError so callers
// cannot probe for registered addresses.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	aggregate, err := h.accounts.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
		}
		return AuthenticateQueryResponse{}, err
	}

	if !aggregate.IsActive() || !aggregate.Authenticate(query.Password()) {
		return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("invalid credentials")
	}

	return AuthenticateQueryResponse{
		AccountID: aggregate.ID(),
		Role:      aggregate.Role(),
	}, nil
}
