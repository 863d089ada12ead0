package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves a single account by its identifier.
type GetAccountQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query for one account.
func NewGetAccountQuery(accountID kernel.UUID) (GetAccountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountID returns the requested account identifier.
func (q GetAccountQuery) AccountID() kernel.UUID {
	return q.accountID
}
