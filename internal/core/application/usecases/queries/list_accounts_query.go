package queries

import (
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/pkg/guard"
)

var ErrListAccountsQueryIsNotConstructed = errors.New(
	"ListAccountsQuery must be created via NewListAccountsQuery constructor",
)

// ListAccountsQuery retrieves accounts with optional role filter and a
// search term matched against email and names. Operator-facing.
type ListAccountsQuery struct {
	role   *account.Role
	search string
	page   Page

	guard guard.ConstructorGuard
}

// NewListAccountsQuery creates a query over all accounts. A nil role
// disables the filter.
func NewListAccountsQuery(role *account.Role, search string, page Page) (ListAccountsQuery, error) {
	if role != nil {
		if err := role.Validate(); err != nil {
			return ListAccountsQuery{}, err
		}
	}

	return ListAccountsQuery{
		role:   role,
		search: search,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

// Role returns the optional role filter.
func (q ListAccountsQuery) Role() *account.Role {
	return q.role
}

// Search returns the search term, empty when unused.
func (q ListAccountsQuery) Search() string {
	return q.search
}

// Page returns the pagination parameters.
func (q ListAccountsQuery) Page() Page {
	return q.page
}

// ListAccountsQueryResponse is one page of accounts plus the total match count.
type ListAccountsQueryResponse struct {
	Items []AccountResponse
	Total int64
	Page  Page
}
