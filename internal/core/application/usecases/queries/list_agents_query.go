package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrListAgentsQueryIsNotConstructed = errors.New(
	"ListAgentsQuery must be created via NewListAgentsQuery constructor",
)

// ListAgentsQuery retrieves delivery agent profiles joined with their
// accounts, with optional availability filter and a search term matched
// against email, names, and vehicle number. Operator-facing.
type ListAgentsQuery struct {
	available *bool
	search    string
	page      Page

	guard guard.ConstructorGuard
}

// NewListAgentsQuery creates a query over all agent profiles. A nil
// available disables the filter.
func NewListAgentsQuery(available *bool, search string, page Page) ListAgentsQuery {
	return ListAgentsQuery{
		available: available,
		search:    search,
		page:      page,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}

// Available returns the optional availability filter.
func (q ListAgentsQuery) Available() *bool {
	return q.available
}

// Search returns the search term, empty when unused.
func (q ListAgentsQuery) Search() string {
	return q.search
}

// Page returns the pagination parameters.
func (q ListAgentsQuery) Page() Page {
	return q.page
}

// ListAgentsQueryResponse is one page of agents plus the total match count.
type ListAgentsQueryResponse struct {
	Items []AgentResponse
	Total int64
	Page  Page
}
