package queries

import (
	"errors"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery retrieves delivery assignments with optional status and
// agent filters. Operator-facing.
type ListDeliveriesQuery struct {
	status  *delivery.Status
	agentID *kernel.UUID
	page    Page

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a query over all deliveries. Nil filters are
// disabled.
func NewListDeliveriesQuery(
	status *delivery.Status,
	agentID *kernel.UUID,
	page Page,
) (ListDeliveriesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListDeliveriesQuery{}, err
		}
	}
	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return ListDeliveriesQuery{}, err
		}
	}

	return ListDeliveriesQuery{
		status:  status,
		agentID: agentID,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

// AgentID returns the optional agent filter.
func (q ListDeliveriesQuery) AgentID() *kernel.UUID {
	return q.agentID
}

// Page returns the pagination parameters.
func (q ListDeliveriesQuery) Page() Page {
	return q.page
}

// ListDeliveriesQueryResponse is one page of deliveries plus the total match
// count.
type ListDeliveriesQueryResponse struct {
	Items []DeliveryResponse
	Total int64
	Page  Page
}
