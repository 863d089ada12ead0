package queries

import (
	"errors"

	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders across all customers with optional status
// filter and barcode search. Operator-facing.
type ListOrdersQuery struct {
	status  *order.Status
	barcode string
	page    Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query over all orders. A nil status disables
// the filter; barcode is a substring match.
func NewListOrdersQuery(status *order.Status, barcode string, page Page) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		status:  status,
		barcode: barcode,
		page:    page,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Barcode returns the barcode search term, empty when unused.
func (q ListOrdersQuery) Barcode() string {
	return q.barcode
}

// Page returns the pagination parameters.
func (q ListOrdersQuery) Page() Page {
	return q.page
}

// ListOrdersQueryResponse is one page of orders plus the total match count.
type ListOrdersQueryResponse struct {
	Items []OrderResponse
	Total int64
	Page  Page
}
