package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves every order owned by one customer,
// newest first.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the owning customer account identifier.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}
