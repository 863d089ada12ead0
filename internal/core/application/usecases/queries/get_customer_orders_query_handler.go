package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's orders from the
// database, newest first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// queries. Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
