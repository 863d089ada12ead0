package queries

import (
	"database/sql"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderColumns is the projection shared by every order read model.
const orderColumns = `
	id,
	customer_id,
	barcode,
	receiver_name,
	receiver_address,
	amount,
	status,
	payment_status,
	created_at,
	updated_at
`

// scanOrderRow maps one row of the orderColumns projection to the read model.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp          OrderResponse
		id            uuid.UUID
		customerID    uuid.UUID
		amount        decimal.Decimal
		status        int
		paymentStatus int
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&resp.Barcode,
		&resp.ReceiverName,
		&resp.ReceiverAddress,
		&amount,
		&status,
		&paymentStatus,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.CustomerID = ownerID
	resp.Amount = amount.StringFixed(2)
	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
	return resp, nil
}
