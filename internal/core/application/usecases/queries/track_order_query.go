package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves an order by its public tracking barcode.
// This is the sole unauthenticated read path; the payload shape matches
// authenticated order retrieval, extended with delivery progress when an
// assignment exists.
type TrackOrderQuery struct {
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for barcode tracking.
func NewTrackOrderQuery(barcode kernel.Barcode) (TrackOrderQuery, error) {
	if err := barcode.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		barcode: barcode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Barcode returns the tracking barcode.
func (q TrackOrderQuery) Barcode() kernel.Barcode {
	return q.barcode
}

// TrackingDelivery is the delivery progress section of a tracking response.
type TrackingDelivery struct {
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// TrackOrderQueryResponse is the public tracking payload. JSON tags are
// declared here because the response is cached in serialized form.
type TrackOrderQueryResponse struct {
	OrderID         string            `json:"order_id"`
	Barcode         string            `json:"barcode"`
	ReceiverName    string            `json:"receiver_name"`
	ReceiverAddress string            `json:"receiver_address"`
	Amount          string            `json:"amount"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Delivery        *TrackingDelivery `json:"delivery,omitempty"`
}
