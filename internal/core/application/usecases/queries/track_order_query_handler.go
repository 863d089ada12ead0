package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler serves public barcode tracking. Responses are
// cached in serialized form; the cache is read-through and best-effort, so a
// cache outage degrades to plain database reads.
type TrackOrderQueryHandler struct {
	db     *gorm.DB
	cache  ports.TrackingCache
	logger *slog.Logger
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
// The cache may be nil when caching is disabled.
func NewTrackOrderQueryHandler(db *gorm.DB, cache ports.TrackingCache, logger *slog.Logger) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the tracking query.
// Returns an ObjectNotFoundError when no order carries the barcode.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	barcode := query.Barcode().String()

	if cached, ok := h.fromCache(ctx, barcode); ok {
		return cached, nil
	}

	resp, err := h.fromDatabase(ctx, barcode)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	h.store(ctx, barcode, resp)
	return resp, nil
}

func (h TrackOrderQueryHandler) fromCache(ctx context.Context, barcode string) (TrackOrderQueryResponse, bool) {
	if h.cache == nil {
		return TrackOrderQueryResponse{}, false
	}

	payload, err := h.cache.Get(ctx, barcode)
	if err != nil {
		h.logger.WarnContext(ctx, "tracking cache read failed",
			slog.String("barcode", barcode), slog.Any("error", err))
		return TrackOrderQueryResponse{}, false
	}
	if payload == nil {
		return TrackOrderQueryResponse{}, false
	}

	var resp TrackOrderQueryResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		h.logger.WarnContext(ctx, "tracking cache entry corrupt",
			slog.String("barcode", barcode), slog.Any("error", err))
		return TrackOrderQueryResponse{}, false
	}
	return resp, true
}

func (h TrackOrderQueryHandler) store(ctx context.Context, barcode string, resp TrackOrderQueryResponse) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := h.cache.Set(ctx, barcode, payload); err != nil {
		h.logger.WarnContext(ctx, "tracking cache write failed",
			slog.String("barcode", barcode), slog.Any("error", err))
	}
}

func (h TrackOrderQueryHandler) fromDatabase(ctx context.Context, barcode string) (TrackOrderQueryResponse, error) {
	var resp TrackOrderQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE barcode = ?
	`, barcode).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("barcode", barcode)
	}

	row, err := scanOrderRow(rows)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	resp = TrackOrderQueryResponse{
		OrderID:         row.ID.String(),
		Barcode:         row.Barcode,
		ReceiverName:    row.ReceiverName,
		ReceiverAddress: row.ReceiverAddress,
		Amount:          row.Amount,
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	progress, err := h.deliveryProgress(ctx, row)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	resp.Delivery = progress

	return resp, nil
}

func (h TrackOrderQueryHandler) deliveryProgress(ctx context.Context, row OrderResponse) (*TrackingDelivery, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, assigned_at, picked_up_at, delivered_at
		FROM deliveries
		WHERE order_id = ?
	`, row.ID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		status      int
		assignedAt  time.Time
		pickedUpAt  *time.Time
		deliveredAt *time.Time
	)
	if err := rows.Scan(&status, &assignedAt, &pickedUpAt, &deliveredAt); err != nil {
		return nil, err
	}

	return &TrackingDelivery{
		Status:      delivery.Status(status).String(),
		AssignedAt:  assignedAt,
		PickedUpAt:  pickedUpAt,
		DeliveredAt: deliveredAt,
	}, nil
}
