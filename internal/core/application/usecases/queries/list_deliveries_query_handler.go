package queries

import (
	"context"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler retrieves pages of delivery assignments joined
// with their orders for the operator console.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for operator delivery
// listings.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns one page of matching deliveries.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) (ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)
	if query.Status() != nil {
		where += " AND d.status = ?"
		args = append(args, int(*query.Status()))
	}
	if query.AgentID() != nil {
		where += " AND d.agent_id = ?"
		args = append(args, query.AgentID().Bytes())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM deliveries d WHERE `+where, args...).
		Scan(&total).Error; err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	page := query.Page()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.agent_id,
			o.barcode,
			d.status,
			d.assigned_at,
			d.picked_up_at,
			d.delivered_at,
			d.rating,
			d.feedback,
			d.notes
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE `+where+`
		ORDER BY d.assigned_at DESC
		LIMIT ? OFFSET ?
	`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]DeliveryResponse, 0, page.Size)
	for rows.Next() {
		var (
			resp    DeliveryResponse
			id      uuid.UUID
			orderID uuid.UUID
			agentID uuid.UUID
			status  int
		)
		if err = rows.Scan(
			&id,
			&orderID,
			&agentID,
			&resp.Barcode,
			&status,
			&resp.AssignedAt,
			&resp.PickedUpAt,
			&resp.DeliveredAt,
			&resp.Rating,
			&resp.Feedback,
			&resp.Notes,
		); err != nil {
			return ListDeliveriesQueryResponse{}, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListDeliveriesQueryResponse{}, idErr
		}
		orderUUID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return ListDeliveriesQueryResponse{}, idErr
		}
		agentUUID, idErr := kernel.UUIDFromBytes(agentID[:])
		if idErr != nil {
			return ListDeliveriesQueryResponse{}, idErr
		}

		resp.ID = deliveryID
		resp.OrderID = orderUUID
		resp.AgentID = agentUUID
		resp.Status = delivery.Status(status).String()
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return ListDeliveriesQueryResponse{}, err
	}

	return ListDeliveriesQueryResponse{Items: items, Total: total, Page: page}, nil
}
