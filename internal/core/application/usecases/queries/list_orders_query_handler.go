package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders for the operator console.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for operator order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of matching orders.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, int(*query.Status()))
	}
	if query.Barcode() != "" {
		where += " AND barcode LIKE ?"
		args = append(args, "%"+query.Barcode()+"%")
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	page := query.Page()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]OrderResponse, 0, page.Size)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Items: items, Total: total, Page: page}, nil
}
