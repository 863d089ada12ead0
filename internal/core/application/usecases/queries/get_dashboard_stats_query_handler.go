package queries

import (
	"context"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const recentOrdersLimit = 10

// GetDashboardStatsQueryHandler aggregates the counters shown on the operator
// dashboard.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for the dashboard query.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the query and returns the dashboard counters.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var response GetDashboardStatsQueryResponse
	db := h.db.WithContext(ctx)

	if err := db.Raw(`SELECT COUNT(*) FROM orders`).
		Scan(&response.TotalOrders).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(*) FROM orders WHERE status = ?`, int(order.StatusDelivered)).
		Scan(&response.DeliveredOrders).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(*) FROM accounts WHERE role = ?`, int(account.RoleCustomer)).
		Scan(&response.TotalCustomers).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(*) FROM agents`).
		Scan(&response.TotalAgents).Error; err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	rows, err := db.Raw(
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT ?`,
		recentOrdersLimit,
	).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	response.RecentOrders = make([]OrderResponse, 0, recentOrdersLimit)
	for rows.Next() {
		item, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetDashboardStatsQueryResponse{}, scanErr
		}
		response.RecentOrders = append(response.RecentOrders, item)
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return response, nil
}
