package queries

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the operator dashboard counters together
// with the most recent orders.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates the dashboard query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the dashboard counters and a short list
// of the latest orders.
type GetDashboardStatsQueryResponse struct {
	TotalOrders     int64
	DeliveredOrders int64
	TotalCustomers  int64
	TotalAgents     int64
	RecentOrders    []OrderResponse
}
