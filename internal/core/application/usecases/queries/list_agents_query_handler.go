package queries

import (
	"context"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListAgentsQueryHandler retrieves pages of agent profiles joined with their
// accounts for the operator console.
type ListAgentsQueryHandler struct {
	db *gorm.DB
}

// NewListAgentsQueryHandler creates a handler for operator agent listings.
func NewListAgentsQueryHandler(db *gorm.DB) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{db: db}
}

// Handle executes the query and returns one page of matching agents.
func (h ListAgentsQueryHandler) Handle(
	ctx context.Context,
	query ListAgentsQuery,
) (ListAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAgentsQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 4)
	if query.Available() != nil {
		where += " AND a.available = ?"
		args = append(args, *query.Available())
	}
	if query.Search() != "" {
		where += " AND (u.email ILIKE ? OR u.first_name ILIKE ? OR u.last_name ILIKE ? OR a.vehicle_number ILIKE ?)"
		term := "%" + query.Search() + "%"
		args = append(args, term, term, term, term)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM agents a JOIN accounts u ON u.id = a.account_id WHERE `+where, args...).
		Scan(&total).Error; err != nil {
		return ListAgentsQueryResponse{}, err
	}

	page := query.Page()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.account_id,
			u.email,
			u.first_name,
			u.last_name,
			a.vehicle_type,
			a.vehicle_number,
			a.license_number,
			a.current_location,
			a.available,
			a.total_deliveries,
			a.rating_sum,
			a.rating_count
		FROM agents a
		JOIN accounts u ON u.id = a.account_id
		WHERE `+where+`
		ORDER BY u.last_name, u.first_name
		LIMIT ? OFFSET ?
	`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListAgentsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]AgentResponse, 0, page.Size)
	for rows.Next() {
		var (
			resp        AgentResponse
			id          uuid.UUID
			accountID   uuid.UUID
			vehicleType int
			ratingSum   int
			ratingCount int
		)
		if err = rows.Scan(
			&id,
			&accountID,
			&resp.Email,
			&resp.FirstName,
			&resp.LastName,
			&vehicleType,
			&resp.VehicleNumber,
			&resp.LicenseNumber,
			&resp.CurrentLocation,
			&resp.Available,
			&resp.TotalDeliveries,
			&ratingSum,
			&ratingCount,
		); err != nil {
			return ListAgentsQueryResponse{}, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListAgentsQueryResponse{}, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(accountID[:])
		if idErr != nil {
			return ListAgentsQueryResponse{}, idErr
		}

		resp.ID = agentID
		resp.AccountID = ownerID
		resp.VehicleType = agent.VehicleType(vehicleType).String()
		resp.Rating = meanRating(ratingSum, ratingCount)
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return ListAgentsQueryResponse{}, err
	}

	return ListAgentsQueryResponse{Items: items, Total: total, Page: page}, nil
}

// meanRating formats the running (sum, count) pair the same way the Agent
// aggregate reports it: two decimals, 0.00 while unrated.
func meanRating(sum, count int) string {
	if count == 0 {
		return "0.00"
	}
	return decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(count))).
		StringFixed(2)
}
