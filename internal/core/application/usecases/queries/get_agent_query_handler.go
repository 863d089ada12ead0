package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentQueryHandler retrieves a single agent profile joined with its
// account.
type GetAgentQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentQueryHandler creates a handler for single agent lookups.
func NewGetAgentQueryHandler(db *gorm.DB) GetAgentQueryHandler {
	return GetAgentQueryHandler{db: db}
}

// Handle executes the query and returns the agent read model.
func (h GetAgentQueryHandler) Handle(
	ctx context.Context,
	query GetAgentQuery,
) (AgentResponse, error) {
	if err := query.Validate(); err != nil {
		return AgentResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE a.id = ?
	`, query.AgentID().Bytes()).Row()

	var (
		resp        AgentResponse
		id          uuid.UUID
		accountID   uuid.UUID
		vehicleType int
		ratingSum   int
		ratingCount int
	)
	err := row.Scan(
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
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AgentResponse{}, errs.NewObjectNotFoundError("agent", query.AgentID().String())
		}
		return AgentResponse{}, err
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AgentResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(accountID[:])
	if err != nil {
		return AgentResponse{}, err
	}

	resp.ID = agentID
	resp.AccountID = ownerID
	resp.VehicleType = agent.VehicleType(vehicleType).String()
	resp.Rating = meanRating(ratingSum, ratingCount)

	return resp, nil
}
