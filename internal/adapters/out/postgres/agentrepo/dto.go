// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent profile persistence.
package agentrepo

import (
	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// Each account owns at most one profile, enforced by the unique index on
// account_id.
type AgentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VehicleType     int
	VehicleNumber   string
	LicenseNumber   string
	CurrentLocation string
	Available       bool `gorm:"index"`
	TotalDeliveries int
	RatingSum       int
	RatingCount     int
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:              aggregate.ID().Bytes(),
		AccountID:       aggregate.AccountID().Bytes(),
		VehicleType:     int(aggregate.VehicleType()),
		VehicleNumber:   aggregate.VehicleNumber(),
		LicenseNumber:   aggregate.LicenseNumber(),
		CurrentLocation: aggregate.CurrentLocation(),
		Available:       aggregate.IsAvailable(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		RatingSum:       aggregate.RatingSum(),
		RatingCount:     aggregate.RatingCount(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(
		id,
		accountID,
		agent.VehicleType(dto.VehicleType),
		dto.VehicleNumber,
		dto.LicenseNumber,
		dto.CurrentLocation,
		dto.Available,
		dto.TotalDeliveries,
		dto.RatingSum,
		dto.RatingCount,
	)
}
