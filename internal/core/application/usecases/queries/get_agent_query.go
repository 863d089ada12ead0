package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetAgentQueryIsNotConstructed = errors.New(
	"GetAgentQuery must be created via NewGetAgentQuery constructor",
)

// GetAgentQuery retrieves a single agent profile by its identifier.
type GetAgentQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentQuery creates a query for one agent profile.
func NewGetAgentQuery(agentID kernel.UUID) (GetAgentQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentQuery{}, err
	}

	return GetAgentQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentQueryIsNotConstructed)
}

// AgentID returns the requested agent identifier.
func (q GetAgentQuery) AgentID() kernel.UUID {
	return q.agentID
}
