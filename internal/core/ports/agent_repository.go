package ports

import (
	"context"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent
// profiles.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate,
	// including its derived performance aggregates.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetByAccountID retrieves the profile belonging to the given account.
	// Each delivery-agent account has at most one profile.
	GetByAccountID(ctx context.Context, accountID kernel.UUID) (*agent.Agent, error)

	// GetAll retrieves every agent profile. Used by the aggregate
	// reconciliation job.
	GetAll(ctx context.Context) ([]*agent.Agent, error)

	// Delete removes an agent aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
