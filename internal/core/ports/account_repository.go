// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, event publication, the
// tracking cache, and token issuance. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account aggregate by its unique email.
	// Used for authentication and registration duplicate checks.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)

	// Delete removes an account aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
