package agentrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err carries a postgres unique-constraint
// violation. gorm's postgres driver surfaces them as *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent profile to the database. A second profile for the
// same account loses to the unique index on account_id.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("accountID", dto.AccountID, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing agent profile to the database. Select("*") forces
// zero values such as Available=false and reset counters through GORM's
// struct update.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AgentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agent profile by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAccountID retrieves the profile belonging to the given account.
func (r *GormAgentRepository) GetByAccountID(ctx context.Context, accountID kernel.UUID) (*agent.Agent, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent by account", accountID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an agent profile from the database.
func (r *GormAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AgentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agent", id.String())
	}

	return nil
}

// GetAll retrieves every agent profile.
func (r *GormAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}

	return agents, nil
}
