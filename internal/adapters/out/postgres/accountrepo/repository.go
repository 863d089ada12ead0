package accountrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/account"
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

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database. A concurrent registration with the
// same email loses to the unique index and surfaces as ObjectAlreadyExistsError.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("email", dto.Email, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database. Select("*") forces zero
// values such as Active=false through GORM's struct update.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
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

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its unique email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an account from the database.
func (r *GormAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", id.String())
	}

	return nil
}
