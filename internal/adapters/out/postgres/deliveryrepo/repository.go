package deliveryrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
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

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database. Two concurrent assignments for
// the same order race on the unique index on order_id; the loser gets an
// ObjectAlreadyExistsError.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderID", dto.OrderID, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery to the database. Select("*") forces the
// nullable timestamp and rating columns through GORM's struct update.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
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

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the delivery assigned to the given order, if any.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery by order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// StatsByAgent recomputes completed-delivery aggregates for the given agent
// directly from the delivery rows.
func (r *GormDeliveryRepository) StatsByAgent(ctx context.Context, agentID kernel.UUID) (ports.AgentDeliveryStats, error) {
	if err := agentID.Validate(); err != nil {
		return ports.AgentDeliveryStats{}, err
	}

	var stats ports.AgentDeliveryStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                 AS total_delivered,
			COALESCE(SUM(rating), 0) AS rating_sum,
			COUNT(rating)            AS rating_count
		FROM deliveries
		WHERE agent_id = ? AND status = ?
	`, agentID.Bytes(), int(delivery.StatusDelivered)).Scan(&stats).Error
	if err != nil {
		return ports.AgentDeliveryStats{}, err
	}

	return stats, nil
}
