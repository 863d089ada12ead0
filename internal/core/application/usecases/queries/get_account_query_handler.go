package queries

import (
	"context"
	"database/sql"
	"errors"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAccountQueryHandler retrieves a single account projection.
// The password hash is never part of the projection.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for single account lookups.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the query and returns the account read model.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			first_name,
			last_name,
			role,
			phone,
			address,
			active,
			created_at
		FROM accounts
		WHERE id = ?
	`, query.AccountID().Bytes()).Row()

	var (
		resp AccountResponse
		id   uuid.UUID
		role int
	)
	err := row.Scan(
		&id,
		&resp.Email,
		&resp.FirstName,
		&resp.LastName,
		&role,
		&resp.Phone,
		&resp.Address,
		&resp.Active,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccountResponse{}, errs.NewObjectNotFoundError("account", query.AccountID().String())
		}
		return AccountResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AccountResponse{}, err
	}
	resp.ID = accountID
	resp.Role = account.Role(role).String()

	return resp, nil
}
