package queries

import (
	"context"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAccountsQueryHandler retrieves pages of accounts for the operator
// console. The password hash is never part of the projection.
type ListAccountsQueryHandler struct {
	db *gorm.DB
}

// NewListAccountsQueryHandler creates a handler for operator account listings.
func NewListAccountsQueryHandler(db *gorm.DB) ListAccountsQueryHandler {
	return ListAccountsQueryHandler{db: db}
}

// Handle executes the query and returns one page of matching accounts.
func (h ListAccountsQueryHandler) Handle(
	ctx context.Context,
	query ListAccountsQuery,
) (ListAccountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAccountsQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 4)
	if query.Role() != nil {
		where += " AND role = ?"
		args = append(args, int(*query.Role()))
	}
	if query.Search() != "" {
		where += " AND (email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?)"
		term := "%" + query.Search() + "%"
		args = append(args, term, term, term)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM accounts WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListAccountsQueryResponse{}, err
	}

	page := query.Page()
	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, page.Size, page.Offset())...).Rows()
	if err != nil {
		return ListAccountsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]AccountResponse, 0, page.Size)
	for rows.Next() {
		var (
			resp AccountResponse
			id   uuid.UUID
			role int
		)
		if err = rows.Scan(
			&id,
			&resp.Email,
			&resp.FirstName,
			&resp.LastName,
			&role,
			&resp.Phone,
			&resp.Address,
			&resp.Active,
			&resp.CreatedAt,
		); err != nil {
			return ListAccountsQueryResponse{}, err
		}

		accountID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListAccountsQueryResponse{}, idErr
		}
		resp.ID = accountID
		resp.Role = account.Role(role).String()
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return ListAccountsQueryResponse{}, err
	}

	return ListAccountsQueryResponse{Items: items, Total: total, Page: page}, nil
}
