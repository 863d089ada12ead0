// Package accountrepo provides data transfer objects and mapping functions for account persistence.
// This package implements the repository pattern for the account domain aggregate, handling
// the conversion between domain entities and database representations.
package accountrepo

import (
	"time"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
// The email carries a unique index for authentication lookups and registration
// duplicate detection.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	FirstName    string
	LastName     string
	Role         int `gorm:"index"`
	Phone        string
	Address      string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Role:         int(aggregate.Role()),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.FirstName,
		dto.LastName,
		account.Role(dto.Role),
		dto.Phone,
		dto.Address,
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
