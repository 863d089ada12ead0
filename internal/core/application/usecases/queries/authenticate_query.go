package queries

import (
	"errors"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a login credential pair.
type AuthenticateQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a credential check query.
func NewAuthenticateQuery(email, password string) (AuthenticateQuery, error) {
	if email == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to check.
func (q AuthenticateQuery) Password() string {
	return q.password
}
