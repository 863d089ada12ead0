package ports

import (
	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
)

// TokenPair holds the access and refresh tokens issued for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims is the verified identity carried by a token.
type TokenClaims struct {
	AccountID kernel.UUID
	Role      account.Role
}

// TokenService issues and verifies the signed tokens used for API
// authentication. Access and refresh tokens are distinct: a refresh token is
// never accepted where an access token is required and vice versa.
type TokenService interface {
	// IssuePair creates a new access/refresh token pair for the account.
	IssuePair(accountID kernel.UUID, role account.Role) (TokenPair, error)

	// VerifyAccess validates an access token and returns its claims.
	// Returns an UnauthorizedError for expired, malformed, or refresh tokens.
	VerifyAccess(token string) (TokenClaims, error)

	// VerifyRefresh validates a refresh token and returns its claims.
	// Returns an UnauthorizedError for expired, malformed, or access tokens.
	VerifyRefresh(token string) (TokenClaims, error)
}
