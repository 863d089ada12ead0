// Package jwtauth issues and verifies the signed bearer tokens used for API
// authentication. Access and refresh tokens are signed with separate secrets,
// so a token of one kind never verifies as the other.
package jwtauth

import (
	"fmt"
	"time"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the signing secrets and token lifetimes.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// accountClaims carries the account identity inside a signed token.
// The account ID travels in the registered subject claim.
type accountClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService implements ports.TokenService with HMAC-signed JWTs.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService creates a token service from the given configuration.
func NewTokenService(cfg Config) (*TokenService, error) {
	if cfg.AccessSecret == "" {
		return nil, errs.NewValueIsRequiredError("accessSecret")
	}
	if cfg.RefreshSecret == "" {
		return nil, errs.NewValueIsRequiredError("refreshSecret")
	}

	return &TokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}, nil
}

// IssuePair creates a new access/refresh token pair for the account.
func (s *TokenService) IssuePair(accountID kernel.UUID, role account.Role) (ports.TokenPair, error) {
	if err := accountID.Validate(); err != nil {
		return ports.TokenPair{}, err
	}
	if err := role.Validate(); err != nil {
		return ports.TokenPair{}, err
	}

	accessToken, err := s.sign(accountID, role, s.accessSecret, s.accessTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}

	refreshToken, err := s.sign(accountID, role, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccess validates an access token and returns its claims.
func (s *TokenService) VerifyAccess(token string) (ports.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *TokenService) VerifyRefresh(token string) (ports.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *TokenService) sign(
	accountID kernel.UUID,
	role account.Role,
	secret []byte,
	ttl time.Duration,
) (string, error) {
	now := time.Now().UTC()
	claims := accountClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *TokenService) verify(token string, secret []byte) (ports.TokenClaims, error) {
	var claims accountClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.TokenClaims{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthorizedErrorWithCause("invalid token subject", err)
	}

	role, err := account.RoleFromString(claims.Role)
	if err != nil {
		return ports.TokenClaims{}, errs.NewUnauthorizedErrorWithCause("invalid token role", err)
	}

	return ports.TokenClaims{
		AccountID: accountID,
		Role:      role,
	}, nil
}
