package http

import (
	"net/http"
	"strings"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key holding verified token claims.
const claimsContextKey = "auth.claims"

// AuthMiddleware authenticates requests with Bearer access tokens.
type AuthMiddleware struct {
	tokens ports.TokenService
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the Authorization header and stores the token claims
// in the request context. Requests without a valid access token get 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		}

		claims, err := m.tokens.VerifyAccess(token)
		if err != nil {
			return respondError(ctx, err)
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// RequireAdmin rejects requests whose verified claims do not carry the admin
// role. Must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims, ok := claimsFrom(ctx)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		}
		if claims.Role != account.RoleAdmin {
			return ctx.JSON(http.StatusForbidden, errorResponse{Error: "admin role required"})
		}
		return next(ctx)
	}
}

// claimsFrom extracts the verified claims stored by Authenticate.
func claimsFrom(ctx echo.Context) (ports.TokenClaims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(ports.TokenClaims)
	return claims, ok
}
