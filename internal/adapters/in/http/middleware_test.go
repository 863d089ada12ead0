package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService verifies any token that matches its configured value.
type stubTokenService struct {
	accessToken string
	claims      ports.TokenClaims
}

func (s *stubTokenService) IssuePair(accountID kernel.UUID, role account.Role) (ports.TokenPair, error) {
	return ports.TokenPair{AccessToken: s.accessToken, RefreshToken: "refresh"}, nil
}

func (s *stubTokenService) VerifyAccess(token string) (ports.TokenClaims, error) {
	if token != s.accessToken {
		return ports.TokenClaims{}, errs.NewUnauthorizedError("invalid token")
	}
	return s.claims, nil
}

func (s *stubTokenService) VerifyRefresh(token string) (ports.TokenClaims, error) {
	return ports.TokenClaims{}, errs.NewUnauthorizedError("invalid token")
}

func newStubTokens(role account.Role) *stubTokenService {
	return &stubTokenService{
		accessToken: "valid-token",
		claims: ports.TokenClaims{
			AccountID: kernel.NewUUID(),
			Role:      role,
		},
	}
}

func invokeMiddleware(t *testing.T, mw echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	nextCalled := false
	err := mw(func(echo.Context) error {
		nextCalled = true
		return nil
	})(ctx)
	require.NoError(t, err)

	return rec, nextCalled
}

func Test_Authenticate_MissingHeader_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(newStubTokens(account.RoleCustomer))

	rec, nextCalled := invokeMiddleware(t, mw.Authenticate, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func Test_Authenticate_NonBearerScheme_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(newStubTokens(account.RoleCustomer))

	rec, nextCalled := invokeMiddleware(t, mw.Authenticate, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func Test_Authenticate_InvalidToken_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(newStubTokens(account.RoleCustomer))

	rec, nextCalled := invokeMiddleware(t, mw.Authenticate, "Bearer tampered")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func Test_Authenticate_ValidToken_StoresClaims(t *testing.T) {
	tokens := newStubTokens(account.RoleCustomer)
	mw := NewAuthMiddleware(tokens)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := mw.Authenticate(func(ctx echo.Context) error {
		claims, ok := claimsFrom(ctx)
		require.True(t, ok)
		assert.True(t, claims.AccountID.IsEqual(tokens.claims.AccountID))
		assert.Equal(t, account.RoleCustomer, claims.Role)
		return ctx.NoContent(http.StatusOK)
	})(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_RequireAdmin_CustomerRole_Returns403(t *testing.T) {
	tokens := newStubTokens(account.RoleCustomer)
	mw := NewAuthMiddleware(tokens)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(claimsContextKey, tokens.claims)

	nextCalled := false
	err := mw.RequireAdmin(func(echo.Context) error {
		nextCalled = true
		return nil
	})(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, nextCalled)
}

func Test_RequireAdmin_WithoutAuthenticate_Returns401(t *testing.T) {
	mw := NewAuthMiddleware(newStubTokens(account.RoleAdmin))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := mw.RequireAdmin(func(echo.Context) error { return nil })(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_RequireAdmin_AdminRole_CallsNext(t *testing.T) {
	tokens := newStubTokens(account.RoleAdmin)
	mw := NewAuthMiddleware(tokens)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(claimsContextKey, tokens.claims)

	nextCalled := false
	err := mw.RequireAdmin(func(ctx echo.Context) error {
		nextCalled = true
		return ctx.NoContent(http.StatusOK)
	})(ctx)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}
