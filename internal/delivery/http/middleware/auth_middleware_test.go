package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, *entity.Principal, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *entity.Principal
	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		captured = deliverycontext.GetPrincipal(c)

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, captured, nextCalled
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good-token").Return(&service.Claims{
		Role: "ROLE_ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "admin@example.com",
		},
	}, nil)

	rec, principal, nextCalled := invokeAuthenticate(t, tokenSvc, "Bearer good-token")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, principal)
	assert.Equal(t, "admin@example.com", principal.Email)
	assert.Equal(t, entity.RoleAdmin, principal.Role)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, nextCalled := invokeAuthenticate(t, tokenSvc, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, nextCalled := invokeAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be Bearer token")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("expired").Return(nil, errors.New("token is expired"))

	rec, _, nextCalled := invokeAuthenticate(t, tokenSvc, "Bearer expired")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_Authenticate_MissingSubject(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("no-subject").Return(&service.Claims{Role: "ROLE_USER"}, nil)

	rec, _, nextCalled := invokeAuthenticate(t, tokenSvc, "Bearer no-subject")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token subject is missing")
}

// A well-formed token carrying a role claim that maps to no known role is a
// data problem, not a credential problem, and must surface as 403 rather
// than 401.
func TestAuthMiddleware_Authenticate_UnknownRoleClaim(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("odd-role").Return(&service.Claims{
		Role: "ROLE_SUPERVISOR",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user@example.com",
		},
	}, nil)

	rec, _, nextCalled := invokeAuthenticate(t, tokenSvc, "Bearer odd-role")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		principal  *entity.Principal
		wantCode   int
		wantCalled bool
	}{
		{
			name:       "admin passes",
			principal:  &entity.Principal{Email: "admin@example.com", Role: entity.RoleAdmin},
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "plain user is rejected",
			principal:  &entity.Principal{Email: "user@example.com", Role: entity.RoleUser},
			wantCode:   http.StatusForbidden,
			wantCalled: false,
		},
		{
			name:       "missing principal is rejected",
			principal:  nil,
			wantCode:   http.StatusForbidden,
			wantCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.principal != nil {
				deliverycontext.SetPrincipal(c, tt.principal)
			}

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true

				return c.NoContent(http.StatusOK)
			}

			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
			err := m.RequireAdmin(next)(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCalled, nextCalled)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
