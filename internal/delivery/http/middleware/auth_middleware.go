package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer token authentication and
// role-gated authorization. It establishes the Principal that handlers pass
// explicitly into the use cases; nothing below the delivery layer reads
// ambient auth state.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the Principal on the
// context. A token whose signature and expiry check out but whose role claim
// maps to no known role is rejected with a distinct 403: that combination
// means corrupted account data, not a bad credential.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}
		if claims.Subject == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Token subject is missing")
		}

		role, err := entity.RoleFromClaim(claims.Role)
		if err != nil {
			return response.Forbidden(c, domainerrors.ErrRoleMapping.ErrorCode(), domainerrors.ErrRoleMapping.Message())
		}

		deliverycontext.SetPrincipal(c, &entity.Principal{
			Email: claims.Subject,
			Role:  role,
		})

		return next(c)
	}
}

// RequireAdmin rejects principals without the admin role. It must be used
// AFTER the Authenticate middleware. The check is exact-match; there is no
// role hierarchy.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if principal == nil {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: principal missing")
		}

		if !principal.IsAdmin() {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: admin role required")
		}

		return next(c)
	}
}
