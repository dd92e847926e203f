// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// principal returns the authenticated principal set by the auth middleware.
func principal(c echo.Context) (*entity.Principal, error) {
	p := deliverycontext.GetPrincipal(c)
	if p == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("principal missing from context")
	}

	return p, nil
}

// actingUser resolves the full user record behind the authenticated
// principal. Most authenticated operations key on the user's ID rather than
// the token's email subject.
func actingUser(c echo.Context, authUC usecase.AuthUsecase) (*entity.User, error) {
	p, err := principal(c)
	if err != nil {
		return nil, err
	}

	user, err := authUC.ResolveUser(c.Request().Context(), p.Email)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
