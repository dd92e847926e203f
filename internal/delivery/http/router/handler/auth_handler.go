package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// AuthHandler handles registration, login and account operations.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.authUsecase.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.authUsecase.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ChangePassword handles POST /auth/change-password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.ChangePasswordInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.authUsecase.ChangePassword(c.Request().Context(), *p, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// GetProfile handles GET /user/profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewUserView(user), "")
}
