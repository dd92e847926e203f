package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CartHandler handles the authenticated user's shopping cart.
type CartHandler struct {
	authUsecase usecase.AuthUsecase
	cartUsecase usecase.CartUsecase
	logger      *slog.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(authUsecase usecase.AuthUsecase, cartUsecase usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		authUsecase: authUsecase,
		cartUsecase: cartUsecase,
		logger:      logger,
	}
}

// GetCart handles GET /user/cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUsecase.GetCart(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddToCart handles POST /user/cart/items.
func (h *CartHandler) AddToCart(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.AddToCartInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.cartUsecase.AddToCart(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Product added to cart")
}

// UpdateItem handles PUT /user/cart/items/:id.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateCartItemInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.cartUsecase.UpdateItem(c.Request().Context(), user.ID, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item updated")
}

// RemoveItem handles DELETE /user/cart/items/:id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	itemID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.cartUsecase.RemoveItem(c.Request().Context(), user.ID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item removed")
}

// ClearCart handles DELETE /user/cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.cartUsecase.ClearCart(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
