package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// OrderHandler handles order placement for users and order management for
// administrators.
type OrderHandler struct {
	authUsecase  usecase.AuthUsecase
	orderUsecase usecase.OrderUsecase
	logger       *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(authUsecase usecase.AuthUsecase, orderUsecase usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		authUsecase:  authUsecase,
		orderUsecase: orderUsecase,
		logger:       logger,
	}
}

// CreateOrder handles POST /user/orders.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.CreateOrderInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	order, err := h.orderUsecase.CreateOrderFromCart(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// ListOrders handles GET /user/orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	orders, err := h.orderUsecase.GetUserOrders(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder handles GET /user/orders/:id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, err := actingUser(c, h.authUsecase)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orderUsecase.GetUserOrder(c.Request().Context(), user.ID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListAllOrders handles GET /admin/orders. An optional status query filters
// the listing.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		orders []*usecase.OrderView
		err    error
	)
	if status := c.QueryParam("status"); status != "" {
		orders, err = h.orderUsecase.GetOrdersByStatus(ctx, status)
	} else {
		orders, err = h.orderUsecase.GetAllOrders(ctx)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateOrderStatusInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	order, err := h.orderUsecase.UpdateOrderStatus(c.Request().Context(), orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}
