// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateOrderInput carries the shipping and payment fields for converting the
// acting user's cart into an order. Fee and discount default to zero.
type CreateOrderInput struct {
	ShippingAddress  string           `json:"shippingAddress" validate:"required"`
	ShippingCity     string           `json:"shippingCity" validate:"required"`
	ShippingDistrict string           `json:"shippingDistrict" validate:"required"`
	ShippingWard     string           `json:"shippingWard" validate:"required"`
	ShippingPhone    string           `json:"shippingPhone" validate:"required,number,min=10,max=11"`
	ShippingFee      *decimal.Decimal `json:"shippingFee"`
	PaymentMethod    string           `json:"paymentMethod" validate:"required"`
	Notes            string           `json:"notes"`
	DiscountAmount   *decimal.Decimal `json:"discountAmount"`
}

// UpdateOrderStatusInput sets a new fulfillment status and optionally
// overwrites the notes.
type UpdateOrderStatusInput struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}

// --- Output DTOs ---

// OrderDetailView is one order line with its frozen price.
type OrderDetailView struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderView is the full order snapshot returned to callers.
type OrderView struct {
	ID               int64              `json:"id"`
	UserID           int64              `json:"userId"`
	UserName         string             `json:"userName"`
	TotalPrice       decimal.Decimal    `json:"totalPrice"`
	Status           string             `json:"status"`
	ShippingAddress  string             `json:"shippingAddress"`
	ShippingCity     string             `json:"shippingCity"`
	ShippingDistrict string             `json:"shippingDistrict"`
	ShippingWard     string             `json:"shippingWard"`
	ShippingPhone    string             `json:"shippingPhone"`
	ShippingFee      decimal.Decimal    `json:"shippingFee"`
	PaymentMethod    string             `json:"paymentMethod"`
	PaymentStatus    string             `json:"paymentStatus"`
	PaidAt           *time.Time         `json:"paidAt,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	DiscountAmount   decimal.Decimal    `json:"discountAmount"`
	FinalTotal       decimal.Decimal    `json:"finalTotal"`
	Details          []*OrderDetailView `json:"orderDetails"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// NewOrderView maps an order entity to its response projection.
func NewOrderView(order *entity.Order) *OrderView {
	details := make([]*OrderDetailView, 0, len(order.Details))
	for _, detail := range order.Details {
		details = append(details, &OrderDetailView{
			ID:           detail.ID,
			ProductID:    detail.ProductID,
			ProductName:  detail.ProductName,
			ProductImage: detail.ProductImage,
			Quantity:     detail.Quantity,
			Price:        detail.Price,
			Subtotal:     detail.Subtotal(),
		})
	}

	return &OrderView{
		ID:               order.ID,
		UserID:           order.UserID,
		UserName:         order.UserName,
		TotalPrice:       order.TotalPrice,
		Status:           string(order.Status),
		ShippingAddress:  order.ShippingAddress,
		ShippingCity:     order.ShippingCity,
		ShippingDistrict: order.ShippingDistrict,
		ShippingWard:     order.ShippingWard,
		ShippingPhone:    order.ShippingPhone,
		ShippingFee:      order.ShippingFee,
		PaymentMethod:    string(order.PaymentMethod),
		PaymentStatus:    string(order.PaymentStatus),
		PaidAt:           order.PaidAt,
		Notes:            order.Notes,
		DiscountAmount:   order.DiscountAmount,
		FinalTotal:       order.FinalTotal,
		Details:          details,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	// CreateOrderFromCart converts the user's cart into an immutable order
	// snapshot and clears the cart, atomically. Fails with ErrCartNotFound
	// when no cart row exists and ErrEmptyCart when it has no items.
	CreateOrderFromCart(ctx context.Context, userID int64, input *CreateOrderInput) (*OrderView, error)

	// GetUserOrders lists the user's orders, newest first.
	GetUserOrders(ctx context.Context, userID int64) ([]*OrderView, error)

	// GetUserOrder returns one of the user's orders; ownership is enforced.
	GetUserOrder(ctx context.Context, userID, orderID int64) (*OrderView, error)

	// GetAllOrders lists every order, newest first. Admin only.
	GetAllOrders(ctx context.Context) ([]*OrderView, error)

	// GetOrdersByStatus lists orders in one status. Admin only.
	GetOrdersByStatus(ctx context.Context, status string) ([]*OrderView, error)

	// UpdateOrderStatus sets the order's status and optionally its notes.
	// Completing a COD order whose payment is still pending marks it paid and
	// stamps the paid-at time. No transition graph is enforced. Admin only.
	UpdateOrderStatus(ctx context.Context, orderID int64, input *UpdateOrderStatusInput) (*OrderView, error)
}
