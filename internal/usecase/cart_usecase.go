// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// AddToCartInput defines the data required to add a product to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemInput defines the data required to change a line's quantity.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// --- Output DTOs ---

// CartItemView is one cart line with its live pricing.
type CartItemView struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	Price        decimal.Decimal `json:"price"` // Effective unit price at current product state.
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CartView is the user's cart with a computed total.
type CartView struct {
	ID     int64           `json:"id"`
	UserID int64           `json:"userId"`
	Items  []*CartItemView `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// NewCartView maps a cart entity to its response projection.
func NewCartView(cart *entity.Cart) *CartView {
	items := make([]*CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		view := &CartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		}
		if item.Product != nil {
			view.ProductName = item.Product.Name
			view.ProductImage = item.Product.Image
			view.Price = item.Product.EffectivePrice()
		}
		items = append(items, view)
	}

	return &CartView{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  items,
		Total:  cart.Total(),
	}
}

// CartUsecase defines the interface for cart business operations. The acting
// user id is always supplied explicitly by the delivery layer.
type CartUsecase interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID int64) (*CartView, error)

	// AddToCart adds an active product to the cart. Adding a product already
	// present increments the existing line's quantity.
	AddToCart(ctx context.Context, userID int64, input *AddToCartInput) (*CartView, error)

	// UpdateItem sets the quantity of a line the user owns.
	UpdateItem(ctx context.Context, userID, itemID int64, input *UpdateCartItemInput) (*CartView, error)

	// RemoveItem deletes a line the user owns.
	RemoveItem(ctx context.Context, userID, itemID int64) (*CartView, error)

	// ClearCart deletes all lines; the cart row itself persists.
	ClearCart(ctx context.Context, userID int64) error
}
