// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the mutable per-user staging area for prospective purchases.
// Each user owns at most one cart; it is created lazily on first access.
// The cart row survives order creation, only its items are cleared.
type Cart struct {
	ID        int64
	UserID    int64
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total sums the effective-price subtotals of all items in the cart.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// CartItem is a (cart, product) pair with a quantity. At most one item exists
// per product in a cart; adding an already-present product increments the
// quantity instead of inserting a second row.
type CartItem struct {
	ID        int64
	CartID    int64
	ProductID int64
	Product   *Product
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal returns effective unit price times quantity at the product's
// current state. It is a live view; order creation captures its own snapshot.
func (i *CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}
