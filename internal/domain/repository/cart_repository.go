// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when the user has no cart row at all.
	// Distinct from an empty cart, which is a cart with zero items.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the standard operations for cart and cart item
// persistence.
type CartRepository interface {
	// FindByUserID retrieves the user's cart with its items and their
	// products preloaded.
	FindByUserID(ctx context.Context, userID int64) (*entity.Cart, error)

	// Create persists a new empty cart for the user.
	Create(ctx context.Context, cart *entity.Cart) error

	// LockByUserID acquires a row lock on the user's cart for the duration of
	// the surrounding transaction, serializing concurrent order creation
	// against the same cart. Must be called inside a TransactionManager
	// Execute callback.
	LockByUserID(ctx context.Context, userID int64) (*entity.Cart, error)

	// FindItems retrieves all items of a cart with products preloaded.
	FindItems(ctx context.Context, cartID int64) ([]*entity.CartItem, error)

	// FindItem retrieves the item for a (cart, product) pair.
	FindItem(ctx context.Context, cartID, productID int64) (*entity.CartItem, error)

	// FindItemByID retrieves a cart item by its own ID.
	FindItemByID(ctx context.Context, itemID int64) (*entity.CartItem, error)

	// CreateItem persists a new cart item.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItem modifies an existing cart item.
	UpdateItem(ctx context.Context, item *entity.CartItem) error

	// IncrementItemQuantity atomically adds delta to the item's quantity in
	// the database, so concurrent adds of the same product cannot lose an
	// increment to a read-modify-write race.
	IncrementItemQuantity(ctx context.Context, itemID int64, delta int) error

	// DeleteItem removes a single cart item.
	DeleteItem(ctx context.Context, itemID int64) error

	// DeleteItemsByCartID removes all items of a cart. The cart row persists.
	DeleteItemsByCartID(ctx context.Context, cartID int64) error
}
