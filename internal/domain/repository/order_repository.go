// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders and their details are created once and never deleted by normal flow;
// only status, payment status, notes and paid-at mutate afterwards.
type OrderRepository interface {
	// Create persists a new order row.
	Create(ctx context.Context, order *entity.Order) error

	// CreateDetails persists the order's line items.
	CreateDetails(ctx context.Context, details []*entity.OrderDetail) error

	// FindByID retrieves an order with its details.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByUserID retrieves a user's orders with details, newest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error)

	// FindAll retrieves every order with details, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// FindByStatus retrieves all orders in the given status, newest first.
	FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// Update persists the mutable fields of an existing order.
	Update(ctx context.Context, order *entity.Order) error
}
