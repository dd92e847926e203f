// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows public product listings.
type ProductFilter struct {
	CategoryID *int64
	BrandID    *int64
	Search     string // Case-insensitive substring match on the product name.
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a product regardless of its active flag.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindActiveByID retrieves a product only if it is active.
	FindActiveByID(ctx context.Context, id int64) (*entity.Product, error)

	// ListActive retrieves active products matching the filter, newest first.
	ListActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// List retrieves all products, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}
