// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// Domain-specific errors for catalog persistence.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrVariantNotFound  = errors.New("product variant not found")
)

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}

// BrandRepository defines the standard operations for brand persistence.
type BrandRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Brand, error)
	List(ctx context.Context) ([]*entity.Brand, error)
	Create(ctx context.Context, brand *entity.Brand) error
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id int64) error
}

// VariantRepository defines the standard operations for product variant
// persistence.
type VariantRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.ProductVariant, error)
	ListByProductID(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)
	Create(ctx context.Context, variant *entity.ProductVariant) error
	Update(ctx context.Context, variant *entity.ProductVariant) error
	Delete(ctx context.Context, id int64) error
}
