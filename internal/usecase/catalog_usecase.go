// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// ProductInput defines the data for creating or updating a product.
type ProductInput struct {
	Name          string           `json:"name" validate:"required"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	DiscountPrice *decimal.Decimal `json:"discountPrice"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	ImageKey      string           `json:"imageKey"`
	StockQuantity int              `json:"stockQuantity" validate:"min=0"`
	IsActive      *bool            `json:"isActive"`
	CategoryID    *int64           `json:"categoryId"`
	BrandID       *int64           `json:"brandId"`
}

// CategoryInput defines the data for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// BrandInput defines the data for creating or updating a brand.
type BrandInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// VariantInput defines the data for creating or updating a product variant.
type VariantInput struct {
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StockQuantity int             `json:"stockQuantity" validate:"min=0"`
}

// ListProductsFilter narrows the public product listing.
type ListProductsFilter struct {
	CategoryID *int64
	BrandID    *int64
	Search     string
}

// --- Output DTOs ---

// ProductView is the response projection of a product.
type ProductView struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Description   string           `json:"description"`
	Image         string           `json:"image"`
	StockQuantity int              `json:"stockQuantity"`
	IsActive      bool             `json:"isActive"`
	CategoryID    *int64           `json:"categoryId,omitempty"`
	CategoryName  string           `json:"categoryName,omitempty"`
	BrandID       *int64           `json:"brandId,omitempty"`
	BrandName     string           `json:"brandName,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// NewProductView maps a product entity to its response projection.
func NewProductView(product *entity.Product) *ProductView {
	view := &ProductView{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Description:   product.Description,
		Image:         product.Image,
		StockQuantity: product.StockQuantity,
		IsActive:      product.IsActive,
		CategoryID:    product.CategoryID,
		BrandID:       product.BrandID,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
	if product.Category != nil {
		view.CategoryName = product.Category.Name
	}
	if product.Brand != nil {
		view.BrandName = product.Brand.Name
	}

	return view
}

// CatalogUsecase defines the interface for catalog browsing and management.
// Listing operations serve the public surface; create/update/delete are
// admin-gated at the delivery layer.
type CatalogUsecase interface {
	// Public browsing. Only active products are visible.
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]*ProductView, error)
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	ListVariants(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)

	// Admin product management.
	ListAllProducts(ctx context.Context) ([]*ProductView, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*ProductView, error)
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*ProductView, error)
	DeleteProduct(ctx context.Context, id int64) error

	// Admin category management.
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Admin brand management.
	CreateBrand(ctx context.Context, input *BrandInput) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, id int64, input *BrandInput) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error

	// Admin variant management.
	CreateVariant(ctx context.Context, productID int64, input *VariantInput) (*entity.ProductVariant, error)
	UpdateVariant(ctx context.Context, id int64, input *VariantInput) (*entity.ProductVariant, error)
	DeleteVariant(ctx context.Context, id int64) error
}
