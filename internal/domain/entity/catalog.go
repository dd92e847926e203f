// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products for browsing, e.g. "Keyboards" or "Audio".
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Brand identifies the manufacturer of a product.
type Brand struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is a catalog entry. Only active products are visible to public
// listings and addable to carts.
type Product struct {
	ID            int64
	Name          string // Unique across the catalog.
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal // Optional; when set it overrides Price.
	Description   string
	Image         string // Public URL of the product image.
	ImageKey      string // Storage key of the image at the media host.
	StockQuantity int
	IsActive      bool
	CategoryID    *int64
	BrandID       *int64
	Category      *Category
	Brand         *Brand
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice returns the unit price a buyer actually pays: the discount
// price when present, otherwise the list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}

	return p.Price
}

// ProductVariant is a sellable variation of a product, e.g. a color or size.
type ProductVariant struct {
	ID            int64
	ProductID     int64
	Name          string
	Price         decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
