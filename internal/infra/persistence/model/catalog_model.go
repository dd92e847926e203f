package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// ProductModel mirrors the 'products' table. Monetary columns use
// decimal(10,2) to avoid float rounding on money.
type ProductModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	Name          string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Description   string           `gorm:"type:text"`
	Image         string           `gorm:"type:varchar(512)"`
	ImageKey      string           `gorm:"type:varchar(255)"`
	StockQuantity int              `gorm:"not null;default:0"`
	IsActive      bool             `gorm:"not null;default:true"`
	CategoryID    *int64           `gorm:"index"`
	BrandID       *int64           `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Brand    *BrandModel    `gorm:"foreignKey:BrandID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table.
type ProductVariantModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	ProductID     int64           `gorm:"index;not null"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
