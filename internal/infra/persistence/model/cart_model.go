package model

import "time"

// CartModel mirrors the 'carts' table. One cart per user; the row persists
// even after its items are cleared by order creation.
type CartModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. The (cart_id, product_id)
// unique index backs the one-row-per-product invariant.
type CartItemModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CartID    int64 `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_product"`
	Quantity  int   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
