package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Monetary columns and order details
// are written once at creation; later updates touch only status, payment
// status, notes and paid_at.
type OrderModel struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	UserID           int64           `gorm:"index;not null"`
	UserName         string          `gorm:"type:varchar(100)"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	ShippingAddress  string          `gorm:"type:varchar(255);not null"`
	ShippingCity     string          `gorm:"type:varchar(100);not null"`
	ShippingDistrict string          `gorm:"type:varchar(100);not null"`
	ShippingWard     string          `gorm:"type:varchar(100);not null"`
	ShippingPhone    string          `gorm:"type:varchar(20);not null"`
	ShippingFee      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PaymentMethod    string          `gorm:"type:varchar(20);not null"`
	PaymentStatus    string          `gorm:"type:varchar(20);not null"`
	PaidAt           *time.Time
	Notes            string          `gorm:"type:text"`
	DiscountAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FinalTotal       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Details []*OrderDetailModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel mirrors the 'order_details' table. Product name, image and
// unit price are denormalized copies frozen at order time.
type OrderDetailModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	OrderID      int64           `gorm:"index;not null"`
	ProductID    int64           `gorm:"not null"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	ProductImage string          `gorm:"type:varchar(512)"`
	Quantity     int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
