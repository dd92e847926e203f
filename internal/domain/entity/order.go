// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront/internal/errors"
)

// OrderStatus is the fulfillment state of an order. The system imposes no
// transition graph: admins may set any known status from any other. That
// permissiveness is an observed product property, not an oversight.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
)

// PaymentMethod names how an order is paid. COD is currently the only method.
type PaymentMethod string

// PaymentMethodCOD is cash-on-delivery; completing a COD order confirms its
// payment as a side effect.
const PaymentMethodCOD PaymentMethod = "COD"

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Decode errors for strictly-decoded persisted values. Unlike roles, an
// unrecognized status in the database is corrupted data and must surface as
// an error instead of silently defaulting.
var (
	ErrUnknownOrderStatus   = errors.New("unknown order status")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownPaymentStatus = errors.New("unknown payment status")
)

// ParseOrderStatus decodes a stored or submitted order status value,
// case-insensitively, into its canonical form.
func ParseOrderStatus(value string) (OrderStatus, error) {
	switch status := OrderStatus(strings.ToUpper(strings.TrimSpace(value))); status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted:
		return status, nil
	default:
		return "", errors.Wrapf(ErrUnknownOrderStatus, "value %q", value)
	}
}

// ParsePaymentMethod decodes a stored or submitted payment method value.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch method := PaymentMethod(strings.ToUpper(strings.TrimSpace(value))); method {
	case PaymentMethodCOD:
		return method, nil
	default:
		return "", errors.Wrapf(ErrUnknownPaymentMethod, "value %q", value)
	}
}

// ParsePaymentStatus decodes a stored payment status value.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	switch status := PaymentStatus(strings.ToUpper(strings.TrimSpace(value))); status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return status, nil
	default:
		return "", errors.Wrapf(ErrUnknownPaymentStatus, "value %q", value)
	}
}

// Order is the durable snapshot created from a cart. All monetary fields and
// line items are immutable after creation; only status, payment status, notes
// and paid-at mutate thereafter.
type Order struct {
	ID               int64
	UserID           int64
	UserName         string
	TotalPrice       decimal.Decimal // Sum of line subtotals at order time.
	Status           OrderStatus
	ShippingAddress  string
	ShippingCity     string
	ShippingDistrict string
	ShippingWard     string
	ShippingPhone    string
	ShippingFee      decimal.Decimal
	PaymentMethod    PaymentMethod
	PaymentStatus    PaymentStatus
	PaidAt           *time.Time
	Notes            string
	DiscountAmount   decimal.Decimal
	FinalTotal       decimal.Decimal // TotalPrice + ShippingFee - DiscountAmount.
	Details          []*OrderDetail
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderDetail is one order line, recording the quantity and the unit price
// captured at order-creation time. Later product price changes never alter it.
type OrderDetail struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	ProductName  string
	ProductImage string
	Quantity     int
	Price        decimal.Decimal // Effective unit price frozen at order time.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subtotal returns the frozen unit price times quantity.
func (d *OrderDetail) Subtotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
