package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, status)

	status, err = ParseOrderStatus("  COMPLETED ")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, status)

	_, err = ParseOrderStatus("SHIPPED")
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)

	_, err = ParseOrderStatus("")
	assert.ErrorIs(t, err, ErrUnknownOrderStatus)
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("cod")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodCOD, method)

	_, err = ParsePaymentMethod("CARD")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}

func TestParsePaymentStatus(t *testing.T) {
	for _, value := range []string{"PENDING", "paid", "Failed", "REFUNDED"} {
		_, err := ParsePaymentStatus(value)
		assert.NoError(t, err, "value %q", value)
	}

	_, err := ParsePaymentStatus("HELD")
	assert.ErrorIs(t, err, ErrUnknownPaymentStatus)
}

func TestOrderDetail_Subtotal(t *testing.T) {
	detail := &OrderDetail{
		Quantity: 3,
		Price:    decimal.RequireFromString("4.50"),
	}
	assert.True(t, detail.Subtotal().Equal(decimal.RequireFromString("13.50")))
}
