package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_EffectivePrice(t *testing.T) {
	list := decimal.RequireFromString("10.00")
	discount := decimal.RequireFromString("7.50")

	full := &Product{Price: list}
	assert.True(t, full.EffectivePrice().Equal(list))

	discounted := &Product{Price: list, DiscountPrice: &discount}
	assert.True(t, discounted.EffectivePrice().Equal(discount))

	// A zero discount still overrides the list price.
	zero := decimal.Zero
	free := &Product{Price: list, DiscountPrice: &zero}
	assert.True(t, free.EffectivePrice().IsZero())
}

func TestCart_Total(t *testing.T) {
	discount := decimal.RequireFromString("3.00")
	cart := &Cart{
		Items: []*CartItem{
			{Quantity: 2, Product: &Product{Price: decimal.RequireFromString("10.00")}},
			{Quantity: 1, Product: &Product{Price: decimal.RequireFromString("5.00"), DiscountPrice: &discount}},
		},
	}
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("23.00")))
}

func TestCartItem_Subtotal_NilProduct(t *testing.T) {
	item := &CartItem{Quantity: 4}
	assert.True(t, item.Subtotal().IsZero())
}

func TestEmptyCart_TotalIsZero(t *testing.T) {
	assert.True(t, (&Cart{}).Total().IsZero())
}
