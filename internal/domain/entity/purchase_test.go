package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPurchase_RecalculateTotal(t *testing.T) {
	p := &Purchase{Items: []*PurchaseItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("1500000.50")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("999.99")},
	}}
	p.RecalculateTotal()

	assert.Equal(t, "3000001", p.Items[0].Subtotal.String())
	assert.Equal(t, "999.99", p.Items[1].Subtotal.String())
	assert.Equal(t, "3001000.99", p.TotalAmount.String())
}

func TestPurchase_RecalculateTotal_SinItems(t *testing.T) {
	p := &Purchase{TotalAmount: decimal.NewFromInt(10)}
	p.RecalculateTotal()
	assert.True(t, p.TotalAmount.IsZero())
}

func TestCustomer_FullName(t *testing.T) {
	c := &Customer{FirstName: "María", LastName: "Gómez"}
	assert.Equal(t, "María Gómez", c.FullName())
}
