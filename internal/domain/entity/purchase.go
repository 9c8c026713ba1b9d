package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase cabecera de una compra de un cliente.
// TotalAmount se almacena desnormalizado; ver RecalculateTotal.
type Purchase struct {
	ID           int64
	CustomerID   int64
	PurchaseDate time.Time
	TotalAmount  decimal.Decimal
	Notes        string
	Items        []*PurchaseItem
}

// PurchaseItem línea de una compra.
type PurchaseItem struct {
	ID          int64
	PurchaseID  int64
	ProductID   int64
	ProductName string // solo lectura (JOIN)
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ComputeSubtotal fija Subtotal = Quantity × UnitPrice.
func (i *PurchaseItem) ComputeSubtotal() {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// RecalculateTotal recalcula el subtotal de cada línea y TotalAmount como su suma.
func (p *Purchase) RecalculateTotal() {
	total := decimal.Zero
	for _, it := range p.Items {
		it.ComputeSubtotal()
		total = total.Add(it.Subtotal)
	}
	p.TotalAmount = total
}
