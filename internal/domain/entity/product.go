package entity

import "github.com/shopspring/decimal"

// Product producto vendible; Price es el precio de lista vigente (>= 0).
type Product struct {
	ID           int64
	CategoryID   int64
	CategoryName string // solo lectura (JOIN)
	Name         string
	Description  string
	Price        decimal.Decimal
	IsActive     bool
}
