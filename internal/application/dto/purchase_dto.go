package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest body para POST/PUT /api/purchases. Los subtotales y el total se calculan en el servidor.
type PurchaseRequest struct {
	CustomerID   int64                 `json:"customer_id"`
	PurchaseDate *time.Time            `json:"purchase_date,omitempty"` // vacío = ahora
	Notes        string                `json:"notes,omitempty"`
	Items        []PurchaseItemRequest `json:"items"`
}

// PurchaseItemRequest línea de compra; UnitPrice vacío toma el precio vigente del producto.
type PurchaseItemRequest struct {
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID           int64                  `json:"id"`
	CustomerID   int64                  `json:"customer_id"`
	PurchaseDate time.Time              `json:"purchase_date"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Notes        string                 `json:"notes,omitempty"`
	Items        []PurchaseItemResponse `json:"items"`
}

// PurchaseItemResponse línea en respuestas.
type PurchaseItemResponse struct {
	ProductID   int64           `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseListFilter query params de GET /api/purchases (fechas YYYY-MM-DD, "to" inclusive).
type PurchaseListFilter struct {
	PageRequest
	Search     string `query:"search"`
	CustomerID int64  `query:"customer_id"`
	From       string `query:"from"`
	To         string `query:"to"`
}
