package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// PurchaseHistoryRow una línea de compra de un cliente, aplanada para exportar.
type PurchaseHistoryRow struct {
	PurchaseID   int64
	PurchaseDate time.Time
	ProductName  string
	Quantity     int
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
}

// PurchaseRepository puerto de persistencia para Purchase y sus líneas.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	CreateItem(ctx context.Context, item *entity.PurchaseItem) error
	// DeleteItems borra las líneas de una compra (reemplazo completo en Update).
	DeleteItems(ctx context.Context, purchaseID int64) error
	Update(ctx context.Context, purchase *entity.Purchase) error
	// GetByID devuelve la compra con sus líneas.
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	List(ctx context.Context, filter PurchaseFilter) ([]*entity.Purchase, error)
	Delete(ctx context.Context, id int64) error

	// ListRecentByCustomers devuelve, por cliente, sus últimas `limit` compras
	// (purchase_date descendente) con sus líneas.
	ListRecentByCustomers(ctx context.Context, customerIDs []int64, limit int) (map[int64][]*entity.Purchase, error)
	// ListHistoryByCustomer devuelve todas las líneas de compra del cliente.
	ListHistoryByCustomer(ctx context.Context, customerID int64) ([]PurchaseHistoryRow, error)
}
