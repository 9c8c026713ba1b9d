package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn retorna error se hace rollback.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchases repository.PurchaseRepository,
		customers repository.CustomerRepository,
		products repository.ProductRepository,
	) error) error
}
