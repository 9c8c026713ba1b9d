package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para Customer.
// Las lecturas incluyen DocumentTypeName. Delete devuelve domain.ErrProtected si tiene compras.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	GetByDocumentNumber(ctx context.Context, documentNumber string) (*entity.Customer, error)
	// ListByDocumentPrefix devuelve los clientes cuyo número de documento empieza por prefix
	// (coincidencia literal; prefix vacío devuelve todos).
	ListByDocumentPrefix(ctx context.Context, prefix string) ([]*entity.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}
