package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// DocumentTypeRepository puerto de persistencia para DocumentType.
// Delete devuelve domain.ErrProtected si algún cliente lo referencia.
type DocumentTypeRepository interface {
	Create(ctx context.Context, dt *entity.DocumentType) error
	GetByID(ctx context.Context, id int64) (*entity.DocumentType, error)
	GetByName(ctx context.Context, name string) (*entity.DocumentType, error)
	List(ctx context.Context, page Page) ([]*entity.DocumentType, error)
	Update(ctx context.Context, dt *entity.DocumentType) error
	Delete(ctx context.Context, id int64) error
}
