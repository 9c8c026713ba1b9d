package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ProductCategoryRepository puerto de persistencia para ProductCategory.
type ProductCategoryRepository interface {
	Create(ctx context.Context, category *entity.ProductCategory) error
	GetByID(ctx context.Context, id int64) (*entity.ProductCategory, error)
	List(ctx context.Context, page Page) ([]*entity.ProductCategory, error)
	Update(ctx context.Context, category *entity.ProductCategory) error
	Delete(ctx context.Context, id int64) error
}
