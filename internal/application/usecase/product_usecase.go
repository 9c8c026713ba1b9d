package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.ProductCategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.ProductCategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un producto. El precio no puede ser negativo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p := &entity.Product{IsActive: boolOr(in.IsActive, true)}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// List lista productos con filtros por nombre, categoría y estado.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListFilter) ([]*dto.ProductResponse, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		Page:       repository.Page{Limit: limit, Offset: offset},
		Search:     in.Search,
		CategoryID: in.CategoryID,
		IsActive:   in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update reemplaza los datos del producto. El precio de compras ya registradas no cambia.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, p, in); err != nil {
		return nil, err
	}
	p.IsActive = boolOr(in.IsActive, p.IsActive)
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete elimina el producto; protegido mientras aparezca en compras.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) apply(ctx context.Context, p *entity.Product, in dto.ProductRequest) error {
	name, err := requireText("name", in.Name, 200)
	if err != nil {
		return err
	}
	desc, err := optionalText("description", in.Description, 2000)
	if err != nil {
		return err
	}
	if in.Price.IsNegative() {
		return invalid("price no puede ser negativo")
	}
	if in.CategoryID <= 0 {
		return invalid("category_id es requerido")
	}
	cat, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return invalid("la categoría %d no existe", in.CategoryID)
	}
	p.Name = name
	p.CategoryID = cat.ID
	p.CategoryName = cat.Name
	p.Description = desc
	p.Price = in.Price.Round(2)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Description:  p.Description,
		Price:        p.Price,
		IsActive:     p.IsActive,
	}
}
