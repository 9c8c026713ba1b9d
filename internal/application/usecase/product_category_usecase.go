package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ProductCategoryUseCase casos de uso CRUD para categorías de producto.
type ProductCategoryUseCase struct {
	repo repository.ProductCategoryRepository
}

// NewProductCategoryUseCase construye el caso de uso.
func NewProductCategoryUseCase(repo repository.ProductCategoryRepository) *ProductCategoryUseCase {
	return &ProductCategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *ProductCategoryUseCase) Create(ctx context.Context, in dto.ProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	name, err := requireText("name", in.Name, 100)
	if err != nil {
		return nil, err
	}
	desc, err := optionalText("description", in.Description, 1000)
	if err != nil {
		return nil, err
	}
	c := &entity.ProductCategory{Name: name, Description: desc, IsActive: boolOr(in.IsActive, true)}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría.
func (uc *ProductCategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductCategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// List lista categorías.
func (uc *ProductCategoryUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.ProductCategoryResponse, error) {
	limit, offset := normalizePage(page.Limit, page.Offset)
	list, err := uc.repo.List(ctx, repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductCategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update actualiza una categoría.
func (uc *ProductCategoryUseCase) Update(ctx context.Context, id int64, in dto.ProductCategoryRequest) (*dto.ProductCategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	name, err := requireText("name", in.Name, 100)
	if err != nil {
		return nil, err
	}
	desc, err := optionalText("description", in.Description, 1000)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Description = desc
	c.IsActive = boolOr(in.IsActive, c.IsActive)
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete elimina la categoría; protegida mientras tenga productos.
func (uc *ProductCategoryUseCase) Delete(ctx context.Context, id int64) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCategoryResponse(c *entity.ProductCategory) *dto.ProductCategoryResponse {
	return &dto.ProductCategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, IsActive: c.IsActive}
}
