package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/dian"
)

// DocumentTypeUseCase casos de uso CRUD para tipos de documento.
type DocumentTypeUseCase struct {
	repo repository.DocumentTypeRepository
}

// NewDocumentTypeUseCase construye el caso de uso.
func NewDocumentTypeUseCase(repo repository.DocumentTypeRepository) *DocumentTypeUseCase {
	return &DocumentTypeUseCase{repo: repo}
}

// Create crea un tipo de documento; el nombre es único.
func (uc *DocumentTypeUseCase) Create(ctx context.Context, in dto.DocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	dt := &entity.DocumentType{IsActive: boolOr(in.IsActive, true)}
	if err := uc.apply(dt, in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, dt.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, dt); err != nil {
		return nil, err
	}
	return toDocumentTypeResponse(dt), nil
}

// GetByID obtiene un tipo de documento.
func (uc *DocumentTypeUseCase) GetByID(ctx context.Context, id int64) (*dto.DocumentTypeResponse, error) {
	dt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dt == nil {
		return nil, domain.ErrNotFound
	}
	return toDocumentTypeResponse(dt), nil
}

// List lista tipos de documento ordenados por nombre.
func (uc *DocumentTypeUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.DocumentTypeResponse, error) {
	limit, offset := normalizePage(page.Limit, page.Offset)
	list, err := uc.repo.List(ctx, repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DocumentTypeResponse, 0, len(list))
	for _, dt := range list {
		out = append(out, toDocumentTypeResponse(dt))
	}
	return out, nil
}

// Update reemplaza los campos editables.
func (uc *DocumentTypeUseCase) Update(ctx context.Context, id int64, in dto.DocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	dt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dt == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(dt, in); err != nil {
		return nil, err
	}
	dt.IsActive = boolOr(in.IsActive, dt.IsActive)
	if err := uc.repo.Update(ctx, dt); err != nil {
		return nil, err
	}
	return toDocumentTypeResponse(dt), nil
}

// Delete elimina el tipo; falla con domain.ErrProtected si hay clientes que lo usan.
func (uc *DocumentTypeUseCase) Delete(ctx context.Context, id int64) error {
	dt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dt == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DocumentTypeUseCase) apply(dt *entity.DocumentType, in dto.DocumentTypeRequest) error {
	name, err := requireText("name", in.Name, 50)
	if err != nil {
		return err
	}
	if in.DIANCode != "" && !dian.IsValidIdentificationCode(in.DIANCode) {
		return invalid("dian_code %q no pertenece al catálogo DIAN", in.DIANCode)
	}
	desc, err := optionalText("description", in.Description, 1000)
	if err != nil {
		return err
	}
	dt.Name = name
	dt.Description = desc
	dt.DIANCode = in.DIANCode
	return nil
}

func toDocumentTypeResponse(dt *entity.DocumentType) *dto.DocumentTypeResponse {
	return &dto.DocumentTypeResponse{
		ID:          dt.ID,
		Name:        dt.Name,
		Description: dt.Description,
		DIANCode:    dt.DIANCode,
		IsActive:    dt.IsActive,
	}
}
