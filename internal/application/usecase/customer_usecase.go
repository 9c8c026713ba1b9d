package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/clock"
	"github.com/jhoicas/clientes-api/pkg/dian"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	docTypes repository.DocumentTypeRepository
	clock    clock.Clock
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, docTypes repository.DocumentTypeRepository, clk clock.Clock) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, docTypes: docTypes, clock: clk}
}

// Create registra un cliente. El número de documento es único; si el tipo de
// documento es NIT (código DIAN 31) se valida el dígito de verificación.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	now := uc.clock.Now()
	customer := &entity.Customer{CreatedAt: now, UpdatedAt: now, IsActive: boolOr(in.IsActive, true)}
	if err := uc.apply(ctx, customer, in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByDocumentNumber(ctx, customer.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// List lista clientes con los filtros de búsqueda del panel.
func (uc *CustomerUseCase) List(ctx context.Context, in dto.CustomerListFilter) ([]*dto.CustomerResponse, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)
	list, err := uc.repo.List(ctx, repository.CustomerFilter{
		Page:           repository.Page{Limit: limit, Offset: offset},
		Search:         in.Search,
		DocumentTypeID: in.DocumentTypeID,
		IsActive:       in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.apply(ctx, customer, in); err != nil {
		return nil, err
	}
	other, err := uc.repo.GetByDocumentNumber(ctx, customer.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != customer.ID {
		return nil, domain.ErrDuplicate
	}
	customer.IsActive = boolOr(in.IsActive, customer.IsActive)
	customer.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el cliente; protegido mientras tenga compras.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CustomerUseCase) apply(ctx context.Context, c *entity.Customer, in dto.CustomerRequest) error {
	var err error
	if c.DocumentNumber, err = requireText("document_number", in.DocumentNumber, 20); err != nil {
		return err
	}
	if c.FirstName, err = requireText("first_name", in.FirstName, 100); err != nil {
		return err
	}
	if c.LastName, err = requireText("last_name", in.LastName, 100); err != nil {
		return err
	}
	if c.Email, err = validEmail(in.Email); err != nil {
		return err
	}
	if c.Phone, err = requireText("phone", in.Phone, 15); err != nil {
		return err
	}
	if c.Address, err = requireText("address", in.Address, 1000); err != nil {
		return err
	}
	if in.DocumentTypeID <= 0 {
		return invalid("document_type_id es requerido")
	}
	dt, err := uc.docTypes.GetByID(ctx, in.DocumentTypeID)
	if err != nil {
		return err
	}
	if dt == nil {
		return invalid("el tipo de documento %d no existe", in.DocumentTypeID)
	}
	if dt.DIANCode == dian.IdentificationNIT {
		if err := dian.ValidateNITVerificationDigit(c.DocumentNumber); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	c.DocumentTypeID = dt.ID
	c.DocumentTypeName = dt.Name
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:               c.ID,
		DocumentTypeID:   c.DocumentTypeID,
		DocumentTypeName: c.DocumentTypeName,
		DocumentNumber:   c.DocumentNumber,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
