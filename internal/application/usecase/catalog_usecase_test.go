package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/clock"
)

func TestDocumentTypeUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := NewDocumentTypeUseCase(newMemDocTypes())

	got, err := uc.Create(ctx, dto.DocumentTypeRequest{Name: "  Cédula de ciudadanía ", DIANCode: "13"})
	require.NoError(t, err)
	assert.Equal(t, "Cédula de ciudadanía", got.Name)
	assert.True(t, got.IsActive)

	_, err = uc.Create(ctx, dto.DocumentTypeRequest{Name: "Cédula de ciudadanía"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.DocumentTypeRequest{Name: "Otro", DIANCode: "99"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.DocumentTypeRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentTypeUseCase_DeleteProtegido(t *testing.T) {
	ctx := context.Background()
	repo := newMemDocTypes(&entity.DocumentType{Name: "NIT", DIANCode: "31", IsActive: true})
	repo.used[1] = true
	uc := NewDocumentTypeUseCase(repo)

	assert.ErrorIs(t, uc.Delete(ctx, 1), domain.ErrProtected)
	assert.ErrorIs(t, uc.Delete(ctx, 42), domain.ErrNotFound)

	_, err := uc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Validaciones(t *testing.T) {
	ctx := context.Background()
	cats := newMemCategories(&entity.ProductCategory{Name: "Electrodomésticos", IsActive: true})
	uc := NewProductUseCase(newMemProducts(), cats)

	_, err := uc.Create(ctx, dto.ProductRequest{Name: "Nevera", CategoryID: 1, Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.ProductRequest{Name: "Nevera", CategoryID: 9, Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := uc.Create(ctx, dto.ProductRequest{Name: "Nevera", CategoryID: 1, Price: decimal.RequireFromString("2500000.499")})
	require.NoError(t, err)
	assert.Equal(t, "2500000.5", p.Price.String())
	assert.Equal(t, "Electrodomésticos", p.CategoryName)

	inactive := false
	p, err = uc.Update(ctx, p.ID, dto.ProductRequest{Name: "Nevera No Frost", CategoryID: 1, Price: decimal.NewFromInt(3000000), IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.Equal(t, "Nevera No Frost", p.Name)
}

func TestProductCategoryUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := NewProductCategoryUseCase(newMemCategories())

	c, err := uc.Create(ctx, dto.ProductCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)

	c, err = uc.Update(ctx, c.ID, dto.ProductCategoryRequest{Name: "Hogar y cocina", Description: "línea blanca"})
	require.NoError(t, err)
	assert.Equal(t, "línea blanca", c.Description)

	list, err := uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, uc.Delete(ctx, c.ID))
	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func newCustomerFixture() (*CustomerUseCase, *memCustomers) {
	docTypes := newMemDocTypes(
		&entity.DocumentType{Name: "Cédula de ciudadanía", DIANCode: "13", IsActive: true},
		&entity.DocumentType{Name: "NIT", DIANCode: "31", IsActive: true},
	)
	customers := newMemCustomers()
	clk := clock.NewFixedClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	return NewCustomerUseCase(customers, docTypes, clk), customers
}

func validCustomer() dto.CustomerRequest {
	return dto.CustomerRequest{
		DocumentTypeID: 1,
		DocumentNumber: "1020304050",
		FirstName:      "Ana",
		LastName:       "Pérez",
		Email:          "ana@example.com",
		Phone:          "3001234567",
		Address:        "Calle 1 # 2-3",
	}
}

func TestCustomerUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCustomerFixture()

	got, err := uc.Create(ctx, validCustomer())
	require.NoError(t, err)
	assert.Equal(t, "Cédula de ciudadanía", got.DocumentTypeName)
	assert.True(t, got.IsActive)
	assert.Equal(t, 2024, got.CreatedAt.Year())

	_, err = uc.Create(ctx, validCustomer())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerUseCase_CreateInvalido(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCustomerFixture()

	cases := map[string]func(r *dto.CustomerRequest){
		"email":            func(r *dto.CustomerRequest) { r.Email = "no-es-email" },
		"teléfono largo":   func(r *dto.CustomerRequest) { r.Phone = "1234567890123456" },
		"documento largo":  func(r *dto.CustomerRequest) { r.DocumentNumber = "123456789012345678901" },
		"tipo inexistente": func(r *dto.CustomerRequest) { r.DocumentTypeID = 77 },
		"sin nombre":       func(r *dto.CustomerRequest) { r.FirstName = "" },
		"nit sin dv":       func(r *dto.CustomerRequest) { r.DocumentTypeID = 2; r.DocumentNumber = "900123456-1" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCustomer()
			mutate(&req)
			_, err := uc.Create(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCustomerUseCase_CreateNITValido(t *testing.T) {
	uc, _ := newCustomerFixture()
	req := validCustomer()
	req.DocumentTypeID = 2
	req.DocumentNumber = "900123456-8"

	got, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "NIT", got.DocumentTypeName)
}

func TestCustomerUseCase_UpdateDocumentoDuplicado(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCustomerFixture()

	first, err := uc.Create(ctx, validCustomer())
	require.NoError(t, err)
	other := validCustomer()
	other.DocumentNumber = "555"
	second, err := uc.Create(ctx, other)
	require.NoError(t, err)

	change := validCustomer()
	change.DocumentNumber = first.DocumentNumber
	_, err = uc.Update(ctx, second.ID, change)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// reenviar el mismo documento del propio cliente no es duplicado
	same := validCustomer()
	same.Phone = "3110000000"
	got, err := uc.Update(ctx, first.ID, same)
	require.NoError(t, err)
	assert.Equal(t, "3110000000", got.Phone)
}
