package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// RecentPurchasesLimit compras recientes devueltas por cliente en la búsqueda.
const RecentPurchasesLimit = 5

// LookupUseCase búsqueda de clientes por prefijo de número de documento.
type LookupUseCase struct {
	customers repository.CustomerRepository
	purchases repository.PurchaseRepository
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(customers repository.CustomerRepository, purchases repository.PurchaseRepository) *LookupUseCase {
	return &LookupUseCase{customers: customers, purchases: purchases}
}

// FindByDocumentPrefix devuelve los clientes cuyo documento empieza por prefix y, por cada
// uno, sus últimas compras. Sin coincidencias devuelve domain.ErrNotFound.
func (uc *LookupUseCase) FindByDocumentPrefix(ctx context.Context, prefix string) (*dto.CustomerLookupResponse, error) {
	customers, err := uc.customers.ListByDocumentPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("lookup: listar clientes: %w", err)
	}
	if len(customers) == 0 {
		return nil, domain.ErrNotFound
	}

	ids := make([]int64, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}
	recent, err := uc.purchases.ListRecentByCustomers(ctx, ids, RecentPurchasesLimit)
	if err != nil {
		return nil, fmt.Errorf("lookup: compras recientes: %w", err)
	}

	resp := &dto.CustomerLookupResponse{
		Customers:           make([]dto.LookupCustomerDTO, 0, len(customers)),
		PurchasesByCustomer: make(map[int64][]dto.LookupPurchaseDTO, len(customers)),
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, toLookupCustomer(c))
		list := recent[c.ID]
		if len(list) > RecentPurchasesLimit {
			list = list[:RecentPurchasesLimit]
		}
		purchases := make([]dto.LookupPurchaseDTO, 0, len(list))
		for _, p := range list {
			purchases = append(purchases, toLookupPurchase(p))
		}
		resp.PurchasesByCustomer[c.ID] = purchases
	}
	return resp, nil
}

func toLookupCustomer(c *entity.Customer) dto.LookupCustomerDTO {
	return dto.LookupCustomerDTO{
		ID:               c.ID,
		DocumentTypeName: c.DocumentTypeName,
		DocumentNumber:   c.DocumentNumber,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
	}
}

func toLookupPurchase(p *entity.Purchase) dto.LookupPurchaseDTO {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return dto.LookupPurchaseDTO{
		ID:           p.ID,
		PurchaseDate: p.PurchaseDate,
		TotalAmount:  p.TotalAmount,
		Items:        items,
	}
}
