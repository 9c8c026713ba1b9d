package usecase

import (
	"context"
	"math"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/clock"
)

const purchaseDateLayout = "2006-01-02"

// PurchaseUseCase registra compras con sus líneas. Cabecera y líneas se escriben
// en una sola transacción; subtotales y total se calculan aquí.
type PurchaseUseCase struct {
	repo  repository.PurchaseRepository
	tx    PurchaseTxRunner
	clock clock.Clock
	loc   *time.Location
}

// NewPurchaseUseCase construye el caso de uso. loc se usa para interpretar los filtros from/to.
func NewPurchaseUseCase(repo repository.PurchaseRepository, tx PurchaseTxRunner, clk clock.Clock, loc *time.Location) *PurchaseUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &PurchaseUseCase{repo: repo, tx: tx, clock: clk, loc: loc}
}

// Create registra una compra nueva.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := validatePurchaseRequest(in); err != nil {
		return nil, err
	}
	var created *entity.Purchase
	err := uc.tx.RunPurchase(ctx, func(purchases repository.PurchaseRepository, customers repository.CustomerRepository, products repository.ProductRepository) error {
		p := &entity.Purchase{PurchaseDate: uc.clock.Now()}
		if err := fillPurchase(ctx, p, in, customers, products); err != nil {
			return err
		}
		if err := purchases.Create(ctx, p); err != nil {
			return err
		}
		if err := insertItems(ctx, purchases, p); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(created), nil
}

// GetByID obtiene una compra con sus líneas.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, id int64) (*dto.PurchaseResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(p), nil
}

// List lista compras. from/to son fechas YYYY-MM-DD; to es inclusivo.
func (uc *PurchaseUseCase) List(ctx context.Context, in dto.PurchaseListFilter) ([]*dto.PurchaseResponse, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)
	filter := repository.PurchaseFilter{
		Page:       repository.Page{Limit: limit, Offset: offset},
		Search:     in.Search,
		CustomerID: in.CustomerID,
	}
	if in.From != "" {
		from, err := time.ParseInLocation(purchaseDateLayout, in.From, uc.loc)
		if err != nil {
			return nil, invalid("from debe tener formato YYYY-MM-DD")
		}
		filter.From = from
	}
	if in.To != "" {
		to, err := time.ParseInLocation(purchaseDateLayout, in.To, uc.loc)
		if err != nil {
			return nil, invalid("to debe tener formato YYYY-MM-DD")
		}
		end := to.AddDate(0, 0, 1)
		filter.To = end
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return nil, invalid("from debe ser anterior o igual a to")
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Update reemplaza cabecera y líneas de la compra.
func (uc *PurchaseUseCase) Update(ctx context.Context, id int64, in dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := validatePurchaseRequest(in); err != nil {
		return nil, err
	}
	var updated *entity.Purchase
	err := uc.tx.RunPurchase(ctx, func(purchases repository.PurchaseRepository, customers repository.CustomerRepository, products repository.ProductRepository) error {
		p, err := purchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		p.Items = nil
		if err := fillPurchase(ctx, p, in, customers, products); err != nil {
			return err
		}
		if err := purchases.Update(ctx, p); err != nil {
			return err
		}
		if err := purchases.DeleteItems(ctx, p.ID); err != nil {
			return err
		}
		if err := insertItems(ctx, purchases, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(updated), nil
}

// Delete elimina la compra; devuelve domain.ErrProtected mientras tenga líneas.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func validatePurchaseRequest(in dto.PurchaseRequest) error {
	if in.CustomerID <= 0 {
		return invalid("customer_id es requerido")
	}
	if len(in.Items) == 0 {
		return invalid("la compra debe tener al menos una línea")
	}
	for i, it := range in.Items {
		if it.ProductID <= 0 {
			return invalid("items[%d].product_id es requerido", i)
		}
		if it.Quantity < 1 {
			return invalid("items[%d].quantity debe ser al menos 1", i)
		}
		if it.Quantity > math.MaxInt32 {
			return invalid("items[%d].quantity fuera de rango", i)
		}
		if it.UnitPrice != nil && it.UnitPrice.IsNegative() {
			return invalid("items[%d].unit_price no puede ser negativo", i)
		}
	}
	if _, err := optionalText("notes", in.Notes, 2000); err != nil {
		return err
	}
	return nil
}

// fillPurchase resuelve cliente y productos y arma las líneas con sus montos.
func fillPurchase(ctx context.Context, p *entity.Purchase, in dto.PurchaseRequest, customers repository.CustomerRepository, products repository.ProductRepository) error {
	customer, err := customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return invalid("el cliente %d no existe", in.CustomerID)
	}
	p.CustomerID = customer.ID
	if in.PurchaseDate != nil {
		p.PurchaseDate = *in.PurchaseDate
	}
	p.Notes = in.Notes
	for i, it := range in.Items {
		product, err := products.GetByID(ctx, it.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return invalid("items[%d]: el producto %d no existe", i, it.ProductID)
		}
		price := product.Price
		if it.UnitPrice != nil {
			price = *it.UnitPrice
		}
		p.Items = append(p.Items, &entity.PurchaseItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   price.Round(2),
		})
	}
	p.RecalculateTotal()
	return nil
}

func insertItems(ctx context.Context, purchases repository.PurchaseRepository, p *entity.Purchase) error {
	for _, it := range p.Items {
		it.PurchaseID = p.ID
		if err := purchases.CreateItem(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

func toPurchaseItemResponses(items []*entity.PurchaseItem) []dto.PurchaseItemResponse {
	out := make([]dto.PurchaseItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PurchaseItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		PurchaseDate: p.PurchaseDate,
		TotalAmount:  p.TotalAmount,
		Notes:        p.Notes,
		Items:        toPurchaseItemResponses(p.Items),
	}
}
