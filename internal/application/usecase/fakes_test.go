package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

type memDocTypes struct {
	items  map[int64]*entity.DocumentType
	nextID int64
	used   map[int64]bool // tipos referenciados por clientes
}

func newMemDocTypes(dts ...*entity.DocumentType) *memDocTypes {
	m := &memDocTypes{items: map[int64]*entity.DocumentType{}, used: map[int64]bool{}}
	for _, dt := range dts {
		_ = m.Create(context.Background(), dt)
	}
	return m
}

func (m *memDocTypes) Create(_ context.Context, dt *entity.DocumentType) error {
	m.nextID++
	dt.ID = m.nextID
	cp := *dt
	m.items[dt.ID] = &cp
	return nil
}

func (m *memDocTypes) GetByID(_ context.Context, id int64) (*entity.DocumentType, error) {
	dt, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *dt
	return &cp, nil
}

func (m *memDocTypes) GetByName(_ context.Context, name string) (*entity.DocumentType, error) {
	for _, dt := range m.items {
		if dt.Name == name {
			cp := *dt
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDocTypes) List(_ context.Context, _ repository.Page) ([]*entity.DocumentType, error) {
	out := make([]*entity.DocumentType, 0, len(m.items))
	for _, dt := range m.items {
		out = append(out, dt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memDocTypes) Update(_ context.Context, dt *entity.DocumentType) error {
	cp := *dt
	m.items[dt.ID] = &cp
	return nil
}

func (m *memDocTypes) Delete(_ context.Context, id int64) error {
	if m.used[id] {
		return domain.ErrProtected
	}
	delete(m.items, id)
	return nil
}

type memCustomers struct {
	items  map[int64]*entity.Customer
	nextID int64
}

func newMemCustomers() *memCustomers {
	return &memCustomers{items: map[int64]*entity.Customer{}}
}

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCustomers) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomers) GetByDocumentNumber(_ context.Context, doc string) (*entity.Customer, error) {
	for _, c := range m.items {
		if c.DocumentNumber == doc {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) ListByDocumentPrefix(_ context.Context, prefix string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.items {
		if strings.HasPrefix(c.DocumentNumber, prefix) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCustomers) List(_ context.Context, f repository.CustomerFilter) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.items {
		if f.Search != "" && !strings.Contains(c.DocumentNumber+c.FirstName+c.LastName+c.Email, f.Search) {
			continue
		}
		if f.IsActive != nil && c.IsActive != *f.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCustomers) Delete(_ context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memCategories struct {
	items  map[int64]*entity.ProductCategory
	nextID int64
}

func newMemCategories(cs ...*entity.ProductCategory) *memCategories {
	m := &memCategories{items: map[int64]*entity.ProductCategory{}}
	for _, c := range cs {
		_ = m.Create(context.Background(), c)
	}
	return m
}

func (m *memCategories) Create(_ context.Context, c *entity.ProductCategory) error {
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id int64) (*entity.ProductCategory, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) List(_ context.Context, _ repository.Page) ([]*entity.ProductCategory, error) {
	out := make([]*entity.ProductCategory, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCategories) Update(_ context.Context, c *entity.ProductCategory) error {
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) Delete(_ context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memProducts struct {
	items  map[int64]*entity.Product
	nextID int64
}

func newMemProducts(ps ...*entity.Product) *memProducts {
	m := &memProducts{items: map[int64]*entity.Product{}}
	for _, p := range ps {
		_ = m.Create(context.Background(), p)
	}
	return m
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.items {
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memPurchases struct {
	items      map[int64]*entity.Purchase
	nextID     int64
	nextItemID int64
	lastFilter repository.PurchaseFilter
	failItem   bool
}

func newMemPurchases() *memPurchases {
	return &memPurchases{items: map[int64]*entity.Purchase{}}
}

func (m *memPurchases) clone() *memPurchases {
	cp := &memPurchases{items: map[int64]*entity.Purchase{}, nextID: m.nextID, nextItemID: m.nextItemID, failItem: m.failItem}
	for id, p := range m.items {
		pc := *p
		pc.Items = append([]*entity.PurchaseItem(nil), p.Items...)
		cp.items[id] = &pc
	}
	return cp
}

func (m *memPurchases) Create(_ context.Context, p *entity.Purchase) error {
	m.nextID++
	p.ID = m.nextID
	cp := *p
	cp.Items = nil
	m.items[p.ID] = &cp
	return nil
}

func (m *memPurchases) CreateItem(_ context.Context, it *entity.PurchaseItem) error {
	if m.failItem {
		return errors.New("insert item falló")
	}
	p, ok := m.items[it.PurchaseID]
	if !ok {
		return errors.New("compra inexistente")
	}
	m.nextItemID++
	it.ID = m.nextItemID
	cp := *it
	p.Items = append(p.Items, &cp)
	return nil
}

func (m *memPurchases) DeleteItems(_ context.Context, purchaseID int64) error {
	if p, ok := m.items[purchaseID]; ok {
		p.Items = nil
	}
	return nil
}

func (m *memPurchases) Update(_ context.Context, p *entity.Purchase) error {
	stored, ok := m.items[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	items := stored.Items
	cp := *p
	cp.Items = items
	m.items[p.ID] = &cp
	return nil
}

func (m *memPurchases) GetByID(_ context.Context, id int64) (*entity.Purchase, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Items = append([]*entity.PurchaseItem(nil), p.Items...)
	return &cp, nil
}

func (m *memPurchases) List(_ context.Context, f repository.PurchaseFilter) ([]*entity.Purchase, error) {
	m.lastFilter = f
	var out []*entity.Purchase
	for _, p := range m.items {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPurchases) Delete(_ context.Context, id int64) error {
	if p, ok := m.items[id]; ok && len(p.Items) > 0 {
		return domain.ErrProtected
	}
	delete(m.items, id)
	return nil
}

func (m *memPurchases) ListRecentByCustomers(context.Context, []int64, int) (map[int64][]*entity.Purchase, error) {
	return map[int64][]*entity.Purchase{}, nil
}

func (m *memPurchases) ListHistoryByCustomer(context.Context, int64) ([]repository.PurchaseHistoryRow, error) {
	return nil, nil
}

// memTx simula la transacción: trabaja sobre una copia y solo la publica si fn no falla.
type memTx struct {
	purchases *memPurchases
	customers *memCustomers
	products  *memProducts
}

func (t *memTx) RunPurchase(ctx context.Context, fn func(repository.PurchaseRepository, repository.CustomerRepository, repository.ProductRepository) error) error {
	work := t.purchases.clone()
	if err := fn(work, t.customers, t.products); err != nil {
		return err
	}
	*t.purchases = *work
	return nil
}
