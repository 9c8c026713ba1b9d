package usecase

import (
	"context"
	"math"
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

type purchaseFixture struct {
	uc        *PurchaseUseCase
	purchases *memPurchases
	now       time.Time
}

func newPurchaseFixture() purchaseFixture {
	customers := newMemCustomers()
	_ = customers.Create(context.Background(), &entity.Customer{DocumentNumber: "1020", FirstName: "Ana", LastName: "Pérez", IsActive: true})
	products := newMemProducts(
		&entity.Product{Name: "Televisor", CategoryID: 1, Price: decimal.NewFromInt(2_000_000), IsActive: true},
		&entity.Product{Name: "Cable HDMI", CategoryID: 1, Price: decimal.RequireFromString("35000.50"), IsActive: true},
	)
	purchases := newMemPurchases()
	now := time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)
	tx := &memTx{purchases: purchases, customers: customers, products: products}
	uc := NewPurchaseUseCase(purchases, tx, clock.NewFixedClock(now), time.UTC)
	return purchaseFixture{uc: uc, purchases: purchases, now: now}
}

func TestPurchaseUseCase_CreateCalculaTotales(t *testing.T) {
	f := newPurchaseFixture()
	override := decimal.NewFromInt(1_800_000)

	got, err := f.uc.Create(context.Background(), dto.PurchaseRequest{
		CustomerID: 1,
		Items: []dto.PurchaseItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: &override},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, f.now, got.PurchaseDate)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "3600000", got.Items[0].Subtotal.String())
	assert.Equal(t, "35000.5", got.Items[1].UnitPrice.String())
	assert.Equal(t, "105001.5", got.Items[1].Subtotal.String())
	assert.Equal(t, "3705001.5", got.TotalAmount.String())

	stored, err := f.purchases.GetByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
}

func TestPurchaseUseCase_CreateInvalida(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{{ProductID: 1, Quantity: 0}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{{ProductID: 1, Quantity: math.MaxInt32 + 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad mayor que INTEGER")

	_, err = f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 9, Items: []dto.PurchaseItemRequest{{ProductID: 1, Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{{ProductID: 99, Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.purchases.items)
}

func TestPurchaseUseCase_CreateRollbackSiFallaUnaLinea(t *testing.T) {
	f := newPurchaseFixture()
	f.purchases.failItem = true

	_, err := f.uc.Create(context.Background(), dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{{ProductID: 1, Quantity: 1}}})
	require.Error(t, err)
	assert.Empty(t, f.purchases.items)
}

func TestPurchaseUseCase_UpdateReemplazaLineas(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()
	created, err := f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	}})
	require.NoError(t, err)

	date := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	updated, err := f.uc.Update(ctx, created.ID, dto.PurchaseRequest{
		CustomerID:   1,
		PurchaseDate: &date,
		Notes:        "cambio de referencia",
		Items:        []dto.PurchaseItemRequest{{ProductID: 2, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, date, updated.PurchaseDate)
	assert.Equal(t, "140002", updated.TotalAmount.String())

	stored, err := f.uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 4, stored.Items[0].Quantity)

	_, err = f.uc.Update(ctx, 999, dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{{ProductID: 1, Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPurchaseUseCase_ListFiltroFechas(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()

	_, err := f.uc.List(ctx, dto.PurchaseListFilter{From: "2024-03-01", To: "2024-03-31"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), f.purchases.lastFilter.From)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), f.purchases.lastFilter.To)
	assert.Equal(t, 20, f.purchases.lastFilter.Limit)

	_, err = f.uc.List(ctx, dto.PurchaseListFilter{From: "01/03/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.List(ctx, dto.PurchaseListFilter{From: "2024-04-01", To: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseUseCase_Delete(t *testing.T) {
	f := newPurchaseFixture()
	ctx := context.Background()
	assert.ErrorIs(t, f.uc.Delete(ctx, 5), domain.ErrNotFound)

	created, err := f.uc.Create(ctx, dto.PurchaseRequest{CustomerID: 1, Items: []dto.PurchaseItemRequest{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)
	assert.ErrorIs(t, f.uc.Delete(ctx, created.ID), domain.ErrProtected)

	f.purchases.items[created.ID].Items = nil
	require.NoError(t, f.uc.Delete(ctx, created.ID))
	assert.Empty(t, f.purchases.items)
}
