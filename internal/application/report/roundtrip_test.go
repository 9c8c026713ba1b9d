package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/clientes-api/internal/application/report"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/internal/infrastructure/spreadsheet"
)

type oneCustomer struct {
	repository.CustomerRepository
	c *entity.Customer
}

func (o oneCustomer) GetByDocumentNumber(_ context.Context, doc string) (*entity.Customer, error) {
	if doc == o.c.DocumentNumber {
		return o.c, nil
	}
	return nil, nil
}

type oneHistory struct {
	repository.PurchaseRepository
	rows []repository.PurchaseHistoryRow
}

func (o oneHistory) ListHistoryByCustomer(context.Context, int64) ([]repository.PurchaseHistoryRow, error) {
	return o.rows, nil
}

func TestExport_LecturaConExcelize(t *testing.T) {
	customer := &entity.Customer{ID: 5, DocumentTypeName: "Pasaporte", DocumentNumber: "AB123", FirstName: "Marta", LastName: "Ruiz", Email: "marta@example.com", Phone: "3105550000"}
	history := oneHistory{rows: []repository.PurchaseHistoryRow{{
		PurchaseID:   1,
		PurchaseDate: time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		ProductName:  "Lavadora",
		Quantity:     2,
		UnitPrice:    decimal.RequireFromString("1250000.25"),
		Subtotal:     decimal.RequireFromString("2500000.5"),
	}}}
	uc := report.NewCustomerExportUseCase(oneCustomer{c: customer}, history, spreadsheet.NewExcelWriter(), nil, time.UTC)

	file, err := uc.Export(context.Background(), "AB123")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.CustomerSheetName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pasaporte", "AB123", "Marta", "Ruiz", "marta@example.com", "3105550000"}, rows[1])

	rows, err = f.GetRows(report.HistorySheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-02-29 23:59:00", "Lavadora", "2", "1250000.25", "2500000.5"}, rows[1])
}
