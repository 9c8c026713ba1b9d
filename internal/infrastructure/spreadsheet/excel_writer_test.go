package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/clientes-api/internal/application/report"
)

func TestExcelWriter_Write(t *testing.T) {
	content, err := NewExcelWriter().Write([]report.Sheet{
		{Name: "Datos Cliente", Headers: []string{"Nombre", "Email"}, Rows: [][]any{{"Ana", "ana@example.com"}}},
		{Name: "Historial Compras", Headers: []string{"Fecha", "Cantidad", "Subtotal"}, Rows: [][]any{
			{time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), 2, decimal.RequireFromString("35000.5")},
		}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Datos Cliente", "Historial Compras"}, f.GetSheetList())

	rows, err := f.GetRows("Datos Cliente")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Nombre", "Email"}, {"Ana", "ana@example.com"}}, rows)

	rows, err = f.GetRows("Historial Compras")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-15 10:30:00", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "35000.5", rows[1][2])
}

func TestExcelWriter_HojaSinFilas(t *testing.T) {
	content, err := NewExcelWriter().Write([]report.Sheet{{Name: "Vacía", Headers: []string{"A", "B"}}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Vacía")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B"}}, rows)
}

func TestExcelWriter_SinHojas(t *testing.T) {
	_, err := NewExcelWriter().Write(nil)
	assert.Error(t, err)
}
