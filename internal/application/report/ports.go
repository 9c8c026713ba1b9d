package report

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// XLSXContentType tipo MIME de los libros de Excel generados.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PDFContentType tipo MIME del extracto en PDF.
const PDFContentType = "application/pdf"

// Sheet hoja de un libro: encabezados en la fila 1 y una fila por elemento de Rows.
// Las celdas pueden ser string, int, decimal.Decimal o time.Time (sin zona).
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// SpreadsheetWriter serializa hojas a un libro xlsx en memoria.
type SpreadsheetWriter interface {
	Write(sheets []Sheet) ([]byte, error)
}

// StatementPDFGenerator genera el extracto de compras de un cliente en PDF.
type StatementPDFGenerator interface {
	GenerateStatement(ctx context.Context, customer *entity.Customer, history []repository.PurchaseHistoryRow) ([]byte, error)
}
