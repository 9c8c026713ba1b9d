package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// Nombres de hoja del libro de exportación de un cliente.
const (
	CustomerSheetName = "Datos Cliente"
	HistorySheetName  = "Historial Compras"
)

var (
	customerHeaders = []string{"Tipo Documento", "Número Documento", "Nombre", "Apellido", "Email", "Teléfono"}
	historyHeaders  = []string{"Fecha", "Producto", "Cantidad", "Precio Unitario", "Subtotal"}
)

// CustomerExportUseCase exporta los datos y el historial de compras de un cliente.
type CustomerExportUseCase struct {
	customers repository.CustomerRepository
	purchases repository.PurchaseRepository
	writer    SpreadsheetWriter
	pdf       StatementPDFGenerator
	loc       *time.Location
}

// NewCustomerExportUseCase construye el caso de uso. loc es la zona en la que se
// escriben las fechas (las celdas de Excel no llevan zona horaria).
func NewCustomerExportUseCase(
	customers repository.CustomerRepository,
	purchases repository.PurchaseRepository,
	writer SpreadsheetWriter,
	pdf StatementPDFGenerator,
	loc *time.Location,
) *CustomerExportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &CustomerExportUseCase{customers: customers, purchases: purchases, writer: writer, pdf: pdf, loc: loc}
}

// Export genera cliente_<documento>.xlsx con las hojas "Datos Cliente" e "Historial Compras".
// El documento debe coincidir exactamente; si no existe devuelve domain.ErrNotFound.
func (uc *CustomerExportUseCase) Export(ctx context.Context, documentNumber string) (*dto.FileDTO, error) {
	customer, history, err := uc.load(ctx, documentNumber)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(history))
	for _, h := range history {
		rows = append(rows, []any{NaiveTime(h.PurchaseDate, uc.loc), h.ProductName, h.Quantity, h.UnitPrice, h.Subtotal})
	}
	content, err := uc.writer.Write([]Sheet{
		{
			Name:    CustomerSheetName,
			Headers: customerHeaders,
			Rows: [][]any{{
				customer.DocumentTypeName, customer.DocumentNumber, customer.FirstName,
				customer.LastName, customer.Email, customer.Phone,
			}},
		},
		{Name: HistorySheetName, Headers: historyHeaders, Rows: rows},
	})
	if err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return &dto.FileDTO{
		Filename:    fmt.Sprintf("cliente_%s.xlsx", customer.DocumentNumber),
		ContentType: XLSXContentType,
		Content:     content,
	}, nil
}

// ExportPDF genera el mismo contenido como extracto PDF (cliente_<documento>.pdf).
func (uc *CustomerExportUseCase) ExportPDF(ctx context.Context, documentNumber string) (*dto.FileDTO, error) {
	customer, history, err := uc.load(ctx, documentNumber)
	if err != nil {
		return nil, err
	}
	for i := range history {
		history[i].PurchaseDate = NaiveTime(history[i].PurchaseDate, uc.loc)
	}
	content, err := uc.pdf.GenerateStatement(ctx, customer, history)
	if err != nil {
		return nil, fmt.Errorf("export: generar pdf: %w", err)
	}
	return &dto.FileDTO{
		Filename:    fmt.Sprintf("cliente_%s.pdf", customer.DocumentNumber),
		ContentType: PDFContentType,
		Content:     content,
	}, nil
}

func (uc *CustomerExportUseCase) load(ctx context.Context, documentNumber string) (*entity.Customer, []repository.PurchaseHistoryRow, error) {
	customer, err := uc.customers.GetByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("export: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, nil, domain.ErrNotFound
	}
	history, err := uc.purchases.ListHistoryByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("export: historial: %w", err)
	}
	return customer, history, nil
}

// NaiveTime conserva la hora de pared de t en loc y descarta la zona (queda en UTC).
func NaiveTime(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), l.Nanosecond(), time.UTC)
}
