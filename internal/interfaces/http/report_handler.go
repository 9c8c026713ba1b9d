package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// Mensajes 404 de los endpoints de reportes.
const (
	msgNoCustomers      = "No se encontraron clientes"
	msgCustomerNotFound = "Cliente no encontrado"
	msgNoLoyalCustomers = "No se encontraron clientes que cumplan los criterios de fidelización"
)

// LookupService búsqueda de clientes por prefijo de documento.
type LookupService interface {
	FindByDocumentPrefix(ctx context.Context, prefix string) (*dto.CustomerLookupResponse, error)
}

// ExportService exportación de un cliente a xlsx o pdf.
type ExportService interface {
	Export(ctx context.Context, documentNumber string) (*dto.FileDTO, error)
	ExportPDF(ctx context.Context, documentNumber string) (*dto.FileDTO, error)
}

// LoyaltyService reporte de fidelización del mes anterior.
type LoyaltyService interface {
	Generate(ctx context.Context) (*dto.FileDTO, error)
}

// ReportHandler endpoints de consulta y reportes de clientes.
type ReportHandler struct {
	lookup  LookupService
	export  ExportService
	loyalty LoyaltyService
	log     *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(lookup LookupService, export ExportService, loyalty LoyaltyService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{lookup: lookup, export: export, loyalty: loyalty, log: log}
}

// LookupCustomers godoc
// @Summary      Buscar clientes por prefijo de documento
// @Description  Devuelve los clientes cuyo número de documento empieza por el prefijo y sus 5 compras más recientes.
// @Tags         reports
// @Produce      json
// @Param        document_number  path  string  false  "Prefijo del número de documento"
// @Success      200  {object}  dto.CustomerLookupResponse
// @Failure      404  {object}  dto.ReportErrorResponse
// @Router       /api/customer/{document_number} [get]
func (h *ReportHandler) LookupCustomers(c *fiber.Ctx) error {
	out, err := h.lookup.FindByDocumentPrefix(c.UserContext(), c.Params("document_number"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ReportErrorResponse{Error: msgNoCustomers})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// ExportCustomer godoc
// @Summary      Exportar cliente a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        document_number  path  string  true  "Número de documento exacto"
// @Success      200
// @Failure      404  {object}  dto.ReportErrorResponse
// @Router       /api/export-customer/{document_number} [get]
func (h *ReportHandler) ExportCustomer(c *fiber.Ctx) error {
	return h.sendExport(c, h.export.Export)
}

// ExportCustomerPDF GET /api/export-customer/:document_number/pdf
func (h *ReportHandler) ExportCustomerPDF(c *fiber.Ctx) error {
	return h.sendExport(c, h.export.ExportPDF)
}

func (h *ReportHandler) sendExport(c *fiber.Ctx, gen func(context.Context, string) (*dto.FileDTO, error)) error {
	file, err := gen(c.UserContext(), c.Params("document_number"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ReportErrorResponse{Error: msgCustomerNotFound})
		}
		return internalError(c, h.log, err)
	}
	return sendFile(c, file)
}

// LoyaltyReport godoc
// @Summary      Reporte de fidelización
// @Description  Clientes con compras del mes anterior por encima del umbral configurado.
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      404  {object}  dto.ReportMessageResponse
// @Router       /api/loyalty-report [get]
func (h *ReportHandler) LoyaltyReport(c *fiber.Ctx) error {
	file, err := h.loyalty.Generate(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ReportMessageResponse{Message: msgNoLoyalCustomers})
		}
		return internalError(c, h.log, err)
	}
	return sendFile(c, file)
}
