package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// AdminCustomersPath listado de clientes del panel; destino de las redirecciones.
const AdminCustomersPath = "/admin/customers/"

// AdminCustomerListResponse listado del panel con los avisos pendientes.
type AdminCustomerListResponse struct {
	Customers []*dto.CustomerResponse `json:"customers"`
	Messages  []FlashMessage          `json:"messages"`
}

// AdminHandler acciones del panel administrativo de clientes.
type AdminHandler struct {
	customers CustomerService
	loyalty   LoyaltyService
	log       *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(customers CustomerService, loyalty LoyaltyService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{customers: customers, loyalty: loyalty, log: log}
}

// ListCustomers GET /admin/customers/ con los mismos filtros que /api/customers.
// Los avisos pendientes se devuelven una sola vez.
func (h *AdminHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.customers.List(c.UserContext(), customerFilterFromQuery(c))
	if err != nil {
		return writeError(c, h.log, err, customerNotFound)
	}
	if list == nil {
		list = []*dto.CustomerResponse{}
	}
	return c.JSON(AdminCustomerListResponse{Customers: list, Messages: consumeFlash(c)})
}

// LoyaltyReport GET /admin/customers/loyalty-report. Mismo reporte que /api/loyalty-report;
// un fallo interno se muestra como aviso en el listado (303 a /admin/customers/).
func (h *AdminHandler) LoyaltyReport(c *fiber.Ctx) error {
	file, err := h.loyalty.Generate(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ReportMessageResponse{Message: msgNoLoyalCustomers})
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("reporte de fidelización desde el panel")
		addFlash(c, "error", "Error generando reporte: "+err.Error())
		return c.Redirect(AdminCustomersPath, fiber.StatusSeeOther)
	}
	return sendFile(c, file)
}
